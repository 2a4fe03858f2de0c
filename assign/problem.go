// Copyright 2025 The coverassign Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package assign

import "fmt"

// Item is one priced record to be assigned to a category.
type Item struct {
	// ID identifies the item. IDs must be unique within a Problem.
	ID string
	// Price is the item's value. Must be non-negative.
	Price float64
}

// Category is one assignment target with a price threshold.
type Category struct {
	// ID identifies the category. IDs must be unique within a Problem.
	ID string
	// Threshold is the bound on the total price of items assigned to the
	// category. Whether it is a lower bound (coverage) or an upper bound
	// (capacity) is decided by the Policy's Direction. Must be non-negative.
	Threshold float64
}

// Problem is a validated, immutable assignment instance. Construct with
// NewProblem; the zero value is not usable.
type Problem struct {
	items      []Item
	categories []Category

	totalPrice     float64
	totalThreshold float64
}

// NewProblem validates the given items and categories and returns the
// instance they describe. Both collections must be non-empty, identifiers
// must be unique within their collection, and prices and thresholds must
// be non-negative; violations are reported wrapping ErrValidation.
func NewProblem(items []Item, categories []Category) (*Problem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items to assign", ErrValidation)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories to assign items to", ErrValidation)
	}

	p := &Problem{
		items:      make([]Item, len(items)),
		categories: make([]Category, len(categories)),
	}
	copy(p.items, items)
	copy(p.categories, categories)

	seenItems := make(map[string]struct{}, len(items))
	for _, it := range p.items {
		if _, ok := seenItems[it.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate item identifier %q", ErrValidation, it.ID)
		}
		seenItems[it.ID] = struct{}{}
		if it.Price < 0 {
			return nil, fmt.Errorf("%w: item %q has negative price %v", ErrValidation, it.ID, it.Price)
		}
		p.totalPrice += it.Price
	}

	seenCategories := make(map[string]struct{}, len(categories))
	for _, c := range p.categories {
		if _, ok := seenCategories[c.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate category identifier %q", ErrValidation, c.ID)
		}
		seenCategories[c.ID] = struct{}{}
		if c.Threshold < 0 {
			return nil, fmt.Errorf("%w: category %q has negative threshold %v", ErrValidation, c.ID, c.Threshold)
		}
		p.totalThreshold += c.Threshold
	}

	return p, nil
}

// Items returns the problem's items. Callers must not modify the returned
// slice.
func (p *Problem) Items() []Item { return p.items }

// Categories returns the problem's categories. Callers must not modify
// the returned slice.
func (p *Problem) Categories() []Category { return p.categories }

// NumItems returns the number of items.
func (p *Problem) NumItems() int { return len(p.items) }

// NumCategories returns the number of categories.
func (p *Problem) NumCategories() int { return len(p.categories) }

// TotalPrice returns the sum of all item prices.
func (p *Problem) TotalPrice() float64 { return p.totalPrice }

// TotalThreshold returns the sum of all category thresholds.
func (p *Problem) TotalThreshold() float64 { return p.totalThreshold }
