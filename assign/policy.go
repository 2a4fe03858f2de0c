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

// Objective selects the objective expression of the model. There is no
// default: the zero value is rejected with ErrConfiguration.
type Objective int

const (
	objectiveUnset Objective = iota

	// FeasibilityOnly uses a constant objective; any feasible assignment
	// is accepted.
	FeasibilityOnly

	// MaximizeTotalValue maximizes the total price placed across all
	// categories. Under the one-category-per-item constraint every item is
	// always placed, so this objective is constant; building a model with
	// it logs a warning.
	MaximizeTotalValue

	// MinimizeTotalCost is the symmetric minimization variant of
	// MaximizeTotalValue, with the same caveat.
	MinimizeTotalCost
)

// String returns a human-readable representation of the objective.
func (o Objective) String() string {
	switch o {
	case FeasibilityOnly:
		return "FeasibilityOnly"
	case MaximizeTotalValue:
		return "MaximizeTotalValue"
	case MinimizeTotalCost:
		return "MinimizeTotalCost"
	default:
		return "Unset"
	}
}

// Direction selects which side of each category's threshold the assigned
// total must fall on. There is no default: the zero value is rejected
// with ErrConfiguration.
type Direction int

const (
	directionUnset Direction = iota

	// Coverage requires each category's assigned total to reach at least
	// its threshold.
	Coverage

	// Capacity requires each category's assigned total to not exceed its
	// threshold.
	Capacity
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Coverage:
		return "Coverage"
	case Capacity:
		return "Capacity"
	default:
		return "Unset"
	}
}

// Policy names the objective and the threshold direction of a solve.
// Both fields must be set explicitly by the caller.
type Policy struct {
	Objective Objective
	Direction Direction
}

func (p Policy) validate() error {
	if p.Objective <= objectiveUnset || p.Objective > MinimizeTotalCost {
		return fmt.Errorf("%w: objective not set", ErrConfiguration)
	}
	if p.Direction <= directionUnset || p.Direction > Capacity {
		return fmt.Errorf("%w: threshold direction not set", ErrConfiguration)
	}
	return nil
}
