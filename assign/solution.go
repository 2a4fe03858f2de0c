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

import (
	"fmt"
	"math"
	"sort"

	log "github.com/golang/glog"
)

// Solution is the outcome of one solve. When Feasible is true,
// Assignments maps every item identifier to exactly one category
// identifier. When Feasible is false, no assignment satisfies all
// category thresholds simultaneously and Assignments is nil. A Solution
// is immutable after creation.
type Solution struct {
	Feasible    bool
	Assignments map[string]string

	// Objective is the objective value reported by the backend. Zero for
	// infeasible outcomes and under FeasibilityOnly.
	Objective float64

	// Status is the backend status the solution was extracted from.
	Status Status
}

// CategoryReport summarizes one category of a feasible solution.
type CategoryReport struct {
	CategoryID string
	Threshold  float64
	// Total is the sum of prices of the items assigned to the category.
	Total float64
	// Satisfied reports whether Total is on the required side of
	// Threshold for the policy's direction.
	Satisfied bool
}

// ExtractSolution interprets a backend result for the given problem.
//
// For StatusOptimal and StatusFeasible it rounds each item's variable row
// to the category whose value exceeds 1-params.Tolerance, failing with
// ErrIntegrality when no column or more than one column qualifies, or
// when any column carries a fractional value. The extracted assignment is
// then revalidated against the one-category-per-item and threshold
// constraints independently of the backend, failing with ErrInvariant on
// violation.
//
// StatusInfeasible yields a Solution with Feasible set to false, not an
// error. StatusUnbounded and StatusError fail with ErrSolverFailure.
func ExtractSolution(p *Problem, policy Policy, params Params, res *Result) (*Solution, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: backend returned no result", ErrSolverFailure)
	}

	switch res.Status {
	case StatusOptimal, StatusFeasible:
	case StatusInfeasible:
		return &Solution{Status: res.Status}, nil
	default:
		return nil, fmt.Errorf("%w: backend reported %v", ErrSolverFailure, res.Status)
	}

	n := p.NumItems()
	k := p.NumCategories()
	if len(res.Values) != n*k {
		return nil, fmt.Errorf("%w: backend returned %d variable values, want %d",
			ErrSolverFailure, len(res.Values), n*k)
	}

	assignments := make(map[string]string, n)
	for i, it := range p.items {
		chosen := -1
		for j, c := range p.categories {
			v := res.Values[i*k+j]
			switch {
			case v >= 1-params.Tolerance:
				if chosen >= 0 {
					return nil, fmt.Errorf("%w: item %q selected for both %q and %q",
						ErrIntegrality, it.ID, p.categories[chosen].ID, c.ID)
				}
				chosen = j
			case v > params.Tolerance:
				return nil, fmt.Errorf("%w: variable of item %q and category %q has value %v",
					ErrIntegrality, it.ID, c.ID, v)
			}
		}
		if chosen < 0 {
			return nil, fmt.Errorf("%w: item %q selected for no category", ErrIntegrality, it.ID)
		}
		assignments[it.ID] = p.categories[chosen].ID
	}

	sol := &Solution{
		Feasible:    true,
		Assignments: assignments,
		Objective:   res.Objective,
		Status:      res.Status,
	}
	if err := sol.revalidate(p, policy, params); err != nil {
		log.Errorf("extracted assignment failed revalidation: %v", err)
		return nil, err
	}
	return sol, nil
}

// revalidate checks the extracted assignment against the constraints it
// was solved under, without trusting the backend.
func (s *Solution) revalidate(p *Problem, policy Policy, params Params) error {
	if got, want := len(s.Assignments), p.NumItems(); got != want {
		return fmt.Errorf("%w: %d items assigned, want %d", ErrInvariant, got, want)
	}
	totals := make(map[string]float64, p.NumCategories())
	for _, it := range p.items {
		cat, ok := s.Assignments[it.ID]
		if !ok {
			return fmt.Errorf("%w: item %q missing from the assignment", ErrInvariant, it.ID)
		}
		totals[cat] += it.Price
	}
	for _, c := range p.categories {
		total := totals[c.ID]
		if thresholdMet(total, c.Threshold, policy.Direction, params.Tolerance) {
			continue
		}
		if policy.Direction == Capacity {
			return fmt.Errorf("%w: category %q total %v above capacity %v",
				ErrInvariant, c.ID, total, c.Threshold)
		}
		return fmt.Errorf("%w: category %q total %v below threshold %v",
			ErrInvariant, c.ID, total, c.Threshold)
	}
	return nil
}

// thresholdMet reports whether total is on the required side of threshold
// for the given direction. The slack scales with the threshold to absorb
// float accumulation; revalidation and reporting share it so they cannot
// disagree at the boundary.
func thresholdMet(total, threshold float64, d Direction, tolerance float64) bool {
	slack := tolerance * math.Max(1, math.Abs(threshold))
	if d == Capacity {
		return total <= threshold+slack
	}
	return total >= threshold-slack
}

// ByCategory returns the assignment grouped as category identifier to
// sorted item identifiers. Categories with no items are absent. Returns
// nil for an infeasible solution.
func (s *Solution) ByCategory() map[string][]string {
	if !s.Feasible {
		return nil
	}
	out := make(map[string][]string)
	for item, cat := range s.Assignments {
		out[cat] = append(out[cat], item)
	}
	for _, items := range out {
		sort.Strings(items)
	}
	return out
}

// Report computes the per-category totals of a feasible solution against
// the problem's thresholds in the policy's direction, in the problem's
// category order. Satisfied is judged with the same tolerance-scaled
// slack the extraction revalidation uses. Returns nil for an infeasible
// solution.
func (s *Solution) Report(p *Problem, policy Policy, params Params) []CategoryReport {
	if !s.Feasible {
		return nil
	}
	totals := make(map[string]float64, p.NumCategories())
	for _, it := range p.items {
		totals[s.Assignments[it.ID]] += it.Price
	}
	reports := make([]CategoryReport, 0, p.NumCategories())
	for _, c := range p.categories {
		total := totals[c.ID]
		satisfied := thresholdMet(total, c.Threshold, policy.Direction, params.Tolerance)
		reports = append(reports, CategoryReport{
			CategoryID: c.ID,
			Threshold:  c.Threshold,
			Total:      total,
			Satisfied:  satisfied,
		})
	}
	return reports
}
