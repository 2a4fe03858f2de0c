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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var coveragePolicy = Policy{Objective: FeasibilityOnly, Direction: Coverage}

func TestExtractSolution(t *testing.T) {
	p := twoByTwoProblem(t)
	// A -> Y, B -> X satisfies X: 20 >= 15 and Y: 10 >= 5.
	res := &Result{Status: StatusOptimal, Values: []float64{0, 1, 1, 0}}

	sol, err := ExtractSolution(p, coveragePolicy, DefaultParams(), res)
	if err != nil {
		t.Fatalf("ExtractSolution() returned with unexpected error %v", err)
	}
	if !sol.Feasible {
		t.Fatalf("Feasible = false, want true")
	}
	want := map[string]string{"A": "Y", "B": "X"}
	if diff := cmp.Diff(want, sol.Assignments); diff != "" {
		t.Errorf("Assignments returned unexpected diff (-want +got):\n%s", diff)
	}
	if got, want := sol.Status, StatusOptimal; got != want {
		t.Errorf("Status = %v, want %v", got, want)
	}
}

func TestExtractSolution_NearIntegralValues(t *testing.T) {
	p := twoByTwoProblem(t)
	// Backends report values within tolerance of 0 and 1, not exact binaries.
	res := &Result{Status: StatusOptimal, Values: []float64{2e-7, 0.9999997, 0.9999999, -1e-9}}

	sol, err := ExtractSolution(p, coveragePolicy, DefaultParams(), res)
	if err != nil {
		t.Fatalf("ExtractSolution() returned with unexpected error %v", err)
	}
	want := map[string]string{"A": "Y", "B": "X"}
	if diff := cmp.Diff(want, sol.Assignments); diff != "" {
		t.Errorf("Assignments returned unexpected diff (-want +got):\n%s", diff)
	}
}

func TestExtractSolution_Infeasible(t *testing.T) {
	p := twoByTwoProblem(t)
	res := &Result{Status: StatusInfeasible}

	sol, err := ExtractSolution(p, coveragePolicy, DefaultParams(), res)
	if err != nil {
		t.Fatalf("ExtractSolution() returned with unexpected error %v", err)
	}
	if sol.Feasible {
		t.Errorf("Feasible = true, want false")
	}
	if sol.Assignments != nil {
		t.Errorf("Assignments = %v, want nil", sol.Assignments)
	}
}

func TestExtractSolution_Integrality(t *testing.T) {
	testCases := []struct {
		name   string
		values []float64
	}{
		{
			name:   "ItemSelectedTwice",
			values: []float64{1, 1, 1, 0},
		},
		{
			name:   "ItemSelectedNever",
			values: []float64{0, 0, 1, 0},
		},
		{
			name:   "FractionalValue",
			values: []float64{0.5, 0.5, 1, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := twoByTwoProblem(t)
			res := &Result{Status: StatusOptimal, Values: tc.values}

			_, err := ExtractSolution(p, coveragePolicy, DefaultParams(), res)
			if !errors.Is(err, ErrIntegrality) {
				t.Errorf("ExtractSolution() returned error %v, want ErrIntegrality", err)
			}
		})
	}
}

func TestExtractSolution_SolverFailure(t *testing.T) {
	testCases := []struct {
		name string
		res  *Result
	}{
		{
			name: "Unbounded",
			res:  &Result{Status: StatusUnbounded},
		},
		{
			name: "Error",
			res:  &Result{Status: StatusError},
		},
		{
			name: "Unknown",
			res:  &Result{Status: StatusUnknown},
		},
		{
			name: "WrongValueCount",
			res:  &Result{Status: StatusOptimal, Values: []float64{1, 0}},
		},
		{
			name: "NilResult",
			res:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := twoByTwoProblem(t)
			_, err := ExtractSolution(p, coveragePolicy, DefaultParams(), tc.res)
			if !errors.Is(err, ErrSolverFailure) {
				t.Errorf("ExtractSolution() returned error %v, want ErrSolverFailure", err)
			}
		})
	}
}

func TestExtractSolution_InvariantViolation(t *testing.T) {
	p := twoByTwoProblem(t)
	// A -> X, B -> Y is integral but leaves X at 10 < 15.
	res := &Result{Status: StatusOptimal, Values: []float64{1, 0, 0, 1}}

	_, err := ExtractSolution(p, coveragePolicy, DefaultParams(), res)
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("ExtractSolution() returned error %v, want ErrInvariant", err)
	}
}

func TestExtractSolution_InvariantViolation_Capacity(t *testing.T) {
	p := twoByTwoProblem(t)
	// B -> Y puts 20 into Y, above its capacity of 5.
	res := &Result{Status: StatusOptimal, Values: []float64{1, 0, 0, 1}}

	_, err := ExtractSolution(p, Policy{Objective: FeasibilityOnly, Direction: Capacity}, DefaultParams(), res)
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("ExtractSolution() returned error %v, want ErrInvariant", err)
	}
}

func TestSolution_ByCategory(t *testing.T) {
	p, err := NewProblem(
		[]Item{{ID: "A", Price: 10}, {ID: "B", Price: 20}, {ID: "C", Price: 5}},
		[]Category{{ID: "X", Threshold: 15}, {ID: "Y", Threshold: 5}},
	)
	if err != nil {
		t.Fatalf("NewProblem() returned with unexpected error %v", err)
	}
	// A -> X, B -> X, C -> Y.
	res := &Result{Status: StatusOptimal, Values: []float64{1, 0, 1, 0, 0, 1}}
	sol, err := ExtractSolution(p, coveragePolicy, DefaultParams(), res)
	if err != nil {
		t.Fatalf("ExtractSolution() returned with unexpected error %v", err)
	}

	want := map[string][]string{
		"X": {"A", "B"},
		"Y": {"C"},
	}
	if diff := cmp.Diff(want, sol.ByCategory()); diff != "" {
		t.Errorf("ByCategory() returned unexpected diff (-want +got):\n%s", diff)
	}
}

func TestSolution_Report(t *testing.T) {
	p, err := NewProblem(
		[]Item{{ID: "A", Price: 10}, {ID: "B", Price: 20}, {ID: "C", Price: 5}},
		[]Category{{ID: "X", Threshold: 15}, {ID: "Y", Threshold: 5}},
	)
	if err != nil {
		t.Fatalf("NewProblem() returned with unexpected error %v", err)
	}
	res := &Result{Status: StatusOptimal, Values: []float64{1, 0, 1, 0, 0, 1}}
	sol, err := ExtractSolution(p, coveragePolicy, DefaultParams(), res)
	if err != nil {
		t.Fatalf("ExtractSolution() returned with unexpected error %v", err)
	}

	want := []CategoryReport{
		{CategoryID: "X", Threshold: 15, Total: 30, Satisfied: true},
		{CategoryID: "Y", Threshold: 5, Total: 5, Satisfied: true},
	}
	if diff := cmp.Diff(want, sol.Report(p, coveragePolicy, DefaultParams())); diff != "" {
		t.Errorf("Report() returned unexpected diff (-want +got):\n%s", diff)
	}
}

func TestSolution_Report_BoundarySlack(t *testing.T) {
	// The assigned total falls short of the threshold by less than the
	// revalidation slack; the report must agree with revalidation and
	// still call the category satisfied.
	p, err := NewProblem(
		[]Item{{ID: "A", Price: 10}, {ID: "B", Price: 4.99999}},
		[]Category{{ID: "X", Threshold: 15}},
	)
	if err != nil {
		t.Fatalf("NewProblem() returned with unexpected error %v", err)
	}
	res := &Result{Status: StatusOptimal, Values: []float64{1, 1}}

	sol, err := ExtractSolution(p, coveragePolicy, DefaultParams(), res)
	if err != nil {
		t.Fatalf("ExtractSolution() returned with unexpected error %v", err)
	}
	reports := sol.Report(p, coveragePolicy, DefaultParams())
	if len(reports) != 1 || !reports[0].Satisfied {
		t.Errorf("Report() = %+v, want category X satisfied", reports)
	}
}

func TestSolution_Infeasible_NoGrouping(t *testing.T) {
	sol := &Solution{Status: StatusInfeasible}
	if got := sol.ByCategory(); got != nil {
		t.Errorf("ByCategory() = %v, want nil", got)
	}
	p := twoByTwoProblem(t)
	if got := sol.Report(p, coveragePolicy, DefaultParams()); got != nil {
		t.Errorf("Report() = %v, want nil", got)
	}
}
