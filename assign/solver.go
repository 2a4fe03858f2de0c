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

import "time"

// Status classifies the outcome reported by a Solver backend.
type Status int

const (
	// StatusUnknown is the zero value; a backend must never return it.
	StatusUnknown Status = iota
	// StatusOptimal means the backend proved its incumbent optimal.
	StatusOptimal
	// StatusFeasible means the backend found an incumbent but stopped
	// before proving optimality, typically on the time limit.
	StatusFeasible
	// StatusInfeasible means the backend proved that no assignment
	// satisfies all constraints.
	StatusInfeasible
	// StatusUnbounded means the backend reported an unbounded objective.
	StatusUnbounded
	// StatusError means the backend failed or produced nothing usable.
	StatusError
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusFeasible:
		return "Feasible"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Result is the raw outcome of one Solve call.
type Result struct {
	Status Status

	// Values holds one value per model column, indexed by ColIndex.
	// Only meaningful for StatusOptimal and StatusFeasible.
	Values []float64

	// Objective is the objective value at Values.
	Objective float64
}

// Solver is the narrow boundary to an external ILP-solving backend.
//
// Implementations must be deterministic for a fixed model and seed, and
// must honor the time limit by returning StatusFeasible (with an
// incumbent) or StatusError instead of blocking past it. A zero
// timeLimit means no limit. The model is read-only input.
//
// The returned error is reserved for transport-level failures (the
// backend could not be driven at all); solver-reported outcomes,
// including infeasibility, travel in Result.Status.
type Solver interface {
	Solve(m *Model, timeLimit time.Duration) (*Result, error)
}
