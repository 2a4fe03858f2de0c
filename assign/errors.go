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

import "errors"

// Sentinel errors returned (wrapped) by this package. Test with errors.Is.
//
// Note that an infeasible instance is not an error: it is reported through
// Solution.Feasible so that callers can branch on it directly.
var (
	// ErrValidation reports malformed input data: empty collections,
	// duplicate identifiers, or negative prices/thresholds.
	ErrValidation = errors.New("invalid problem data")

	// ErrConfiguration reports a missing or contradictory policy or
	// parameter selection.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrModelBuild reports that model construction tripped a resource
	// guard, such as the variable-count maximum.
	ErrModelBuild = errors.New("model build failed")

	// ErrSolverUnavailable reports that a solver backend could not be
	// instantiated. It is returned at adapter construction, never mid-solve.
	ErrSolverUnavailable = errors.New("solver backend unavailable")

	// ErrSolverFailure reports that the backend returned an unusable
	// status (unbounded, error) or a malformed result.
	ErrSolverFailure = errors.New("solver failed")

	// ErrIntegrality reports that the backend returned non-integral or
	// ambiguous variable values. This indicates a defect, not bad input.
	ErrIntegrality = errors.New("non-integral solver result")

	// ErrInvariant reports that an extracted assignment violates the
	// constraints it was solved under. This indicates a defect in the
	// model builder or the backend, not bad input.
	ErrInvariant = errors.New("solution invariant violated")
)
