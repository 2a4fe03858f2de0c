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
	"time"
)

// Default parameter values, see Params.
const (
	DefaultTolerance    = 1e-6
	DefaultMaxVariables = 1 << 20
)

// Params holds the knobs of one solve. Use DefaultParams as a starting
// point.
type Params struct {
	// Tolerance is the integrality tolerance used when extracting a
	// solution: a variable counts as selected when its value exceeds
	// 1-Tolerance. Must be in (0, 0.5).
	Tolerance float64

	// MaxVariables caps the number of decision variables
	// (items x categories) a model may have. Building a larger model
	// fails with ErrModelBuild. Must be positive.
	MaxVariables int

	// TimeLimit bounds a single solver invocation. Zero means no limit.
	TimeLimit time.Duration
}

// DefaultParams returns the default solve parameters.
func DefaultParams() Params {
	return Params{
		Tolerance:    DefaultTolerance,
		MaxVariables: DefaultMaxVariables,
	}
}

// Validate checks the parameters for out-of-range values and reports
// violations wrapping ErrConfiguration.
func (p Params) Validate() error {
	if p.Tolerance <= 0 || p.Tolerance >= 0.5 {
		return fmt.Errorf("%w: tolerance %v outside (0, 0.5)", ErrConfiguration, p.Tolerance)
	}
	if p.MaxVariables <= 0 {
		return fmt.Errorf("%w: max variables %d must be positive", ErrConfiguration, p.MaxVariables)
	}
	if p.TimeLimit < 0 {
		return fmt.Errorf("%w: negative time limit %v", ErrConfiguration, p.TimeLimit)
	}
	return nil
}
