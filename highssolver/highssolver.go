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

// Package highssolver adapts the HiGHS mixed-integer solver to the
// assign.Solver contract. The binding embeds prebuilt HiGHS libraries,
// so no external installation is required.
package highssolver

import (
	"fmt"
	"time"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/allocsuite/coverassign/assign"
)

// Option configures an Adapter.
type Option func(*Adapter)

// WithOutput enables HiGHS log output. Off by default.
func WithOutput(enabled bool) Option {
	return func(a *Adapter) { a.output = enabled }
}

// WithSeed fixes the backend's random seed. Together with a fixed model
// this makes repeated solves return identical results.
func WithSeed(seed int) Option {
	return func(a *Adapter) { a.seed = seed }
}

// Adapter solves assign models with HiGHS. Construct with New; the zero
// value has not verified backend availability. An Adapter is stateless
// across solves and safe for concurrent use: every Solve drives a fresh
// HiGHS instance.
type Adapter struct {
	output bool
	seed   int
}

// New returns an Adapter after verifying that a HiGHS instance can be
// created, failing with assign.ErrSolverUnavailable otherwise.
func New(opts ...Option) (*Adapter, error) {
	probe, err := highs.NewSolver()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assign.ErrSolverUnavailable, err)
	}
	probe.Close()

	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Solve loads the model into a fresh HiGHS instance and runs it. A zero
// timeLimit means no limit.
func (a *Adapter) Solve(m *assign.Model, timeLimit time.Duration) (*assign.Result, error) {
	s, err := highs.NewSolver()
	if err != nil {
		return nil, fmt.Errorf("creating HiGHS instance: %w", err)
	}
	defer s.Close()

	if err := s.SetBoolOption("output_flag", a.output); err != nil {
		return nil, err
	}
	if err := s.SetIntOption("random_seed", a.seed); err != nil {
		return nil, err
	}
	if timeLimit > 0 {
		if err := s.SetFloatOption("time_limit", timeLimit.Seconds()); err != nil {
			return nil, err
		}
	}

	numCols := m.NumCols()
	lower := make([]float64, numCols)
	upper := make([]float64, numCols)
	types := make([]highs.VariableType, numCols)
	for i := 0; i < numCols; i++ {
		upper[i] = 1
		types[i] = highs.Integer
	}
	if err := s.AddVars(lower, upper); err != nil {
		return nil, err
	}
	if err := s.SetIntegrality(types); err != nil {
		return nil, err
	}
	if err := s.SetColCosts(m.Costs()); err != nil {
		return nil, err
	}
	if err := s.SetMaximize(m.Maximize()); err != nil {
		return nil, err
	}
	for _, row := range m.Rows() {
		index := make([]int, len(row.Cols))
		for k, c := range row.Cols {
			index[k] = int(c)
		}
		if err := s.AddRow(row.Lower, row.Upper, index, row.Coefs); err != nil {
			return nil, err
		}
	}

	sol, err := s.Run()
	if err != nil {
		return nil, fmt.Errorf("running HiGHS: %w", err)
	}

	res := &assign.Result{Status: statusOf(sol), Objective: sol.Objective}
	if res.Status == assign.StatusOptimal || res.Status == assign.StatusFeasible {
		// Limit stops carry a solution-bearing model status even when the
		// search found no incumbent; only the primal info value tells the
		// two apart, and without an incumbent ColValues are meaningless.
		primal, err := s.GetIntInfo("primal_solution_status")
		if err != nil {
			return nil, fmt.Errorf("querying incumbent status: %w", err)
		}
		if primal != solutionStatusFeasible {
			return &assign.Result{Status: assign.StatusError}, nil
		}
		res.Values = sol.ColValues
	}
	return res, nil
}

// solutionStatusFeasible is the "primal_solution_status" info value for a
// feasible primal solution (kSolutionStatusFeasible in the HiGHS C API).
const solutionStatusFeasible = 2

// statusOf maps HiGHS model statuses onto the adapter contract. All
// columns are bounded binaries, so the model cannot actually be
// unbounded and UnboundedOrInfeasible resolves to infeasible.
func statusOf(sol *highs.Solution) assign.Status {
	switch {
	case sol.IsOptimal():
		return assign.StatusOptimal
	case sol.Status == highs.ModelStatusInfeasible,
		sol.Status == highs.ModelStatusUnboundedOrInfeasible:
		return assign.StatusInfeasible
	case sol.Status == highs.ModelStatusUnbounded:
		return assign.StatusUnbounded
	case sol.HasSolution():
		// Stopped on a limit. The model status alone does not prove an
		// incumbent exists; Solve verifies that before trusting values.
		return assign.StatusFeasible
	default:
		return assign.StatusError
	}
}
