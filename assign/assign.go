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

// Package assign builds and solves the item-to-category assignment ILP.
//
// An instance consists of priced items and categories with price
// thresholds. The model places every item into exactly one category while
// each category's assigned total respects its threshold, from below
// (coverage) or from above (capacity) as selected by the Policy.
//
// An Engine ties a Solver backend to a set of Params and runs
// the full pipeline: Problem -> BuildModel -> Solver.Solve ->
// ExtractSolution. The Solver interface is the only boundary to the
// actual ILP-solving capability; this package never solves anything
// itself. Infeasible instances are a normal outcome, reported through
// Solution.Feasible rather than an error.
package assign

import (
	"fmt"

	log "github.com/golang/glog"
)

// Engine runs solves against a fixed Solver backend and parameter set.
// An Engine is immutable and safe for concurrent use; independent solves
// share no state.
type Engine struct {
	solver Solver
	params Params
}

// NewEngine returns an Engine using the given backend and parameters.
func NewEngine(solver Solver, params Params) (*Engine, error) {
	if solver == nil {
		return nil, fmt.Errorf("%w: nil solver", ErrConfiguration)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Engine{solver: solver, params: params}, nil
}

// Solve builds the model for one problem under one policy, hands it to
// the backend, and extracts the validated solution. Instances that are
// infeasible by the aggregate totals alone are answered without invoking
// the backend.
func (e *Engine) Solve(p *Problem, policy Policy) (*Solution, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}

	if provablyInfeasible(p, policy.Direction) {
		log.V(1).Infof("aggregate totals rule out any assignment (prices %v, thresholds %v, %v)",
			p.TotalPrice(), p.TotalThreshold(), policy.Direction)
		return &Solution{Status: StatusInfeasible}, nil
	}

	m, err := BuildModel(p, policy, e.params)
	if err != nil {
		return nil, err
	}

	log.V(1).Infof("solving %d x %d assignment model (%d rows, limit %v)",
		p.NumItems(), p.NumCategories(), m.NumRows(), e.params.TimeLimit)
	res, err := e.solver.Solve(m, e.params.TimeLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}

	return ExtractSolution(p, policy, e.params, res)
}

// provablyInfeasible reports whether the aggregate totals alone rule out
// any assignment: every item is placed somewhere, so under coverage the
// prices must add up to at least the thresholds, and under capacity they
// must fit inside them.
func provablyInfeasible(p *Problem, d Direction) bool {
	switch d {
	case Coverage:
		return p.TotalPrice() < p.TotalThreshold()
	case Capacity:
		return p.TotalPrice() > p.TotalThreshold()
	}
	return false
}
