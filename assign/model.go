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

	log "github.com/golang/glog"
)

// ColIndex is the index of a decision variable column in a Model.
type ColIndex int

// Row is one linear constraint over a Model's columns, in
// Lower <= sum(Coefs[k] * x[Cols[k]]) <= Upper form. Bounds may be
// infinite on one side.
type Row struct {
	Lower float64
	Upper float64
	Cols  []ColIndex
	Coefs []float64
}

// Model is a complete ILP instance over binary columns: one column per
// (item, category) pair, one equality row per item, one threshold row per
// category, plus objective costs. A Model is immutable once built and is
// read-only input to a Solver.
type Model struct {
	numItems      int
	numCategories int

	rows     []Row
	costs    []float64
	maximize bool
}

// Col returns the column index of the variable selecting category j for
// item i.
func (m *Model) Col(i, j int) ColIndex {
	return ColIndex(i*m.numCategories + j)
}

// NumCols returns the number of decision variable columns.
func (m *Model) NumCols() int { return m.numItems * m.numCategories }

// NumRows returns the number of constraint rows.
func (m *Model) NumRows() int { return len(m.rows) }

// Rows returns the constraint rows. Callers must not modify the returned
// slice.
func (m *Model) Rows() []Row { return m.rows }

// Costs returns the objective coefficient of each column. Callers must
// not modify the returned slice.
func (m *Model) Costs() []float64 { return m.costs }

// Maximize reports whether the objective is to be maximized rather than
// minimized.
func (m *Model) Maximize() bool { return m.maximize }

// BuildModel deterministically constructs the ILP for the given problem
// under the given policy:
//
//   - one binary column per (item, category) pair, indexed by Col;
//   - per item, an equality row forcing the sum of its columns to 1;
//   - per category, a row bounding the price-weighted sum of its columns
//     by the category's threshold on the side named by policy.Direction;
//   - objective costs per policy.Objective.
//
// It fails with ErrModelBuild when the column count would exceed
// params.MaxVariables, and with ErrConfiguration when the policy or
// parameters are invalid. BuildModel does not invoke any solver.
func BuildModel(p *Problem, policy Policy, params Params) (*Model, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	n := p.NumItems()
	k := p.NumCategories()
	if cols := n * k; cols > params.MaxVariables {
		return nil, fmt.Errorf("%w: %d columns (%d items x %d categories) exceed the maximum %d",
			ErrModelBuild, cols, n, k, params.MaxVariables)
	}

	model := &Model{
		numItems:      n,
		numCategories: k,
		rows:          make([]Row, 0, n+k),
		costs:         make([]float64, n*k),
	}

	for i := range p.items {
		cols := make([]ColIndex, k)
		coefs := make([]float64, k)
		for j := 0; j < k; j++ {
			cols[j] = model.Col(i, j)
			coefs[j] = 1
		}
		model.rows = append(model.rows, Row{Lower: 1, Upper: 1, Cols: cols, Coefs: coefs})
	}

	for j, c := range p.categories {
		cols := make([]ColIndex, n)
		coefs := make([]float64, n)
		for i, it := range p.items {
			cols[i] = model.Col(i, j)
			coefs[i] = it.Price
		}
		row := Row{Cols: cols, Coefs: coefs}
		switch policy.Direction {
		case Coverage:
			row.Lower, row.Upper = c.Threshold, math.Inf(1)
		case Capacity:
			row.Lower, row.Upper = math.Inf(-1), c.Threshold
		}
		model.rows = append(model.rows, row)
	}

	switch policy.Objective {
	case FeasibilityOnly:
		// Constant objective; costs stay zero.
	case MaximizeTotalValue, MinimizeTotalCost:
		// Every item is always placed, so the total placed price is fixed
		// and this objective cannot distinguish feasible assignments.
		log.Warningf("objective %v is constant under the one-category-per-item constraint", policy.Objective)
		for i, it := range p.items {
			for j := 0; j < k; j++ {
				model.costs[model.Col(i, j)] = it.Price
			}
		}
		model.maximize = policy.Objective == MaximizeTotalValue
	}

	return model, nil
}
