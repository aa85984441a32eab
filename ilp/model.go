// SPDX-License-Identifier: MIT
// Package: epcgg/ilp
//
// model.go — the linear model primitives.
//
// Design:
//   - Everything is dense-id flat data (arena + index pattern): variables
//     are identified by their index in Model.Vars, terms reference
//     variables by that index, constraints are plain value structs. No
//     solver handles, no back-references.
//   - All variables are binary; bounds are implied and engines may rely
//     on them.

package ilp

// Sense is the comparison sense of a linear constraint.
type Sense int

const (
	// LessEq is Σ terms ≤ rhs.
	LessEq Sense = iota
	// Equal is Σ terms = rhs.
	Equal
	// GreaterEq is Σ terms ≥ rhs.
	GreaterEq
)

// String renders the sense the way the constraint reads.
func (s Sense) String() string {
	switch s {
	case LessEq:
		return "<="
	case Equal:
		return "=="
	case GreaterEq:
		return ">="
	default:
		return "?"
	}
}

// Var is one binary decision variable: x[Edge][Color] = 1 iff edge Edge
// receives color Color. ID is the variable's index in Model.Vars.
type Var struct {
	ID    int
	Edge  int
	Color int
	Name  string
}

// Term is one coefficient–variable product of a linear expression.
type Term struct {
	Var   int // variable id
	Coeff float64
}

// Constraint is one linear constraint: Σ Terms ⟨Sense⟩ RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// Model is a fully-specified 0/1 linear program: binary variables,
// constraints, and the objective (minimized when Minimize is set).
type Model struct {
	Vars        []Var
	Constraints []Constraint
	Objective   []Term
	Minimize    bool
}

// NumVars returns the number of decision variables.
func (m *Model) NumVars() int { return len(m.Vars) }

// NumConstraints returns the number of constraints.
func (m *Model) NumConstraints() int { return len(m.Constraints) }
