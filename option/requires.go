package option

import "github.com/zclconf/go-cty/cty"

// Requires is a logical expression over the presence and values of other
// options in the same set. The concrete node types form a small sum type;
// consumers descend it with a type switch.
type Requires interface {
	reqNode()
}

// RequiresKey requires the referenced option to be present.
type RequiresKey string

// RequiresVal requires the referenced option to hold a specific value. A
// cty.NilVal value inverts the sense: the option must be absent.
type RequiresVal struct {
	Key   string
	Value cty.Value
}

// RequiresNot negates a sub-expression.
type RequiresNot struct {
	Expr Requires
}

// RequiresAll is the conjunction of its sub-expressions.
type RequiresAll []Requires

// RequiresOne is the disjunction of its sub-expressions.
type RequiresOne []Requires

func (RequiresKey) reqNode() {}
func (RequiresVal) reqNode() {}
func (RequiresNot) reqNode() {}
func (RequiresAll) reqNode() {}
func (RequiresOne) reqNode() {}

// AllOf builds a conjunction.
func AllOf(exprs ...Requires) RequiresAll { return RequiresAll(exprs) }

// OneOf builds a disjunction.
func OneOf(exprs ...Requires) RequiresOne { return RequiresOne(exprs) }

// Not negates an expression.
func Not(expr Requires) RequiresNot { return RequiresNot{Expr: expr} }
