// Package environment implements the chained lexical scopes a running Lox
// program evaluates against. A scope is shared and mutable: a closure that
// outlives the block that created it keeps the same scope other code can
// still be writing to.
package environment

import "github.com/dolthub/swiss"

// Environment is a single lexical scope, optionally chained to the scope it
// is nested in. The interpreter pushes one for the global scope, one per
// function call, and one per block.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, any]
}

// New returns a fresh environment enclosed by parent. parent is nil for the
// global environment.
func New(parent *Environment) *Environment {
	return &Environment{enclosing: parent, values: swiss.NewMap[string, any](8)}
}

// Define binds name to value in this scope, shadowing any binding of the
// same name in an enclosing scope. Redeclaring a name already defined in
// this exact scope silently replaces it, since that is legal at the
// top level of a Lox script (var a = 1; var a = 2;).
func (e *Environment) Define(name string, value any) {
	e.values.Put(name, value)
}

// Get looks up name starting in this scope and walking outward.
func (e *Environment) Get(name string) (any, bool) {
	if v, ok := e.values.Get(name); ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// GetAt looks up name in the scope dist hops out from this one. The
// resolver guarantees dist is valid whenever it records a hop count, so
// ancestor must succeed.
func (e *Environment) GetAt(dist int, name string) any {
	v, _ := e.ancestor(dist).values.Get(name)
	return v
}

// Assign rebinds an existing name starting in this scope and walking
// outward, reporting whether it found a scope that already defines name.
func (e *Environment) Assign(name string, value any) bool {
	if _, ok := e.values.Get(name); ok {
		e.values.Put(name, value)
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return false
}

// AssignAt rebinds name in the scope dist hops out from this one.
func (e *Environment) AssignAt(dist int, name string, value any) {
	e.ancestor(dist).values.Put(name, value)
}

func (e *Environment) ancestor(dist int) *Environment {
	env := e
	for i := 0; i < dist; i++ {
		env = env.enclosing
	}
	return env
}
