package values

import "github.com/dolthub/swiss"

var _ HasSetAttr = (*Instance)(nil)

// Instance is a runtime instance of a Class. Its field table uses the same
// swiss-table backed map the environment package uses for variable scopes,
// since both are hot, string-keyed, append-mostly maps on the interpreter's
// critical path. bound memoizes Bind results per method name, so repeated
// accesses of the same instance/method (a.m == a.m) yield the identical
// *Function and closure, which Equal's pointer-identity fallback requires.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
	bound  *swiss.Map[string, *Function]
}

// NewInstance returns a fresh, field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		fields: swiss.NewMap[string, Value](8),
		bound:  swiss.NewMap[string, *Function](8),
	}
}

// Attr reads a field first, then a bound method, reporting a runtime error
// (via a nil Value and nil error, left to the caller to turn into a
// RuntimeError with source position) if neither exists.
func (i *Instance) Attr(name string) (Value, error) {
	if v, ok := i.fields.Get(name); ok {
		return v, nil
	}
	if fn, ok := i.bound.Get(name); ok {
		return fn, nil
	}
	if m, ok := i.Class.FindMethod(name); ok {
		bound := m.Bind(i)
		i.bound.Put(name, bound)
		return bound, nil
	}
	return nil, nil
}

// SetAttr writes a field, creating it if absent. Lox instances may gain
// fields dynamically at any point, they are not declared by the class.
func (i *Instance) SetAttr(name string, v Value) error {
	i.fields.Put(name, v)
	return nil
}

func (i *Instance) String() string { return i.Class.Name + " instance" }
func (*Instance) Type() string     { return "instance" }
func (*Instance) Truth() bool      { return true }
