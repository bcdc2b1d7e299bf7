package values

var _ Callable = (*Class)(nil)

// Class is a Lox class: a name, an optional superclass, and its own
// methods. Method lookup walks the superclass chain at call time, not at
// declaration time, so redefining an ancestor's method later has no effect
// on classes already declared (matching spec.md's inheritance semantics).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// FindMethod looks up name on c, then on its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of "init", or zero if the class declares none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance of c, running its "init" method (if any)
// with args.
func (c *Class) Call(caller Caller, args []Value) (Value, error) {
	inst := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(inst).Call(caller, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func (c *Class) String() string { return c.Name }
func (*Class) Type() string     { return "class" }
func (*Class) Truth() bool      { return true }
