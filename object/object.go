// Package object defines the protocol every patch object implements:
// port declaration, parameter hooks and per-kind message handlers.
package object

import "strings"

// Object is implemented by every node type in a patch. Construct
// declares ports and handlers, ParamClear resets parameter-derived
// state to an empty baseline and ParamParse applies raw arguments on
// top of it. Everything else is provided by Base.
type Object interface {
	// Type returns the registry tag of this object type.
	Type() string
	// Construct declares inlets, outlets and message handlers.
	Construct()
	// ParamClear resets parameter-derived state to an empty baseline.
	ParamClear()
	// ParamParse applies raw arguments. It is always preceded by
	// ParamClear, so a failed parse leaves the baseline state.
	ParamParse(args string) error
	// Destruct releases object-owned resources.
	Destruct()

	NumInlets() int
	Inlet(i int) *Inlet
	NumOutlets() int
	Outlet(i int) *Outlet

	ID() uint
	SetID(id uint)
	Args() string
	SetArgs(args string)
	Label() string
	Bind(g *Guard)
}

// Base holds ports, identity and raw arguments for an object type.
// Concrete objects embed it and implement the four protocol hooks,
// the way pipe components embed their shared identity.
type Base struct {
	id      uint
	args    string
	guard   *Guard
	inlets  []*Inlet
	outlets []*Outlet
}

// AddInlet declares a new inlet and returns it for handler registration.
func (b *Base) AddInlet() *Inlet {
	in := &Inlet{}
	b.inlets = append(b.inlets, in)
	return in
}

// AddOutlet declares a new outlet.
func (b *Base) AddOutlet() *Outlet {
	out := &Outlet{guard: b.guard}
	b.outlets = append(b.outlets, out)
	return out
}

// NumInlets returns number of declared inlets.
func (b *Base) NumInlets() int {
	return len(b.inlets)
}

// Inlet returns inlet at provided position.
func (b *Base) Inlet(i int) *Inlet {
	return b.inlets[i]
}

// NumOutlets returns number of declared outlets.
func (b *Base) NumOutlets() int {
	return len(b.outlets)
}

// Outlet returns outlet at provided position.
func (b *Base) Outlet(i int) *Outlet {
	return b.outlets[i]
}

// ID returns the persisted object id.
func (b *Base) ID() uint {
	return b.id
}

// SetID assigns the persisted object id. Called by the owning graph.
func (b *Base) SetID(id uint) {
	b.id = id
}

// Args returns the raw arguments of the last successful parse.
func (b *Base) Args() string {
	return b.args
}

// SetArgs stores raw arguments. Called by Parse.
func (b *Base) SetArgs(args string) {
	b.args = args
}

// Label returns the name this object answers to for external
// injection: the first token of its arguments.
func (b *Base) Label() string {
	if tokens := Tokens(b.args); len(tokens) > 0 {
		return tokens[0]
	}
	return ""
}

// Bind attaches the owning graph dispatch guard. Must be called
// before Construct so that declared outlets share the guard.
func (b *Base) Bind(g *Guard) {
	b.guard = g
	for _, out := range b.outlets {
		out.guard = g
	}
}

// Destruct is a no-op by default.
func (b *Base) Destruct() {}

// Parse applies raw arguments to an object through its parameter
// hooks. State is cleared before parsing, so a failed parse is
// observably a clear, not a no-op.
func Parse(o Object, args string) error {
	o.ParamClear()
	o.SetArgs("")
	if err := o.ParamParse(args); err != nil {
		return err
	}
	o.SetArgs(args)
	return nil
}

// Tokens splits raw arguments into tokens on spaces, tabs and commas.
// Empty tokens are dropped.
func Tokens(args string) []string {
	return strings.FieldsFunc(args, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}
