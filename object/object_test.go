package object_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dudk/patcher"
	"github.com/dudk/patcher/object"
)

// counter is a minimal object for protocol tests: one inlet, one
// outlet, counts received bangs.
type counter struct {
	object.Base
	bangs      int
	parseErr   error
	destructed bool
}

func (c *counter) Type() string {
	return "test.counter"
}

func (c *counter) Construct() {
	in := c.AddInlet()
	in.OnBang(func() {
		c.bangs++
	})
	c.AddOutlet()
}

func (c *counter) ParamClear() {
	c.bangs = 0
}

func (c *counter) ParamParse(args string) error {
	return c.parseErr
}

func (c *counter) Destruct() {
	c.destructed = true
}

func TestTokens(t *testing.T) {
	var tests = []struct {
		args     string
		expected []string
	}{
		{"", nil},
		{"foo", []string{"foo"}},
		{"foo bar", []string{"foo", "bar"}},
		{"foo, bar,baz", []string{"foo", "bar", "baz"}},
		{"  foo\t bar  ", []string{"foo", "bar"}},
		{",,,", nil},
	}
	for _, test := range tests {
		tokens := object.Tokens(test.args)
		assert.Equal(t, len(test.expected), len(tokens))
		for i := range test.expected {
			assert.Equal(t, test.expected[i], tokens[i])
		}
	}
}

func TestBasePorts(t *testing.T) {
	c := &counter{}
	c.Construct()
	assert.Equal(t, 1, c.NumInlets())
	assert.Equal(t, 1, c.NumOutlets())

	c.Inlet(0).Dispatch(patcher.NewBang())
	assert.Equal(t, 1, c.bangs)
	// unhandled kinds are dropped silently
	c.Inlet(0).Dispatch(patcher.NewInt(1))
	assert.Equal(t, 1, c.bangs)
}

func TestParse(t *testing.T) {
	c := &counter{}
	c.Construct()
	assert.Nil(t, object.Parse(c, "label rest"))
	assert.Equal(t, "label rest", c.Args())
	assert.Equal(t, "label", c.Label())

	// a failed re-parse leaves the cleared baseline, not the
	// previous arguments
	c.parseErr = errors.New("bad syntax")
	assert.NotNil(t, object.Parse(c, "other"))
	assert.Equal(t, "", c.Args())
	assert.Equal(t, "", c.Label())
}

func TestOutletFanOut(t *testing.T) {
	src := &counter{}
	src.Construct()
	a := &counter{}
	a.Construct()
	b := &counter{}
	b.Construct()

	out := src.Outlet(0)
	out.Connect(a, 0)
	out.Connect(b, 0)
	out.Connect(a, 0) // duplicate target delivers twice
	assert.Equal(t, 3, out.Targets())

	out.SendBang()
	assert.Equal(t, 2, a.bangs)
	assert.Equal(t, 1, b.bangs)

	assert.True(t, out.Disconnect(a, 0))
	out.SendBang()
	assert.Equal(t, 3, a.bangs)
	assert.Equal(t, 2, b.bangs)

	assert.True(t, out.Disconnect(a, 0))
	assert.False(t, out.Disconnect(a, 0))
}

func TestGuard(t *testing.T) {
	loop := &counter{}
	loop.Construct()
	g := &object.Guard{Limit: 8}
	loop.Bind(g)
	// feedback into own inlet
	loop.Outlet(0).Connect(loop, 0)
	loop.Inlet(0).OnBang(func() {
		loop.bangs++
		loop.Outlet(0).SendBang()
	})

	g.Deliver(loop, 0, patcher.NewBang())
	assert.Equal(t, 8, loop.bangs)
}

func TestRegistry(t *testing.T) {
	object.Register("test.registered", func() object.Object {
		return &counter{}
	})
	assert.True(t, object.IsValid("test.registered"))
	assert.False(t, object.IsValid("test.unregistered"))

	obj, err := object.New("test.registered")
	assert.Nil(t, err)
	assert.Equal(t, "test.counter", obj.Type())

	_, err = object.New("test.unregistered")
	assert.True(t, errors.Is(err, patcher.ErrUnknownObjectType))

	assert.Panics(t, func() {
		object.Register("test.registered", func() object.Object {
			return &counter{}
		})
	})
	assert.Panics(t, func() {
		object.Register("", nil)
	})

	types := object.Types()
	found := false
	for _, typ := range types {
		if typ == "test.registered" {
			found = true
		}
	}
	assert.True(t, found)
}
