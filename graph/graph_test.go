package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/dudk/patcher"
	"github.com/dudk/patcher/graph"
	"github.com/dudk/patcher/mock"
	"github.com/dudk/patcher/route"
	"github.com/dudk/patcher/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCreateObject(t *testing.T) {
	g := graph.New()
	h, err := g.CreateObject(route.Type, "foo bar")
	assert.Nil(t, err)
	assert.Equal(t, 1, g.Objects())

	obj, ok := g.Object(h)
	assert.True(t, ok)
	assert.Equal(t, route.Type, obj.Type())
	assert.Equal(t, "foo bar", obj.Args())
	assert.Equal(t, uint(1), obj.ID())

	_, err = g.CreateObject("no-such-object", "")
	assert.True(t, errors.Is(err, patcher.ErrUnknownObjectType))
	assert.Equal(t, 1, g.Objects())
}

func TestCreateParseFailure(t *testing.T) {
	g := graph.New()
	_, err := g.CreateObject(store.IntType, "nan")
	assert.True(t, errors.Is(err, patcher.ErrParameterParse))
	// failed create does not insert
	assert.Equal(t, 0, g.Objects())
}

func TestIsValidObject(t *testing.T) {
	assert.True(t, graph.IsValidObject(route.Type))
	assert.True(t, graph.IsValidObject(mock.Type))
	assert.False(t, graph.IsValidObject("no-such-object"))
}

func TestDeleteCascades(t *testing.T) {
	g := graph.New()
	r, _ := g.CreateObject(route.Type, "foo")
	s1, _ := g.CreateObject(mock.Type, "a")
	s2, _ := g.CreateObject(mock.Type, "b")
	assert.Nil(t, g.Connect(r, 0, s1, 0))
	assert.Nil(t, g.Connect(r, 1, s2, 0))
	assert.Nil(t, g.Connect(s1, 0, s2, 0))

	assert.Nil(t, g.DeleteObject(s1))
	assert.Equal(t, 2, g.Objects())

	// handles to other objects stay valid
	_, ok := g.Object(r)
	assert.True(t, ok)
	obj2, ok := g.Object(s2)
	assert.True(t, ok)

	// edges touching s1 are gone on both sides
	robj, _ := g.Object(r)
	robj.Inlet(0).Dispatch(patcher.NewList("foo"))
	assert.Equal(t, 0, len(obj2.(*mock.Sink).Received()))
	robj.Inlet(0).Dispatch(patcher.NewList("miss"))
	assert.Equal(t, 1, len(obj2.(*mock.Sink).Received()))

	// deleting with a stale handle is detected
	err := g.DeleteObject(s1)
	assert.True(t, errors.Is(err, patcher.ErrInvalidPort))
}

func TestStaleHandleAfterReuse(t *testing.T) {
	g := graph.New()
	h1, _ := g.CreateObject(mock.Type, "a")
	assert.Nil(t, g.DeleteObject(h1))
	// the freed slot is reused, the old handle must not alias it
	h2, _ := g.CreateObject(mock.Type, "b")
	_, ok := g.Object(h1)
	assert.False(t, ok)
	obj, ok := g.Object(h2)
	assert.True(t, ok)
	assert.Equal(t, "b", obj.Label())
}

func TestClear(t *testing.T) {
	g := graph.New()
	h, _ := g.CreateObject(route.Type, "foo")
	_, _ = g.CreateObject(mock.Type, "a")
	g.Clear()
	assert.Equal(t, 0, g.Objects())
	_, ok := g.Object(h)
	assert.False(t, ok)
	// ids restart after clear
	h, _ = g.CreateObject(mock.Type, "a")
	obj, _ := g.Object(h)
	assert.Equal(t, uint(1), obj.ID())
}

func TestConnectValidation(t *testing.T) {
	g := graph.New()
	r, _ := g.CreateObject(route.Type, "foo")
	s, _ := g.CreateObject(mock.Type, "")

	var tests = []struct {
		outlet int
		inlet  int
	}{
		{-1, 0},
		{2, 0},
		{0, 1},
		{0, -1},
	}
	for _, test := range tests {
		err := g.Connect(r, test.outlet, s, test.inlet)
		assert.True(t, errors.Is(err, patcher.ErrInvalidPort))
	}

	dead := s
	assert.Nil(t, g.DeleteObject(s))
	err := g.Connect(r, 0, dead, 0)
	assert.True(t, errors.Is(err, patcher.ErrInvalidPort))
}

func TestDuplicateConnections(t *testing.T) {
	g := graph.New()
	r, _ := g.CreateObject(route.Type, "foo")
	s, _ := g.CreateObject(mock.Type, "")
	assert.Nil(t, g.Connect(r, 0, s, 0))
	assert.Nil(t, g.Connect(r, 0, s, 0))

	robj, _ := g.Object(r)
	robj.Inlet(0).Dispatch(patcher.NewList("foo"))
	sink, _ := g.Object(s)
	// one send, two deliveries
	assert.Equal(t, 2, len(sink.(*mock.Sink).Received()))

	// disconnect removes a single edge
	assert.Nil(t, g.Disconnect(r, 0, s, 0))
	robj.Inlet(0).Dispatch(patcher.NewList("foo"))
	assert.Equal(t, 3, len(sink.(*mock.Sink).Received()))

	assert.Nil(t, g.Disconnect(r, 0, s, 0))
	err := g.Disconnect(r, 0, s, 0)
	assert.True(t, errors.Is(err, patcher.ErrInvalidPort))
}

func TestLookup(t *testing.T) {
	g := graph.New()
	h1, _ := g.CreateObject(route.Type, "foo")
	h2, _ := g.CreateObject(mock.Type, "a")

	byList, ok := g.GetHandleFromList(0)
	assert.True(t, ok)
	assert.Equal(t, h1, byList)
	byList, ok = g.GetHandleFromList(1)
	assert.True(t, ok)
	assert.Equal(t, h2, byList)
	_, ok = g.GetHandleFromList(2)
	assert.False(t, ok)

	byID, ok := g.GetHandleFromID(2)
	assert.True(t, ok)
	assert.Equal(t, h2, byID)
	_, ok = g.GetHandleFromID(42)
	assert.False(t, ok)

	// list positions shift after deletion, handles don't
	assert.Nil(t, g.DeleteObject(h1))
	byList, ok = g.GetHandleFromList(0)
	assert.True(t, ok)
	assert.Equal(t, h2, byList)
}

// A cycle recurses up to the guard ceiling and drops the message
// instead of overflowing the stack.
func TestCycleGuard(t *testing.T) {
	g := graph.New(graph.WithMaxDepth(32))
	s, _ := g.CreateObject(mock.Type, "loop")
	assert.Nil(t, g.Connect(s, 0, s, 0))

	assert.True(t, g.PassBang("loop"))
	sink, _ := g.Object(s)
	assert.Equal(t, 32, len(sink.(*mock.Sink).Received()))
}
