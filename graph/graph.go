// Package graph implements the patch graph: it owns every object and
// connection of a patch, provides topology mutation, lookup by stable
// handles, JSON persistence and external message injection.
//
// A graph expects a single owner context. Topology mutation, dispatch
// and injection share no internal locking, callers from other
// execution contexts must serialize all entry points as one critical
// section.
package graph

import (
	"fmt"

	"github.com/dudk/patcher"
	"github.com/dudk/patcher/log"
	"github.com/dudk/patcher/metric"
	"github.com/dudk/patcher/object"
)

// DefaultMaxDepth bounds synchronous dispatch recursion unless a
// graph is created with an explicit limit.
const DefaultMaxDepth = 1024

type (
	// Graph is a patch graph. Use New to create one.
	Graph struct {
		patcher.UID
		logger log.Logger
		guard  *object.Guard
		slots  []slot
		order  []Handle // live objects in creation/persisted order
		edges  []edge
		nextID uint
	}

	// Handle is a stable reference to an object in a graph. It stays
	// valid when other objects are deleted and cannot alias another
	// object once its own is gone, the slot generation changes.
	Handle struct {
		slot       int
		generation uint32
	}

	slot struct {
		object     object.Object
		generation uint32
		live       bool
	}

	edge struct {
		from   Handle
		outlet int
		to     Handle
		inlet  int
	}

	// Option provides a way to set up a graph.
	Option func(g *Graph)
)

// New creates a new empty patch graph.
func New(options ...Option) *Graph {
	g := &Graph{
		UID:    patcher.NewUID(),
		logger: log.GetLogger(),
		guard:  &object.Guard{Limit: DefaultMaxDepth},
		nextID: 1,
	}
	for _, option := range options {
		option(g)
	}
	g.guard.Log = g.logger
	return g
}

// WithMaxDepth sets the dispatch recursion ceiling. Zero disables the
// guard and restores unbounded recursive dispatch.
func WithMaxDepth(limit int) Option {
	return func(g *Graph) {
		g.guard.Limit = limit
	}
}

// WithLogger sets the graph logger.
func WithLogger(l log.Logger) Option {
	return func(g *Graph) {
		g.logger = l
	}
}

// IsValidObject returns true if provided type tag is registered. It
// is a pure registry query and needs no graph instance.
func IsValidObject(objectType string) bool {
	return object.IsValid(objectType)
}

// CreateObject creates a new object of provided type, applies its
// arguments through the normal construct/parse path and returns a
// handle to it. Returns patcher.ErrUnknownObjectType for an
// unregistered type and patcher.ErrParameterParse for invalid
// arguments, the graph is unchanged on failure.
func (g *Graph) CreateObject(objectType, args string) (Handle, error) {
	obj, err := object.New(objectType)
	if err != nil {
		return Handle{}, err
	}
	obj.Bind(g.guard)
	obj.Construct()
	if err := object.Parse(obj, args); err != nil {
		return Handle{}, err
	}
	obj.SetID(g.nextID)
	g.nextID++
	h := g.insert(obj)
	metric.Object(objectType)
	g.logger.Debug("created object ", objectType, " id ", obj.ID())
	return h, nil
}

// DeleteObject removes the object and every connection touching it.
// The handle must reference a currently live object, a stale handle
// is reported as patcher.ErrInvalidPort.
func (g *Graph) DeleteObject(h Handle) error {
	obj, ok := g.resolve(h)
	if !ok {
		return fmt.Errorf("%w: dead handle", patcher.ErrInvalidPort)
	}
	// drop edges pointing at the object from surviving outlets
	kept := g.edges[:0]
	for _, e := range g.edges {
		switch {
		case e.from == h:
			// outlets die with the object
		case e.to == h:
			if from, ok := g.resolve(e.from); ok {
				from.Outlet(e.outlet).Disconnect(obj, e.inlet)
			}
		default:
			kept = append(kept, e)
		}
	}
	g.edges = kept
	obj.Destruct()
	g.free(h)
	g.logger.Debug("deleted object ", obj.Type(), " id ", obj.ID())
	return nil
}

// Clear deletes every object and connection.
func (g *Graph) Clear() {
	for _, h := range g.order {
		if obj, ok := g.resolve(h); ok {
			obj.Destruct()
		}
	}
	g.slots = nil
	g.order = nil
	g.edges = nil
	g.nextID = 1
}

// Connect wires an outlet to an inlet. Both handles must be live and
// both indices in range, otherwise patcher.ErrInvalidPort is
// returned. Connecting the same endpoints twice creates two
// connections and doubles delivery.
func (g *Graph) Connect(from Handle, outlet int, to Handle, inlet int) error {
	fromObj, toObj, err := g.resolvePorts(from, outlet, to, inlet)
	if err != nil {
		return err
	}
	fromObj.Outlet(outlet).Connect(toObj, inlet)
	g.edges = append(g.edges, edge{from: from, outlet: outlet, to: to, inlet: inlet})
	return nil
}

// Disconnect removes one connection between provided endpoints.
func (g *Graph) Disconnect(from Handle, outlet int, to Handle, inlet int) error {
	fromObj, toObj, err := g.resolvePorts(from, outlet, to, inlet)
	if err != nil {
		return err
	}
	if !fromObj.Outlet(outlet).Disconnect(toObj, inlet) {
		return fmt.Errorf("%w: no such connection", patcher.ErrInvalidPort)
	}
	for i, e := range g.edges {
		if e.from == from && e.outlet == outlet && e.to == to && e.inlet == inlet {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}
	return nil
}

// Objects returns the number of live objects.
func (g *Graph) Objects() int {
	return len(g.order)
}

// GetHandleFromList returns the handle of the object at provided
// position in creation/persisted order.
func (g *Graph) GetHandleFromList(index int) (Handle, bool) {
	if index < 0 || index >= len(g.order) {
		return Handle{}, false
	}
	return g.order[index], true
}

// GetHandleFromID returns the handle of the object with provided
// persisted id.
func (g *Graph) GetHandleFromID(id uint) (Handle, bool) {
	for _, h := range g.order {
		if obj, ok := g.resolve(h); ok && obj.ID() == id {
			return h, true
		}
	}
	return Handle{}, false
}

// Object resolves a handle to its object. Returns false for a stale
// handle.
func (g *Graph) Object(h Handle) (object.Object, bool) {
	return g.resolve(h)
}

func (g *Graph) resolve(h Handle) (object.Object, bool) {
	if h.slot < 0 || h.slot >= len(g.slots) {
		return nil, false
	}
	s := g.slots[h.slot]
	if !s.live || s.generation != h.generation {
		return nil, false
	}
	return s.object, true
}

func (g *Graph) resolvePorts(from Handle, outlet int, to Handle, inlet int) (object.Object, object.Object, error) {
	fromObj, ok := g.resolve(from)
	if !ok {
		return nil, nil, fmt.Errorf("%w: dead source handle", patcher.ErrInvalidPort)
	}
	toObj, ok := g.resolve(to)
	if !ok {
		return nil, nil, fmt.Errorf("%w: dead target handle", patcher.ErrInvalidPort)
	}
	if outlet < 0 || outlet >= fromObj.NumOutlets() {
		return nil, nil, fmt.Errorf("%w: outlet %d out of range", patcher.ErrInvalidPort, outlet)
	}
	if inlet < 0 || inlet >= toObj.NumInlets() {
		return nil, nil, fmt.Errorf("%w: inlet %d out of range", patcher.ErrInvalidPort, inlet)
	}
	return fromObj, toObj, nil
}

// insert stores the object in the first free slot or a new one.
func (g *Graph) insert(obj object.Object) Handle {
	for i := range g.slots {
		if !g.slots[i].live {
			g.slots[i].object = obj
			g.slots[i].live = true
			h := Handle{slot: i, generation: g.slots[i].generation}
			g.order = append(g.order, h)
			return h
		}
	}
	g.slots = append(g.slots, slot{object: obj, live: true})
	h := Handle{slot: len(g.slots) - 1}
	g.order = append(g.order, h)
	return h
}

// free releases the slot and bumps its generation so stale handles
// cannot alias a reused slot.
func (g *Graph) free(h Handle) {
	g.slots[h.slot].object = nil
	g.slots[h.slot].live = false
	g.slots[h.slot].generation++
	for i, oh := range g.order {
		if oh == h {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}
