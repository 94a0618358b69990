package object

import (
	"github.com/dudk/patcher"
	"github.com/dudk/patcher/log"
	"github.com/dudk/patcher/metric"
)

type (
	// BangFunc handles a bang message.
	BangFunc func()
	// IntFunc handles an integer message.
	IntFunc func(value int)
	// FloatFunc handles a float message.
	FloatFunc func(value float32)
	// ListFunc handles a list message payload.
	ListFunc func(payload string)

	// Inlet receives one message at a time and dispatches it to the
	// handler registered for the message kind.
	Inlet struct {
		onBang  BangFunc
		onInt   IntFunc
		onFloat FloatFunc
		onList  ListFunc
	}

	// Outlet fans messages out to connected inlets. Targets are
	// invoked synchronously in connection-registration order.
	Outlet struct {
		guard   *Guard
		targets []target
	}

	target struct {
		to    Object
		inlet int
	}
)

// OnBang registers the bang handler.
func (in *Inlet) OnBang(fn BangFunc) {
	in.onBang = fn
}

// OnInt registers the integer handler.
func (in *Inlet) OnInt(fn IntFunc) {
	in.onInt = fn
}

// OnFloat registers the float handler.
func (in *Inlet) OnFloat(fn FloatFunc) {
	in.onFloat = fn
}

// OnList registers the list handler.
func (in *Inlet) OnList(fn ListFunc) {
	in.onList = fn
}

// Dispatch invokes the handler registered for the message kind.
// Messages of unhandled kinds are dropped silently.
func (in *Inlet) Dispatch(m patcher.Message) {
	switch m.Kind {
	case patcher.Bang:
		if in.onBang != nil {
			in.onBang()
		}
	case patcher.Int:
		if in.onInt != nil {
			in.onInt(m.IntValue)
		}
	case patcher.Float:
		if in.onFloat != nil {
			in.onFloat(m.FloatValue)
		}
	case patcher.List:
		if in.onList != nil {
			in.onList(m.ListValue)
		}
	}
}

// Connect adds a target inlet to the fan-out. Duplicate targets are
// legal, each one delivers.
func (o *Outlet) Connect(to Object, inlet int) {
	o.targets = append(o.targets, target{to: to, inlet: inlet})
}

// Disconnect removes the first matching target. Returns false if no
// such target is connected.
func (o *Outlet) Disconnect(to Object, inlet int) bool {
	for i, t := range o.targets {
		if t.to == to && t.inlet == inlet {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			return true
		}
	}
	return false
}

// Targets returns number of connected inlets.
func (o *Outlet) Targets() int {
	return len(o.targets)
}

// Send delivers a message to every connected inlet before returning.
func (o *Outlet) Send(m patcher.Message) {
	for _, t := range o.targets {
		deliver(o.guard, t.to, t.inlet, m)
	}
}

// SendBang sends a bang on this outlet.
func (o *Outlet) SendBang() {
	o.Send(patcher.NewBang())
}

// SendInt sends an integer on this outlet.
func (o *Outlet) SendInt(value int) {
	o.Send(patcher.NewInt(value))
}

// SendFloat sends a float on this outlet.
func (o *Outlet) SendFloat(value float32) {
	o.Send(patcher.NewFloat(value))
}

// SendList sends a list payload on this outlet.
func (o *Outlet) SendList(payload string) {
	o.Send(patcher.NewList(payload))
}

// Guard bounds the depth of synchronous recursive dispatch. A cycle
// in the connection graph would otherwise recurse without bound, so
// once the ceiling is reached further sends are dropped and counted
// instead of overflowing the stack. Zero limit disables the guard.
type Guard struct {
	Limit int
	Log   log.Logger
	depth int
}

// Deliver dispatches a message to provided inlet of an object under
// this guard. Used by graphs for external injection.
func (g *Guard) Deliver(to Object, inlet int, m patcher.Message) {
	deliver(g, to, inlet, m)
}

func deliver(g *Guard, to Object, inlet int, m patcher.Message) {
	if g != nil {
		if g.Limit > 0 && g.depth >= g.Limit {
			metric.Drop(to.Type())
			if g.Log != nil {
				g.Log.Error("dispatch depth limit reached, message dropped: ", m)
			}
			return
		}
		g.depth++
		defer func() { g.depth-- }()
	}
	metric.Message(to.Type())
	to.Inlet(inlet).Dispatch(m)
}
