package graph

import (
	"github.com/dudk/patcher"
)

// PassBang injects a bang into the object labeled to. Returns false
// when nothing is listening under that label, which is a normal
// outcome, not an error.
func (g *Graph) PassBang(to string) bool {
	return g.pass(patcher.NewBang(), to)
}

// PassInt injects an integer into the object labeled to.
func (g *Graph) PassInt(value int, to string) bool {
	return g.pass(patcher.NewInt(value), to)
}

// PassFloat injects a float into the object labeled to.
func (g *Graph) PassFloat(value float32, to string) bool {
	return g.pass(patcher.NewFloat(value), to)
}

// PassList injects a list payload into the object labeled to.
func (g *Graph) PassList(payload string, to string) bool {
	return g.pass(patcher.NewList(payload), to)
}

// pass delivers the message to the first inlet of the first object
// whose label matches exactly, as if received over a connection.
func (g *Graph) pass(m patcher.Message, to string) bool {
	if to == "" {
		return false
	}
	for _, h := range g.order {
		obj, ok := g.resolve(h)
		if !ok || obj.Label() != to || obj.NumInlets() == 0 {
			continue
		}
		g.guard.Deliver(obj, 0, m)
		return true
	}
	return false
}
