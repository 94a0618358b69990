// Package mock provides a recording object type for tests.
package mock

import (
	"github.com/dudk/patcher"
	"github.com/dudk/patcher/object"
)

// Type is the registry tag of the mock object.
const Type = "mock"

func init() {
	object.Register(Type, func() object.Object {
		return &Sink{}
	})
}

// Sink records every message received on its single inlet and passes
// it through to its single outlet.
type Sink struct {
	object.Base
	received []patcher.Message
}

// Type implements object.Object.
func (s *Sink) Type() string {
	return Type
}

// Construct declares one inlet with all handlers and a pass-through
// outlet.
func (s *Sink) Construct() {
	in := s.AddInlet()
	in.OnBang(func() {
		s.record(patcher.NewBang())
	})
	in.OnInt(func(value int) {
		s.record(patcher.NewInt(value))
	})
	in.OnFloat(func(value float32) {
		s.record(patcher.NewFloat(value))
	})
	in.OnList(func(payload string) {
		s.record(patcher.NewList(payload))
	})
	s.AddOutlet()
}

// ParamClear implements object.Object.
func (s *Sink) ParamClear() {}

// ParamParse accepts any arguments, they only provide the label.
func (s *Sink) ParamParse(args string) error {
	return nil
}

func (s *Sink) record(m patcher.Message) {
	s.received = append(s.received, m)
	s.Outlet(0).Send(m)
}

// Received returns recorded messages in arrival order.
func (s *Sink) Received() []patcher.Message {
	return s.received
}

// Reset drops recorded messages.
func (s *Sink) Reset() {
	s.received = nil
}
