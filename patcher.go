// Package patcher implements a runtime dataflow graph for audio middleware.
// Hosts instantiate typed objects, wire their outlets to inlets and inject
// messages that propagate synchronously through the wiring.
package patcher

import (
	"fmt"

	"github.com/rs/xid"
)

// Kind is a runtime kind of a message.
type Kind int

const (
	// Bang is a trigger message without a payload.
	Bang Kind = iota
	// Int carries a single integer value.
	Int
	// Float carries a single float value.
	Float
	// List carries a string payload of space-separated tokens.
	List
)

// Message is a DTO passed between objects. Only the field matching
// the kind is meaningful.
type Message struct {
	Kind       Kind
	IntValue   int
	FloatValue float32
	ListValue  string
}

// NewBang returns a new bang message.
func NewBang() Message {
	return Message{Kind: Bang}
}

// NewInt returns a new integer message.
func NewInt(value int) Message {
	return Message{Kind: Int, IntValue: value}
}

// NewFloat returns a new float message.
func NewFloat(value float32) Message {
	return Message{Kind: Float, FloatValue: value}
}

// NewList returns a new list message with provided payload.
func NewList(payload string) Message {
	return Message{Kind: List, ListValue: payload}
}

// String makes messages readable in logs.
func (m Message) String() string {
	switch m.Kind {
	case Bang:
		return "bang"
	case Int:
		return fmt.Sprintf("int %d", m.IntValue)
	case Float:
		return fmt.Sprintf("float %v", m.FloatValue)
	case List:
		return fmt.Sprintf("list %q", m.ListValue)
	}
	return "unknown"
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Bang:
		return "bang"
	case Int:
		return "int"
	case Float:
		return "float"
	case List:
		return "list"
	}
	return "unknown"
}

// UID is a unique component identifier.
type UID struct {
	value string
}

// NewUID returns a new unique id.
func NewUID() UID {
	return UID{value: xid.New().String()}
}

// ID returns the id value.
func (u UID) ID() string {
	return u.value
}
