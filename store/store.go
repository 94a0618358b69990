// Package store provides the int and float value objects. A value
// object keeps a single number: a bang on the hot inlet emits it, a
// number on the hot inlet sets and emits it, a number on the cold
// inlet sets it without emitting.
package store

import (
	"fmt"
	"strconv"

	"github.com/dudk/patcher"
	"github.com/dudk/patcher/object"
)

// Type tags of the value objects.
const (
	IntType   = "int"
	FloatType = "float"
)

func init() {
	object.Register(IntType, func() object.Object {
		return &Int{}
	})
	object.Register(FloatType, func() object.Object {
		return &Float{}
	})
}

// Int stores a single integer value.
type Int struct {
	object.Base
	value int
}

// Type implements object.Object.
func (s *Int) Type() string {
	return IntType
}

// Construct declares the hot and cold inlets and the value outlet.
func (s *Int) Construct() {
	hot := s.AddInlet()
	hot.OnBang(func() {
		s.Outlet(0).SendInt(s.value)
	})
	hot.OnInt(func(value int) {
		s.value = value
		s.Outlet(0).SendInt(s.value)
	})
	cold := s.AddInlet()
	cold.OnInt(func(value int) {
		s.value = value
	})
	s.AddOutlet()
}

// ParamClear resets the stored value.
func (s *Int) ParamClear() {
	s.value = 0
}

// ParamParse reads the initial value. Empty arguments keep zero, a
// non-numeric argument is a parse error.
func (s *Int) ParamParse(args string) error {
	tokens := object.Tokens(args)
	if len(tokens) == 0 {
		return nil
	}
	value, err := strconv.Atoi(tokens[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", patcher.ErrParameterParse, tokens[0])
	}
	s.value = value
	return nil
}

// Float stores a single float value.
type Float struct {
	object.Base
	value float32
}

// Type implements object.Object.
func (s *Float) Type() string {
	return FloatType
}

// Construct declares the hot and cold inlets and the value outlet.
func (s *Float) Construct() {
	hot := s.AddInlet()
	hot.OnBang(func() {
		s.Outlet(0).SendFloat(s.value)
	})
	hot.OnFloat(func(value float32) {
		s.value = value
		s.Outlet(0).SendFloat(s.value)
	})
	cold := s.AddInlet()
	cold.OnFloat(func(value float32) {
		s.value = value
	})
	s.AddOutlet()
}

// ParamClear resets the stored value.
func (s *Float) ParamClear() {
	s.value = 0
}

// ParamParse reads the initial value. Empty arguments keep zero, a
// non-numeric argument is a parse error.
func (s *Float) ParamParse(args string) error {
	tokens := object.Tokens(args)
	if len(tokens) == 0 {
		return nil
	}
	value, err := strconv.ParseFloat(tokens[0], 32)
	if err != nil {
		return fmt.Errorf("%w: %q is not a float", patcher.ErrParameterParse, tokens[0])
	}
	s.value = float32(value)
	return nil
}
