package patcher

import "errors"

// ErrUnknownObjectType is returned when a type tag is not present in
// the object registry.
var ErrUnknownObjectType = errors.New("unknown object type")

// ErrInvalidPort is returned when a connection references a dead
// handle or an out-of-range port index.
var ErrInvalidPort = errors.New("invalid port")

// ErrParameterParse is returned when object arguments don't satisfy
// the object's parameter grammar. A failed re-parse leaves the object
// at its cleared baseline, not at the previous parameter value.
var ErrParameterParse = errors.New("parameter parse failed")

// ErrMalformedGraph is returned when a persisted graph document is
// structurally invalid or references an unknown type or object id.
// The graph is left empty after such failure.
var ErrMalformedGraph = errors.New("malformed patch document")
