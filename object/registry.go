package object

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dudk/patcher"
)

// registry maps type tags to object factories. Object packages
// register in their init, so registration is complete before any
// graph is created.
var registry = struct {
	sync.RWMutex
	m map[string]func() Object
}{m: make(map[string]func() Object)}

// Register adds an object factory under provided type tag. Tags must
// be unique, a duplicate registration panics as it is a programming
// error in the object package.
func Register(objectType string, factory func() Object) {
	if objectType == "" || factory == nil {
		panic("object: register with empty type or nil factory")
	}
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.m[objectType]; ok {
		panic(fmt.Sprintf("object: type %q registered twice", objectType))
	}
	registry.m[objectType] = factory
}

// IsValid returns true if provided type tag is registered.
func IsValid(objectType string) bool {
	registry.RLock()
	defer registry.RUnlock()
	_, ok := registry.m[objectType]
	return ok
}

// New creates a new object of provided type.
func New(objectType string) (Object, error) {
	registry.RLock()
	factory, ok := registry.m[objectType]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", patcher.ErrUnknownObjectType, objectType)
	}
	return factory(), nil
}

// Types returns all registered type tags in lexical order.
func Types() []string {
	registry.RLock()
	defer registry.RUnlock()
	types := make([]string, 0, len(registry.m))
	for t := range registry.m {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
