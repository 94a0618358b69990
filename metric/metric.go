package metric

import (
	"expvar"
	"fmt"
	"sync"
)

const objectsLabel = "patcher.objects"

const (
	// MessageCounter measures number of messages dispatched to objects.
	MessageCounter = "Messages"
	// ObjectCounter counts number of created objects.
	ObjectCounter = "Objects"
	// DropCounter counts messages discarded by the dispatch depth guard.
	DropCounter = "Drops"
)

var (
	objects = metrics{
		m: make(map[string]metric),
	}

	counters = []string{
		MessageCounter,
		ObjectCounter,
		DropCounter,
	}
)

// Object registers a created object of provided type.
func Object(objectType string) {
	objects.get(objectType).objects.Add(1)
}

// Message registers a message dispatched to an object of provided type.
func Message(objectType string) {
	objects.get(objectType).messages.Add(1)
}

// Drop registers a message discarded by the depth guard.
func Drop(objectType string) {
	objects.get(objectType).drops.Add(1)
}

// Get metrics values for provided object type.
func Get(objectType string) map[string]string {
	return getCounters(objectType)
}

// GetAll returns counters for all measured object types.
func GetAll() map[string]map[string]string {
	m := make(map[string]map[string]string)
	objects.Lock()
	defer objects.Unlock()
	for objectType := range objects.m {
		m[objectType] = getCounters(objectType)
	}
	return m
}

func getCounters(objectType string) map[string]string {
	m := make(map[string]string)
	for _, counter := range counters {
		v := expvar.Get(key(objectType, counter))
		if v != nil {
			m[counter] = v.String()
		}
	}
	return m
}

type metrics struct {
	sync.Mutex
	m map[string]metric
}

func (m *metrics) get(objectType string) metric {
	m.Lock()
	defer m.Unlock()
	if metric, ok := m.m[objectType]; ok {
		// return existing metric if available
		return metric
	}
	// create new metric
	metric := newMetric(objectType)
	m.m[objectType] = metric
	return metric
}

type metric struct {
	key      string
	objects  *expvar.Int
	messages *expvar.Int
	drops    *expvar.Int
}

func newMetric(objectType string) metric {
	return metric{
		key:      objectType,
		objects:  expvar.NewInt(key(objectType, ObjectCounter)),
		messages: expvar.NewInt(key(objectType, MessageCounter)),
		drops:    expvar.NewInt(key(objectType, DropCounter)),
	}
}

func key(objectType, counter string) string {
	return fmt.Sprintf("%s.%s.%s", objectsLabel, objectType, counter)
}
