package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dudk/patcher/metric"
)

func TestCounters(t *testing.T) {
	metric.Object("test.route")
	metric.Object("test.route")
	for i := 0; i < 5; i++ {
		metric.Message("test.route")
	}
	metric.Drop("test.route")

	values := metric.Get("test.route")
	assert.Equal(t, "2", values[metric.ObjectCounter])
	assert.Equal(t, "5", values[metric.MessageCounter])
	assert.Equal(t, "1", values[metric.DropCounter])

	all := metric.GetAll()
	assert.Equal(t, values, all["test.route"])
}

func TestGetUnknown(t *testing.T) {
	values := metric.Get("test.unknown")
	assert.Equal(t, 0, len(values))
}
