package events

import (
	"context"

	"github.com/spec-kit/department-dto/internal/observability"
)

// SubscribeMetrics counts every department event in metrics.
func SubscribeMetrics(d Dispatcher, metrics *observability.Metrics) {
	d.Subscribe(EventDepartmentJSONCreated, func(_ context.Context, e Event) error {
		metrics.RecordEvent(string(e.Type))
		return nil
	})
}
