package workers

import (
	"context"
	"log/slog"
	"time"
)

type Sampler interface {
	Sample()
}

// MonitoringWorker refreshes the process metrics every metricInterval.
type MonitoringWorker struct {
	log            *slog.Logger
	sampler        Sampler
	metricInterval time.Duration
}

func NewMonitoringWorker(log *slog.Logger, sampler Sampler, metricInterval time.Duration) *MonitoringWorker {
	return &MonitoringWorker{log: log, sampler: sampler, metricInterval: metricInterval}
}

func (w *MonitoringWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	w.sampler.Sample()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping monitoring")
			return nil
		case <-ticker.C:
			w.sampler.Sample()
		}
	}
}
