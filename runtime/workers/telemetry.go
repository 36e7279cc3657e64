package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"chat-direct/observability"
)

// TelemetryWorker periodically logs delivery counters together with the
// process footprint. Purely observational: losing a tick costs nothing.
type TelemetryWorker struct {
	log      *slog.Logger
	stats    *observability.DeliveryStats
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, stats *observability.DeliveryStats, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, stats: stats, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return nil
		case <-ticker.C:
			snapshot := w.stats.Snapshot()

			cpu, err := proc.CPUPercent()
			if err != nil {
				w.log.Debug("Failed to read cpu usage", "error", err)
			}
			ram, err := proc.MemoryPercent()
			if err != nil {
				w.log.Debug("Failed to read ram usage", "error", err)
			}

			w.log.Info("Delivery telemetry",
				"online", snapshot.Online,
				"sent", snapshot.Sent,
				"delivered", snapshot.Delivered,
				"read", snapshot.Read,
				"dropped_pushes", snapshot.DroppedPushes,
				"cpu_percent", cpu,
				"ram_percent", ram)
		}
	}
}
