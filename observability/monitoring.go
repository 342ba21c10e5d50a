package observability

import (
	"log/slog"
	"maps"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"campaign-hub/domain/event"

	"github.com/shirou/gopsutil/process"
)

// MonitoringStats is served as is on the debug endpoint.
type MonitoringStats struct {
	// --- DELIVERY ---
	Published uint64                `json:"published"`
	Delivered uint64                `json:"delivered"`
	Failed    uint64                `json:"failed"`
	ByKind    map[event.Kind]uint64 `json:"by_kind"`

	// --- CONNECTIONS ---
	ActiveConnections int64  `json:"active_connections"`
	ConnectionsOpened uint64 `json:"connections_opened"`
	Subscribers       int    `json:"subscribers"`

	// --- PROCESS ---
	ProcessCPU   float64   `json:"process_cpu_percent"`
	ProcessRSSMb uint64    `json:"process_rss_mb"`
	AllocMemMb   uint64    `json:"alloc_mem_mb"`
	NumGC        uint32    `json:"num_gc"`
	NumGoroutine int       `json:"num_goroutine"`
	SampledAt    time.Time `json:"sampled_at"`
}

// MonitoringManager counts deliveries and connections and samples the process.
// Counters are lock free; the sampled part is refreshed by Sample.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats
	byKind      map[event.Kind]uint64
	proc        *process.Process
	subscribers func() int

	published         atomic.Uint64
	delivered         atomic.Uint64
	failed            atomic.Uint64
	activeConnections atomic.Int64
	connectionsOpened atomic.Uint64
}

// NewMonitoringManager takes the registry total as a callback so the
// manager does not depend on the runtime package.
func NewMonitoringManager(log *slog.Logger, subscribers func() int) *MonitoringManager {
	mm := &MonitoringManager{
		log:         log,
		byKind:      make(map[event.Kind]uint64),
		subscribers: subscribers,
	}
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process sampling disabled", "error", err)
	} else {
		mm.proc = proc
	}
	return mm
}

func (mm *MonitoringManager) RecordPublish(kind event.Kind, delivered, failed int) {
	mm.published.Add(1)
	mm.delivered.Add(uint64(delivered))
	mm.failed.Add(uint64(failed))

	mm.mu.Lock()
	mm.byKind[kind]++
	mm.mu.Unlock()
}

func (mm *MonitoringManager) ConnectionOpened() {
	mm.activeConnections.Add(1)
	mm.connectionsOpened.Add(1)
}

func (mm *MonitoringManager) ConnectionClosed() {
	mm.activeConnections.Add(-1)
}

// Sample refreshes the process metrics.
func (mm *MonitoringManager) Sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	var cpu float64
	var rss uint64
	if mm.proc != nil {
		if v, err := mm.proc.CPUPercent(); err == nil {
			cpu = v
		} else {
			mm.log.Debug("Error while finding process cpu usage", "error", err)
		}
		if info, err := mm.proc.MemoryInfo(); err == nil {
			rss = info.RSS / 1024 / 1024
		} else {
			mm.log.Debug("Error while finding process memory usage", "error", err)
		}
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.ProcessCPU = cpu
	mm.latestStats.ProcessRSSMb = rss
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC
	mm.latestStats.NumGoroutine = runtime.NumGoroutine()
	mm.latestStats.SampledAt = time.Now().UTC()

	mm.log.Debug("Stats sampled",
		"published", mm.published.Load(),
		"failed", mm.failed.Load(),
		"connections", mm.activeConnections.Load(),
		"rss_mb", rss,
	)
}

// GetLatest merges the live counters into the last sample.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	stats := mm.latestStats
	stats.ByKind = maps.Clone(mm.byKind)
	mm.mu.RUnlock()

	stats.Published = mm.published.Load()
	stats.Delivered = mm.delivered.Load()
	stats.Failed = mm.failed.Load()
	stats.ActiveConnections = mm.activeConnections.Load()
	stats.ConnectionsOpened = mm.connectionsOpened.Load()
	if mm.subscribers != nil {
		stats.Subscribers = mm.subscribers()
	}
	return stats
}
