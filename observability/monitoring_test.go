package observability

import (
	"log/slog"
	"sync"
	"testing"

	"campaign-hub/domain/event"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Counts_Deliveries(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(logs.GetLoggerFromLevel(slog.LevelDebug), func() int { return 7 })

	// Given concurrent publishes and connections
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mm.RecordPublish(event.KindCharacterUpdated, 3, 1)
			mm.ConnectionOpened()
		}()
	}
	wg.Wait()
	mm.RecordPublish(event.KindRosterUpdated, 0, 0)
	mm.ConnectionClosed()

	// When
	stats := mm.GetLatest()

	// Then
	req.Equal(uint64(11), stats.Published)
	req.Equal(uint64(30), stats.Delivered)
	req.Equal(uint64(10), stats.Failed)
	req.Equal(uint64(10), stats.ByKind[event.KindCharacterUpdated])
	req.Equal(uint64(1), stats.ByKind[event.KindRosterUpdated])
	req.Equal(int64(9), stats.ActiveConnections)
	req.Equal(uint64(10), stats.ConnectionsOpened)
	req.Equal(7, stats.Subscribers)
}

func TestMonitoringManager_Sample(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(logs.GetLoggerFromLevel(slog.LevelDebug), nil)

	req.True(mm.GetLatest().SampledAt.IsZero())
	mm.Sample()

	stats := mm.GetLatest()
	req.False(stats.SampledAt.IsZero())
	req.Positive(stats.NumGoroutine)

	// The returned map is a copy
	stats.ByKind[event.KindBootstrap] = 42
	req.Zero(mm.GetLatest().ByKind[event.KindBootstrap])
}
