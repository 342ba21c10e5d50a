package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"campaign-hub/contract"
	"campaign-hub/domain/event"
	"campaign-hub/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Hub broadcasts campaign events to every live subscriber of that campaign.
//
// Delivery is best-effort: there is no retry, no persistence and no
// acknowledgement. A subscriber that cannot take the event within sendTimeout
// is evicted and closed; the others are unaffected.
//
// The timeout of a send starts when the send starts, not when Publish is
// called, so sends waiting for a free slot behind stalled subscribers keep
// their full budget. Publish blocks until every send has completed or timed
// out, so events published one after another by the same caller are queued in
// that order.
type Hub struct {
	log                *slog.Logger
	registry           contract.IRegistry
	recorder           contract.DeliveryRecorder
	sendTimeout        time.Duration
	maxConcurrentSends int
}

func NewHub(log *slog.Logger, registry contract.IRegistry, recorder contract.DeliveryRecorder,
	sendTimeout time.Duration, maxConcurrentSends int) *Hub {
	return &Hub{
		log:                log,
		registry:           registry,
		recorder:           recorder,
		sendTimeout:        sendTimeout,
		maxConcurrentSends: maxConcurrentSends,
	}
}

func (h *Hub) Publish(campaignID uuid.UUID, e event.Event) {
	subs := h.registry.SubscribersOf(campaignID)
	if len(subs) == 0 {
		h.log.Debug("No subscriber, event dropped", "campaign_id", campaignID, "type", e.Kind())
		return
	}

	// Serialized once, outside of the registry lock
	frame, err := event.Encode(e)
	if err != nil {
		h.log.Error("Unable to encode event", "campaign_id", campaignID, "error", err)
		return
	}

	// Plain group: one failed send must not cancel the others
	var g errgroup.Group
	if h.maxConcurrentSends > 0 {
		g.SetLimit(h.maxConcurrentSends)
	}
	var delivered, failed atomic.Int64
	for _, sub := range subs {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), h.sendTimeout)
			defer cancel()
			if err := sub.Consume(ctx, frame); err != nil {
				failed.Add(1)
				h.evict(campaignID, sub, err)
				return nil
			}
			delivered.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	h.recorder.RecordPublish(frame.Kind, int(delivered.Load()), int(failed.Load()))
	h.log.Debug("Event published",
		"campaign_id", campaignID,
		"type", frame.Kind,
		"delivered", delivered.Load(),
		"failed", failed.Load(),
	)
}

func (h *Hub) evict(campaignID uuid.UUID, sub contract.Subscriber, cause error) {
	err := fmt.Errorf("%w: %w", errors.ErrTransientSendFailure, cause)
	h.log.Warn("Subscriber evicted",
		"campaign_id", campaignID,
		"subscriber_id", sub.ID(),
		"error", err,
	)
	h.registry.Unregister(campaignID, sub)
	sub.Close(errors.CloseDeliveryFailed, "delivery failed")
}

// CloseCampaign tears down every live subscriber of the campaign, used when
// the campaign itself goes away. Subscribers are unregistered before their
// close frame is sent.
func (h *Hub) CloseCampaign(campaignID uuid.UUID, code int, reason string) int {
	subs := h.registry.SubscribersOf(campaignID)
	if len(subs) == 0 {
		return 0
	}

	var g errgroup.Group
	if h.maxConcurrentSends > 0 {
		g.SetLimit(h.maxConcurrentSends)
	}
	for _, sub := range subs {
		h.registry.Unregister(campaignID, sub)
		g.Go(func() error {
			sub.Close(code, reason)
			return nil
		})
	}
	_ = g.Wait()

	h.log.Info("Campaign subscribers closed", "campaign_id", campaignID, "count", len(subs), "code", code)
	return len(subs)
}
