package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"campaign-hub/contract"
	"campaign-hub/domain/event"

	"github.com/google/uuid"
)

// SubscriptionService attaches live connections to a campaign stream.
type SubscriptionService struct {
	log       *slog.Logger
	campaigns contract.CampaignReader
	registry  contract.IRegistry
	bootstrap *BootstrapService
	recorder  contract.ConnectionRecorder
	// joined holds subscribers counted as opened. The hub may unregister a
	// subscriber before its Leave runs, so the registry cannot tell.
	joined sync.Map
}

func NewSubscriptionService(log *slog.Logger, campaigns contract.CampaignReader, registry contract.IRegistry,
	bootstrap *BootstrapService, recorder contract.ConnectionRecorder) *SubscriptionService {
	return &SubscriptionService{
		log:       log,
		campaigns: campaigns,
		registry:  registry,
		bootstrap: bootstrap,
		recorder:  recorder,
	}
}

// Join registers the subscriber first, then sends the snapshot.
// Broadcasts published in between wait in the subscriber queue behind it.
// On any failure the subscriber is left unregistered and the caller closes it.
func (s *SubscriptionService) Join(ctx context.Context, campaignID uuid.UUID, sub contract.Bootstrappable) error {
	if _, err := s.campaigns.GetCampaign(campaignID); err != nil {
		return err
	}

	if err := s.registry.Register(campaignID, sub); err != nil {
		return err
	}
	s.joined.Store(sub.ID(), struct{}{})
	s.recorder.ConnectionOpened()

	snapshot, err := s.bootstrap.Snapshot(ctx, campaignID)
	if err != nil {
		s.Leave(campaignID, sub)
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	frame, err := event.Encode(event.NewBootstrap(snapshot))
	if err != nil {
		s.Leave(campaignID, sub)
		return fmt.Errorf("bootstrap encoding failed: %w", err)
	}

	if err := sub.Bootstrap(frame); err != nil {
		s.Leave(campaignID, sub)
		return fmt.Errorf("bootstrap delivery failed: %w", err)
	}

	s.log.Debug("Subscriber joined",
		"campaign_id", campaignID,
		"subscriber_id", sub.ID(),
		"characters", len(snapshot.Characters),
	)
	return nil
}

// Leave is safe to call more than once, and after the hub already
// unregistered the subscriber.
func (s *SubscriptionService) Leave(campaignID uuid.UUID, sub contract.Subscriber) {
	s.registry.Unregister(campaignID, sub)
	if _, joined := s.joined.LoadAndDelete(sub.ID()); !joined {
		return
	}
	s.recorder.ConnectionClosed()
	s.log.Debug("Subscriber left", "campaign_id", campaignID, "subscriber_id", sub.ID())
}
