package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"campaign-hub/domain"
	"campaign-hub/domain/event"
	"campaign-hub/errors"
	"campaign-hub/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionService_Join(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()
	campaign := domain.Campaign{ID: uuid.New(), Name: "Curse of Strahd"}
	snapshot := domain.Snapshot{Campaign: campaign, Roster: domain.EmptyRoster(campaign.ID)}

	t.Run("should register before sending the bootstrap frame", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockCampaignReader(ctrl)
		registry := mocks.NewMockIRegistry(ctrl)
		recorder := mocks.NewMockConnectionRecorder(ctrl)
		sub := mocks.NewMockBootstrappable(ctrl)
		sub.EXPECT().ID().Return(domain.SubscriberID("sub-1")).AnyTimes()
		svc := NewSubscriptionService(log, store, registry, NewBootstrapService(log, store), recorder)

		var sent event.Frame
		gomock.InOrder(
			store.EXPECT().GetCampaign(campaign.ID).Return(campaign, nil),
			registry.EXPECT().Register(campaign.ID, sub).Return(nil),
			recorder.EXPECT().ConnectionOpened(),
			store.EXPECT().Snapshot(campaign.ID).Return(snapshot, nil),
			sub.EXPECT().Bootstrap(gomock.Any()).DoAndReturn(func(frame event.Frame) error {
				sent = frame
				return nil
			}),
		)

		err := svc.Join(ctx, campaign.ID, sub)

		req.NoError(err)
		req.Equal(event.KindBootstrap, sent.Kind)
		kind, err := event.PeekKind(sent.Payload)
		req.NoError(err)
		req.Equal(event.KindBootstrap, kind)
	})

	t.Run("should never register for a missing campaign", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockCampaignReader(ctrl)
		registry := mocks.NewMockIRegistry(ctrl)
		recorder := mocks.NewMockConnectionRecorder(ctrl)
		sub := mocks.NewMockBootstrappable(ctrl)
		svc := NewSubscriptionService(log, store, registry, NewBootstrapService(log, store), recorder)

		store.EXPECT().GetCampaign(campaign.ID).Return(domain.Campaign{}, fmt.Errorf("campaign: %w", errors.ErrNotFound))
		registry.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)
		sub.EXPECT().Bootstrap(gomock.Any()).Times(0)

		err := svc.Join(ctx, campaign.ID, sub)

		req.ErrorIs(err, errors.ErrNotFound)
	})

	t.Run("should unregister when the snapshot read fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockCampaignReader(ctrl)
		registry := mocks.NewMockIRegistry(ctrl)
		recorder := mocks.NewMockConnectionRecorder(ctrl)
		sub := mocks.NewMockBootstrappable(ctrl)
		sub.EXPECT().ID().Return(domain.SubscriberID("sub-2")).AnyTimes()
		svc := NewSubscriptionService(log, store, registry, NewBootstrapService(log, store), recorder)

		// Given the campaign is deleted between the existence check and the snapshot
		store.EXPECT().GetCampaign(campaign.ID).Return(campaign, nil)
		registry.EXPECT().Register(campaign.ID, sub).Return(nil)
		recorder.EXPECT().ConnectionOpened()
		store.EXPECT().Snapshot(campaign.ID).Return(domain.Snapshot{}, errors.ErrNotFound)
		registry.EXPECT().Unregister(campaign.ID, sub).Return(true)
		recorder.EXPECT().ConnectionClosed()
		sub.EXPECT().Bootstrap(gomock.Any()).Times(0)

		err := svc.Join(ctx, campaign.ID, sub)

		req.ErrorIs(err, errors.ErrNotFound)
	})

	t.Run("should unregister when the bootstrap write fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockCampaignReader(ctrl)
		registry := mocks.NewMockIRegistry(ctrl)
		recorder := mocks.NewMockConnectionRecorder(ctrl)
		sub := mocks.NewMockBootstrappable(ctrl)
		sub.EXPECT().ID().Return(domain.SubscriberID("sub-3")).AnyTimes()
		svc := NewSubscriptionService(log, store, registry, NewBootstrapService(log, store), recorder)

		store.EXPECT().GetCampaign(campaign.ID).Return(campaign, nil)
		registry.EXPECT().Register(campaign.ID, sub).Return(nil)
		recorder.EXPECT().ConnectionOpened()
		store.EXPECT().Snapshot(campaign.ID).Return(snapshot, nil)
		sub.EXPECT().Bootstrap(gomock.Any()).Return(errors.ErrConnectionClosed)
		registry.EXPECT().Unregister(campaign.ID, sub).Return(true)
		recorder.EXPECT().ConnectionClosed()

		err := svc.Join(ctx, campaign.ID, sub)

		req.ErrorIs(err, errors.ErrConnectionClosed)
	})

	t.Run("should refuse a subscriber owned by another campaign", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		store := mocks.NewMockCampaignReader(ctrl)
		registry := mocks.NewMockIRegistry(ctrl)
		recorder := mocks.NewMockConnectionRecorder(ctrl)
		sub := mocks.NewMockBootstrappable(ctrl)
		svc := NewSubscriptionService(log, store, registry, NewBootstrapService(log, store), recorder)

		store.EXPECT().GetCampaign(campaign.ID).Return(campaign, nil)
		registry.EXPECT().Register(campaign.ID, sub).Return(errors.ErrAlreadyRegistered)

		err := svc.Join(ctx, campaign.ID, sub)

		req.ErrorIs(err, errors.ErrAlreadyRegistered)
	})
}

func TestSubscriptionService_Leave_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store := mocks.NewMockCampaignReader(ctrl)
	registry := mocks.NewMockIRegistry(ctrl)
	recorder := mocks.NewMockConnectionRecorder(ctrl)
	sub := mocks.NewMockBootstrappable(ctrl)
	sub.EXPECT().ID().Return(domain.SubscriberID("sub-4")).AnyTimes()
	svc := NewSubscriptionService(log, store, registry, NewBootstrapService(log, store), recorder)
	campaign := domain.Campaign{ID: uuid.New()}

	// Given a joined subscriber
	store.EXPECT().GetCampaign(campaign.ID).Return(campaign, nil)
	registry.EXPECT().Register(campaign.ID, sub).Return(nil)
	recorder.EXPECT().ConnectionOpened().Times(1)
	store.EXPECT().Snapshot(campaign.ID).Return(domain.Snapshot{Campaign: campaign}, nil)
	sub.EXPECT().Bootstrap(gomock.Any()).Return(nil)
	req.NoError(svc.Join(context.Background(), campaign.ID, sub))

	// And already unregistered by the hub when its close hook runs
	registry.EXPECT().Unregister(campaign.ID, sub).Return(false).Times(2)

	// Then the connection is counted closed exactly once
	recorder.EXPECT().ConnectionClosed().Times(1)

	svc.Leave(campaign.ID, sub)
	svc.Leave(campaign.ID, sub)
}

func TestSubscriptionService_Leave_Without_Join_Records_Nothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	recorder := mocks.NewMockConnectionRecorder(ctrl)
	sub := mocks.NewMockSubscriber(ctrl)
	sub.EXPECT().ID().Return(domain.SubscriberID("sub-5")).AnyTimes()
	svc := NewSubscriptionService(logs.GetLoggerFromLevel(slog.LevelDebug), nil, registry, nil, recorder)
	campaignID := uuid.New()

	// A connection refused before registration still runs its close hook
	registry.EXPECT().Unregister(campaignID, sub).Return(false)
	recorder.EXPECT().ConnectionClosed().Times(0)

	svc.Leave(campaignID, sub)
}
