package runtime

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"campaign-hub/contract"
	"campaign-hub/domain"
	"campaign-hub/domain/event"
	"campaign-hub/errors"
	"campaign-hub/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockSubscriber(ctrl *gomock.Controller) *mocks.MockSubscriber {
	sub := mocks.NewMockSubscriber(ctrl)
	sub.EXPECT().ID().Return(domain.NewSubscriberID()).AnyTimes()
	return sub
}

func TestHub_Publish_Without_Subscriber_Is_NoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockDeliveryRecorder(ctrl)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), NewRegistry(), recorder, time.Second, 4)

	// Then nothing is recorded
	recorder.EXPECT().RecordPublish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// When an event is published to an empty campaign
	hub.Publish(uuid.New(), event.CharacterDeleted{CharacterID: uuid.New()})
}

func TestHub_Publish_Delivers_Same_Frame_To_All(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	recorder := mocks.NewMockDeliveryRecorder(ctrl)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), registry, recorder, time.Second, 2)
	campaignID := uuid.New()
	characterID := uuid.New()

	var mu sync.Mutex
	var received []event.Frame
	for i := 0; i < 3; i++ {
		sub := newMockSubscriber(ctrl)
		sub.EXPECT().Consume(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, f event.Frame) error {
				mu.Lock()
				defer mu.Unlock()
				received = append(received, f)
				return nil
			}).Times(1)
		req.NoError(registry.Register(campaignID, sub))
	}
	recorder.EXPECT().RecordPublish(event.KindCharacterDeleted, 3, 0).Times(1)

	// When one event is published
	hub.Publish(campaignID, event.CharacterDeleted{CharacterID: characterID})

	// Then every subscriber got the same payload
	req.Len(received, 3)
	for _, f := range received {
		req.Equal(received[0].Payload, f.Payload)
	}
	req.Contains(string(received[0].Payload), characterID.String())
}

func TestHub_Publish_Evicts_Failed_Subscriber(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	recorder := mocks.NewMockDeliveryRecorder(ctrl)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), registry, recorder, time.Second, 4)
	campaignID := uuid.New()

	// Given three subscribers, one of them closed by its transport
	healthy1, healthy2, dead := newMockSubscriber(ctrl), newMockSubscriber(ctrl), newMockSubscriber(ctrl)
	for _, s := range []*mocks.MockSubscriber{healthy1, healthy2, dead} {
		req.NoError(registry.Register(campaignID, s))
	}
	healthy1.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	healthy2.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	dead.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(errors.ErrConnectionClosed).Times(1)

	// Then the dead one is closed with the delivery failure code
	dead.EXPECT().Close(errors.CloseDeliveryFailed, gomock.Any()).Times(1)
	recorder.EXPECT().RecordPublish(event.KindRosterUpdated, 2, 1).Times(1)

	// When an event is published
	hub.Publish(campaignID, event.RosterUpdated{Roster: domain.EmptyRoster(campaignID)})

	// Then exactly two subscribers remain
	req.Equal(2, registry.Count(campaignID))
	req.NotContains(registry.SubscribersOf(campaignID), dead)
}

func TestHub_Publish_Slow_Subscriber_Does_Not_Block_Others(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	recorder := mocks.NewMockDeliveryRecorder(ctrl)
	sendTimeout := 50 * time.Millisecond
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), registry, recorder, sendTimeout, 4)
	campaignID := uuid.New()

	// Given a subscriber whose queue never drains
	slow, fast := newMockSubscriber(ctrl), newMockSubscriber(ctrl)
	req.NoError(registry.Register(campaignID, slow))
	req.NoError(registry.Register(campaignID, fast))
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, f event.Frame) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)
	slow.EXPECT().Close(errors.CloseDeliveryFailed, gomock.Any()).Times(1)
	fast.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	recorder.EXPECT().RecordPublish(event.KindCharacterDeleted, 1, 1).Times(1)

	// When an event is published
	start := time.Now()
	hub.Publish(campaignID, event.CharacterDeleted{CharacterID: uuid.New()})

	// Then publish returns after the send timeout, not later
	req.Less(time.Since(start), 10*sendTimeout)
	req.Equal(1, registry.Count(campaignID))
}

func TestHub_Publish_Is_Campaign_Scoped(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	recorder := mocks.NewMockDeliveryRecorder(ctrl)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), registry, recorder, time.Second, 4)
	camp1, camp2 := uuid.New(), uuid.New()

	inCamp1, inCamp2 := newMockSubscriber(ctrl), newMockSubscriber(ctrl)
	req.NoError(registry.Register(camp1, inCamp1))
	req.NoError(registry.Register(camp2, inCamp2))

	// Then only camp1 subscribers are reached
	inCamp1.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	inCamp2.EXPECT().Consume(gomock.Any(), gomock.Any()).Times(0)
	recorder.EXPECT().RecordPublish(gomock.Any(), 1, 0).Times(1)

	hub.Publish(camp1, event.CharacterDeleted{CharacterID: uuid.New()})
}

func TestHub_Sequential_Publishes_Keep_Order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	recorder := mocks.NewMockDeliveryRecorder(ctrl)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), registry, recorder, time.Second, 4)
	campaignID := uuid.New()

	var kinds []event.Kind
	sub := newMockSubscriber(ctrl)
	sub.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, f event.Frame) error {
			kinds = append(kinds, f.Kind)
			return nil
		}).Times(3)
	req.NoError(registry.Register(campaignID, sub))
	recorder.EXPECT().RecordPublish(gomock.Any(), 1, 0).Times(3)

	// When a single producer publishes three events in a row
	hub.Publish(campaignID, event.CharacterCreated{})
	hub.Publish(campaignID, event.CharacterUpdated{})
	hub.Publish(campaignID, event.CharacterDeleted{})

	// Then the subscriber sees them in the same order
	req.Equal([]event.Kind{event.KindCharacterCreated, event.KindCharacterUpdated, event.KindCharacterDeleted}, kinds)
}

func TestHub_Publish_Queued_Send_Gets_Its_Own_Timeout(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	recorder := mocks.NewMockDeliveryRecorder(ctrl)
	sendTimeout := 100 * time.Millisecond
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), registry, recorder, sendTimeout, 1)
	campaignID := uuid.New()

	// Given one send slot, held first by a stalled subscriber
	stalled, healthy := mocks.NewMockSubscriber(ctrl), mocks.NewMockSubscriber(ctrl)
	stalled.EXPECT().ID().Return(domain.SubscriberID("a-stalled")).AnyTimes()
	healthy.EXPECT().ID().Return(domain.SubscriberID("b-healthy")).AnyTimes()
	req.NoError(registry.Register(campaignID, stalled))
	req.NoError(registry.Register(campaignID, healthy))

	stalled.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, f event.Frame) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)
	stalled.EXPECT().Close(errors.CloseDeliveryFailed, gomock.Any()).Times(1)
	// The healthy send starts after the stalled one timed out and must still
	// have a live context
	healthy.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, f event.Frame) error {
			return ctx.Err()
		}).Times(1)
	healthy.EXPECT().Close(gomock.Any(), gomock.Any()).Times(0)
	recorder.EXPECT().RecordPublish(event.KindCharacterDeleted, 1, 1).Times(1)

	// When an event is published
	hub.Publish(campaignID, event.CharacterDeleted{CharacterID: uuid.New()})

	// Then only the stalled subscriber is evicted
	req.Equal([]contract.Subscriber{healthy}, registry.SubscribersOf(campaignID))
}

func TestHub_CloseCampaign_Closes_Only_That_Campaign(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), registry, mocks.NewMockDeliveryRecorder(ctrl), time.Second, 4)
	deleted, other := uuid.New(), uuid.New()

	// Given two subscribers of a campaign being deleted and one elsewhere
	first, second, elsewhere := newMockSubscriber(ctrl), newMockSubscriber(ctrl), newMockSubscriber(ctrl)
	req.NoError(registry.Register(deleted, first))
	req.NoError(registry.Register(deleted, second))
	req.NoError(registry.Register(other, elsewhere))

	first.EXPECT().Close(errors.CloseCampaignNotFound, "campaign deleted").Times(1)
	second.EXPECT().Close(errors.CloseCampaignNotFound, "campaign deleted").Times(1)
	elsewhere.EXPECT().Close(gomock.Any(), gomock.Any()).Times(0)

	// When the campaign is closed
	closed := hub.CloseCampaign(deleted, errors.CloseCampaignNotFound, "campaign deleted")

	// Then its subscribers are gone and the other campaign is untouched
	req.Equal(2, closed)
	req.Zero(registry.Count(deleted))
	req.Equal(1, registry.Count(other))
	req.Zero(hub.CloseCampaign(deleted, errors.CloseCampaignNotFound, "campaign deleted"))
}
