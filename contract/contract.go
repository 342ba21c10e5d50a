//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"campaign-hub/domain"
	"campaign-hub/domain/event"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision, avoiding a manual name on every Worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Subscriber is one live connection to a campaign stream.
// Consume must not block past ctx. Close is idempotent.
type Subscriber interface {
	ID() domain.SubscriberID
	Consume(ctx context.Context, frame event.Frame) error
	Close(code int, reason string)
}

// Bootstrappable subscribers accept the snapshot frame before any queued broadcast.
type Bootstrappable interface {
	Subscriber
	Bootstrap(frame event.Frame) error
}

type IRegistry interface {
	Register(campaignID uuid.UUID, sub Subscriber) error
	Unregister(campaignID uuid.UUID, sub Subscriber) bool
	SubscribersOf(campaignID uuid.UUID) []Subscriber
	Count(campaignID uuid.UUID) int
	Total() int
}

type Publisher interface {
	Publish(campaignID uuid.UUID, e event.Event)
	// CloseCampaign closes and unregisters every subscriber of the campaign
	// and returns how many there were.
	CloseCampaign(campaignID uuid.UUID, code int, reason string) int
}

// DeliveryRecorder is the observability collaborator of the hub.
type DeliveryRecorder interface {
	RecordPublish(kind event.Kind, delivered, failed int)
}

type ConnectionRecorder interface {
	ConnectionOpened()
	ConnectionClosed()
}

// CampaignReader is the read side of the campaign store.
// Missing entities are reported with errors.ErrNotFound.
type CampaignReader interface {
	GetCampaign(campaignID uuid.UUID) (domain.Campaign, error)
	ListCampaignsByOwner(ownerID uuid.UUID) ([]domain.Campaign, error)
	ListCharacters(campaignID uuid.UUID) ([]domain.Character, error)
	GetCharacter(campaignID, characterID uuid.UUID) (domain.Character, error)
	GetRoster(campaignID uuid.UUID) (domain.Roster, error)
	GetTierLayout(campaignID uuid.UUID, tier domain.Tier) (domain.TierLayout, error)
	ListCardLayouts(campaignID uuid.UUID) ([]domain.CardLayout, error)
	GetDefaultLayout(campaignID uuid.UUID) (*domain.CardLayout, error)
	ListEvents(campaignID uuid.UUID, limit int) ([]domain.TimelineEvent, error)
	GetEvent(campaignID, eventID uuid.UUID) (domain.TimelineEvent, error)
	Snapshot(campaignID uuid.UUID) (domain.Snapshot, error)
}

type CampaignWriter interface {
	CreateCampaign(campaign domain.Campaign) error
	UpdateCampaign(campaign domain.Campaign) error
	// DeleteCampaign removes the campaign and everything scoped to it.
	DeleteCampaign(campaignID uuid.UUID) error
	SaveCharacter(character domain.Character) error
	DeleteCharacter(campaignID, characterID uuid.UUID) error
	SaveRoster(roster domain.Roster) error
	SaveTierLayout(layout domain.TierLayout) error
	SaveCardLayout(layout domain.CardLayout) error
	SaveEvent(e domain.TimelineEvent) error
	DeleteEvent(campaignID, eventID uuid.UUID) error
}

type CampaignStore interface {
	CampaignReader
	CampaignWriter
}

type IUserRepository interface {
	CreateUser(email, hashedPassword string) (domain.User, error)
	GetUserByEmail(email string) (domain.User, error)
}

// CredentialValidator checks a presented credential against one campaign.
type CredentialValidator interface {
	ValidateAdminToken(campaign domain.Campaign, token string) bool
	ValidateOwnerToken(campaign domain.Campaign, token string) bool
}
