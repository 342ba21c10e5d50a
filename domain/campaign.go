// Package domain contains the core concepts of a campaign companion: campaigns,
// their characters, roster, layouts and timeline.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriberID identifies one live connection. It is unique across campaigns.
type SubscriberID string

func NewSubscriberID() SubscriberID {
	return SubscriberID(uuid.NewString())
}

// Campaign is the tenant boundary. The owner and the admin token are never
// serialized to clients; the cbor tags keep them in the store.
type Campaign struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     uuid.UUID `json:"-" cbor:"owner_id"`
	AdminToken  string    `json:"-" cbor:"admin_token"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" cbor:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Snapshot is the point-in-time state sent to a subscriber right after it joins.
type Snapshot struct {
	Campaign   Campaign    `json:"campaign"`
	Characters []Character `json:"characters"`
	Roster     Roster      `json:"roster"`
}
