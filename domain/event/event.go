package event

import (
	"encoding/json"
	"fmt"

	"campaign-hub/domain"

	"github.com/google/uuid"
)

type Kind string

const (
	KindBootstrap        Kind = "BOOTSTRAP"
	KindCharacterCreated Kind = "CHAR_CREATED"
	KindCharacterUpdated Kind = "CHAR_UPDATED"
	KindCharacterDeleted Kind = "CHAR_DELETED"
	KindRosterUpdated    Kind = "ROSTER_UPDATED"
	KindLayoutUpdated    Kind = "LAYOUT_UPDATED"
	KindEventCreated     Kind = "EVENT"
	KindEventUpdated     Kind = "EVENT_UPDATED"
	KindEventDeleted     Kind = "EVENT_DELETED"
)

// Event is a broadcast message scoped to one campaign.
// Every event is serialized as a JSON object carrying a "type" discriminator.
type Event interface {
	Kind() Kind
}

type Bootstrap struct {
	Campaign   domain.Campaign    `json:"campaign"`
	Characters []domain.Character `json:"characters"`
	Roster     domain.Roster      `json:"roster"`
}

func NewBootstrap(s domain.Snapshot) Bootstrap {
	characters := s.Characters
	if characters == nil {
		characters = []domain.Character{}
	}
	return Bootstrap{Campaign: s.Campaign, Characters: characters, Roster: s.Roster}
}

type CharacterCreated struct {
	Character domain.Character `json:"character"`
}

type CharacterUpdated struct {
	Character domain.Character `json:"character"`
}

type CharacterDeleted struct {
	CharacterID uuid.UUID `json:"character_id"`
}

type RosterUpdated struct {
	Roster domain.Roster `json:"roster"`
}

// LayoutUpdated carries either a tier layout or a card layout.
type LayoutUpdated struct {
	Tier   *domain.TierLayout `json:"tier,omitempty"`
	Layout *domain.CardLayout `json:"layout,omitempty"`
}

type EventCreated struct {
	Event domain.TimelineEvent `json:"event"`
}

type EventUpdated struct {
	Event domain.TimelineEvent `json:"event"`
}

type EventDeleted struct {
	EventID uuid.UUID `json:"event_id"`
}

func (Bootstrap) Kind() Kind        { return KindBootstrap }
func (CharacterCreated) Kind() Kind { return KindCharacterCreated }
func (CharacterUpdated) Kind() Kind { return KindCharacterUpdated }
func (CharacterDeleted) Kind() Kind { return KindCharacterDeleted }
func (RosterUpdated) Kind() Kind    { return KindRosterUpdated }
func (LayoutUpdated) Kind() Kind    { return KindLayoutUpdated }
func (EventCreated) Kind() Kind     { return KindEventCreated }
func (EventUpdated) Kind() Kind     { return KindEventUpdated }
func (EventDeleted) Kind() Kind     { return KindEventDeleted }

// Frame is an event serialized once, ready to be written to any number of subscribers.
type Frame struct {
	Kind    Kind
	Payload []byte
}

// Encode serializes the event body and injects the type discriminator as first key.
func Encode(e Event) (Frame, error) {
	if e == nil {
		return Frame{}, fmt.Errorf("nil event")
	}
	body, err := json.Marshal(e)
	if err != nil {
		return Frame{}, fmt.Errorf("encode %s: %w", e.Kind(), err)
	}
	if len(body) < 2 || body[0] != '{' {
		return Frame{}, fmt.Errorf("encode %s: payload is not an object", e.Kind())
	}
	kind, err := json.Marshal(e.Kind())
	if err != nil {
		return Frame{}, err
	}
	payload := make([]byte, 0, len(body)+len(kind)+9)
	payload = append(payload, `{"type":`...)
	payload = append(payload, kind...)
	if len(body) > 2 {
		payload = append(payload, ',')
	}
	payload = append(payload, body[1:]...)
	return Frame{Kind: e.Kind(), Payload: payload}, nil
}

// PeekKind reads the type discriminator of a payload without decoding the body.
func PeekKind(payload []byte) (Kind, error) {
	var header struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(payload, &header); err != nil {
		return "", err
	}
	if header.Type == "" {
		return "", fmt.Errorf("missing type")
	}
	return header.Type, nil
}
