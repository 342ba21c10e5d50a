package event

import (
	"encoding/json"
	"testing"

	"campaign-hub/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEncode_Injects_Type(t *testing.T) {
	req := require.New(t)
	characterID := uuid.New()

	// When a deletion is encoded
	frame, err := Encode(CharacterDeleted{CharacterID: characterID})
	req.NoError(err)

	// Then the payload carries the discriminator and the body
	req.Equal(KindCharacterDeleted, frame.Kind)
	var decoded map[string]string
	req.NoError(json.Unmarshal(frame.Payload, &decoded))
	req.Equal("CHAR_DELETED", decoded["type"])
	req.Equal(characterID.String(), decoded["character_id"])
}

func TestEncode_Empty_Body(t *testing.T) {
	req := require.New(t)

	frame, err := Encode(LayoutUpdated{})
	req.NoError(err)
	req.JSONEq(`{"type":"LAYOUT_UPDATED"}`, string(frame.Payload))
}

func TestEncode_Bootstrap_With_Missing_Roster(t *testing.T) {
	req := require.New(t)
	campaignID := uuid.New()

	// Given a snapshot of a campaign without characters nor roster
	snapshot := domain.Snapshot{
		Campaign: domain.Campaign{ID: campaignID, Name: "camp1", AdminToken: "secret"},
		Roster:   domain.EmptyRoster(campaignID),
	}

	// When it is encoded
	frame, err := Encode(NewBootstrap(snapshot))
	req.NoError(err)

	// Then lists are empty arrays and the admin token never leaks
	var decoded struct {
		Type       string            `json:"type"`
		Campaign   map[string]any    `json:"campaign"`
		Characters []json.RawMessage `json:"characters"`
		Roster     struct {
			CharacterIDs []string `json:"character_ids"`
		} `json:"roster"`
	}
	req.NoError(json.Unmarshal(frame.Payload, &decoded))
	req.Equal("BOOTSTRAP", decoded.Type)
	req.NotNil(decoded.Characters)
	req.Empty(decoded.Characters)
	req.NotNil(decoded.Roster.CharacterIDs)
	req.NotContains(string(frame.Payload), "secret")
	req.NotContains(decoded.Campaign, "admin_token")
	req.Contains(string(frame.Payload), `"character_ids":[]`)
}

func TestPeekKind(t *testing.T) {
	req := require.New(t)

	frame, err := Encode(RosterUpdated{Roster: domain.EmptyRoster(uuid.New())})
	req.NoError(err)
	kind, err := PeekKind(frame.Payload)
	req.NoError(err)
	req.Equal(KindRosterUpdated, kind)

	_, err = PeekKind([]byte(`{"roster":{}}`))
	req.Error(err)
}
