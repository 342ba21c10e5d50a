package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Character struct {
	ID                 uuid.UUID      `json:"id"`
	CampaignID         uuid.UUID      `json:"campaign_id"`
	Name               string         `json:"name"`
	Slug               string         `json:"slug"`
	ClassName          string         `json:"class_name,omitempty"`
	Race               string         `json:"race,omitempty"`
	PlayerName         string         `json:"player_name,omitempty"`
	Description        string         `json:"description,omitempty"`
	Backstory          string         `json:"backstory,omitempty"`
	ImageURL           string         `json:"image_url,omitempty"`
	BackgroundImageURL string         `json:"background_image_url,omitempty"`
	Level              int            `json:"level"`
	IsActive           bool           `json:"is_active"`
	Stats              map[string]int `json:"stats"`
	ColorThemeOverride *ColorTheme    `json:"color_theme_override"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Roster lists the characters currently on screen, in display order.
type Roster struct {
	CampaignID   uuid.UUID   `json:"campaign_id"`
	CharacterIDs []uuid.UUID `json:"character_ids"`
	UpdatedAt    time.Time   `json:"updated_at,omitzero"`
}

func EmptyRoster(campaignID uuid.UUID) Roster {
	return Roster{CampaignID: campaignID, CharacterIDs: []uuid.UUID{}}
}

// Contains reports whether the roster references the character.
func (r Roster) Contains(id uuid.UUID) bool {
	return lo.Contains(r.CharacterIDs, id)
}

// TimelineEvent is a moment of a session, optionally attached to an episode label.
type TimelineEvent struct {
	ID                 uuid.UUID   `json:"id"`
	CampaignID         uuid.UUID   `json:"campaign_id"`
	EpisodeID          string      `json:"episode_id,omitempty"`
	Name               string      `json:"name"`
	Description        string      `json:"description,omitempty"`
	TimestampInEpisode int         `json:"timestamp_in_episode"`
	EventType          string      `json:"event_type,omitempty"`
	CharactersInvolved []uuid.UUID `json:"characters_involved"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}
