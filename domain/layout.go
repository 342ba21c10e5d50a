package domain

import (
	"time"

	"github.com/google/uuid"
)

type Tier string

const (
	TierLarge   Tier = "large"
	TierMedium  Tier = "medium"
	TierCompact Tier = "compact"
)

type Placement struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// TierLayout holds the badge and chip positions of one overlay tier.
type TierLayout struct {
	CampaignID uuid.UUID            `json:"campaign_id"`
	Tier       Tier                 `json:"tier"`
	Badges     map[string]Placement `json:"badges"`
	Chips      map[string]Placement `json:"chips"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// CardLayout is a campaign-wide card style. At most one is meant to be the
// default but the store does not enforce it.
type CardLayout struct {
	ID             uuid.UUID `json:"id"`
	CampaignID     uuid.UUID `json:"campaign_id"`
	Name           string    `json:"name"`
	IsDefault      bool      `json:"is_default"`
	StatsToDisplay []string  `json:"stats_to_display"`
	ColorTheme
	ColorPreset string    `json:"color_preset,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
