// Package theme resolves the colors a character card is drawn with.
//
// The cascade has three steps, first match wins:
//  1. the character's own override
//  2. the campaign default card layout
//  3. the built-in system default preset
//
// Resolve is pure: the same inputs always give the same output and the
// returned theme never aliases an input or a preset.
package theme

import (
	"sort"

	"campaign-hub/domain"

	"github.com/samber/lo"
)

type Source string

const (
	SourceCharacterOverride Source = "character_override"
	SourceCampaignDefault   Source = "campaign_default"
	SourceSystemDefault     Source = "system_default"
)

type Resolved struct {
	Source Source            `json:"source"`
	Colors domain.ColorTheme `json:"colors"`
}

func Resolve(character domain.Character, defaultLayout *domain.CardLayout) Resolved {
	if character.ColorThemeOverride != nil {
		return Resolved{
			Source: SourceCharacterOverride,
			Colors: character.ColorThemeOverride.Clone(),
		}
	}
	if defaultLayout != nil {
		return Resolved{
			Source: SourceCampaignDefault,
			Colors: defaultLayout.ColorTheme.Clone(),
		}
	}
	return Resolved{
		Source: SourceSystemDefault,
		Colors: SystemDefault(),
	}
}

// PickDefault returns the layout flagged as default. When several are flagged
// the one with the lowest id wins, so the choice is stable across calls.
func PickDefault(layouts []domain.CardLayout) *domain.CardLayout {
	defaults := lo.Filter(layouts, func(l domain.CardLayout, _ int) bool {
		return l.IsDefault
	})
	if len(defaults) == 0 {
		return nil
	}
	sort.Slice(defaults, func(i, j int) bool {
		return defaults[i].ID.String() < defaults[j].ID.String()
	})
	return &defaults[0]
}
