package services

import (
	"context"

	"campaign-hub/contract"
	"campaign-hub/domain"
	"campaign-hub/domain/theme"

	"github.com/google/uuid"
)

type ResolvedColors struct {
	CharacterID uuid.UUID         `json:"character_id"`
	Source      theme.Source      `json:"source"`
	Colors      domain.ColorTheme `json:"colors"`
}

// ThemeService answers the effective colors of a character card.
// Nothing is cached: a layout or override change is visible on the next call.
type ThemeService struct {
	store contract.CampaignReader
}

func NewThemeService(store contract.CampaignReader) *ThemeService {
	return &ThemeService{store: store}
}

func (s *ThemeService) ResolveColors(ctx context.Context, campaignID, characterID uuid.UUID) (ResolvedColors, error) {
	if err := ctx.Err(); err != nil {
		return ResolvedColors{}, err
	}
	character, err := s.store.GetCharacter(campaignID, characterID)
	if err != nil {
		return ResolvedColors{}, err
	}
	layout, err := s.store.GetDefaultLayout(campaignID)
	if err != nil {
		return ResolvedColors{}, err
	}
	resolved := theme.Resolve(character, layout)
	return ResolvedColors{CharacterID: characterID, Source: resolved.Source, Colors: resolved.Colors}, nil
}

func (s *ThemeService) Presets() []theme.Preset {
	return theme.Presets()
}
