package auth

import (
	"fmt"
	"unicode"

	"campaign-hub/domain"
	"campaign-hub/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=12,max=72"`
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	if !isPasswordComplex(req.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

type CampaignRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"omitempty,max=255,lowercase"`
	Description string `json:"description" validate:"max=5000"`
}

// CampaignUpdateRequest changes only the fields it carries. An empty name
// keeps the current one.
type CampaignUpdateRequest struct {
	Name        string  `json:"name" validate:"max=255"`
	Description *string `json:"description" validate:"omitnil,max=5000"`
}

type CharacterRequest struct {
	Name               string         `json:"name" validate:"required,max=255"`
	ClassName          string         `json:"class_name" validate:"max=100"`
	Race               string         `json:"race" validate:"max=100"`
	PlayerName         string         `json:"player_name" validate:"max=255"`
	Description        string         `json:"description"`
	Backstory          string         `json:"backstory"`
	ImageURL           string         `json:"image_url" validate:"omitempty,url,max=500"`
	BackgroundImageURL string         `json:"background_image_url" validate:"omitempty,url,max=500"`
	Level              int            `json:"level" validate:"gte=0,lte=30"`
	IsActive           *bool          `json:"is_active"`
	Stats              map[string]int `json:"stats"`
}

type TierLayoutRequest struct {
	Tier   domain.Tier                 `json:"tier" validate:"required,oneof=large medium compact"`
	Badges map[string]domain.Placement `json:"badges"`
	Chips  map[string]domain.Placement `json:"chips"`
}

type CardLayoutRequest struct {
	ID             *string  `json:"id" validate:"omitempty,uuid"`
	Name           string   `json:"name" validate:"required,max=100"`
	IsDefault      bool     `json:"is_default"`
	StatsToDisplay []string `json:"stats_to_display" validate:"max=12"`
	ColorPreset    string   `json:"color_preset" validate:"omitempty,oneof=option_a option_b option_c"`
	// Colors is optional when ColorPreset is set.
	Colors *domain.ColorTheme `json:"colors"`
}

type TimelineEventRequest struct {
	EpisodeID          string   `json:"episode_id" validate:"max=255"`
	Name               string   `json:"name" validate:"required,max=255"`
	Description        string   `json:"description"`
	TimestampInEpisode int      `json:"timestamp_in_episode" validate:"gte=0"`
	EventType          string   `json:"event_type" validate:"max=50"`
	CharactersInvolved []string `json:"characters_involved" validate:"dive,uuid"`
}

type RosterRequest struct {
	CharacterIDs []string `json:"character_ids" validate:"required,dive,uuid"`
}

// ValidateRequest runs the struct tags of any request above.
func ValidateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	return nil
}

// ValidateColorTheme checks every color is a hex code and gradients are well formed.
func ValidateColorTheme(theme domain.ColorTheme) error {
	return ValidateRequest(theme)
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
