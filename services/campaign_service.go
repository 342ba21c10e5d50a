package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"campaign-hub/auth"
	"campaign-hub/contract"
	"campaign-hub/domain"
	"campaign-hub/domain/event"
	"campaign-hub/domain/theme"
	"campaign-hub/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const defaultEventLimit = 50

// CreatedCampaign is returned once, at creation. The admin token is not
// readable afterwards.
type CreatedCampaign struct {
	Campaign   domain.Campaign `json:"campaign"`
	AdminToken string          `json:"admin_token"`
}

// CampaignService runs every campaign write as authorize, persist, then publish.
// A write that fails authorization or validation touches neither the store nor
// the subscribers. A persisted write succeeds even if nobody receives the event.
type CampaignService struct {
	log       *slog.Logger
	store     contract.CampaignStore
	gate      IAuthService
	publisher contract.Publisher
	now       func() time.Time
}

func NewCampaignService(log *slog.Logger, store contract.CampaignStore, gate IAuthService, publisher contract.Publisher) *CampaignService {
	return &CampaignService{
		log:       log,
		store:     store,
		gate:      gate,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *CampaignService) CreateCampaign(ctx context.Context, ownerID string, req auth.CampaignRequest) (CreatedCampaign, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return CreatedCampaign{}, errors.ErrUnauthenticated
	}
	if err = auth.ValidateRequest(req); err != nil {
		return CreatedCampaign{}, err
	}

	slug := Slugify(lo.Ternary(req.Slug != "", req.Slug, req.Name))
	if slug == "" {
		return CreatedCampaign{}, fmt.Errorf("%w: name has no usable characters for a slug", errors.ErrInvalidArgument)
	}
	adminToken, err := auth.GenerateAdminToken()
	if err != nil {
		return CreatedCampaign{}, fmt.Errorf("admin token generation failed: %w", err)
	}

	now := s.now()
	campaign := domain.Campaign{
		ID:          uuid.New(),
		Slug:        slug,
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     owner,
		AdminToken:  adminToken,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.store.CreateCampaign(campaign); err != nil {
		return CreatedCampaign{}, err
	}
	s.log.Info("Campaign created", "campaign_id", campaign.ID, "slug", slug)
	return CreatedCampaign{Campaign: campaign, AdminToken: adminToken}, nil
}

func (s *CampaignService) ListMyCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	campaigns, err := s.store.ListCampaignsByOwner(owner)
	return lo.Ternary(campaigns == nil, []domain.Campaign{}, campaigns), err
}

// UpdateCampaign is reserved to the owner session; the admin token is not enough.
func (s *CampaignService) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, cred auth.Credential, req auth.CampaignUpdateRequest) (domain.Campaign, error) {
	campaign, err := s.gate.Authorize(ctx, campaignID, ownerOnly(cred))
	if err != nil {
		return domain.Campaign{}, err
	}
	if err = auth.ValidateRequest(req); err != nil {
		return domain.Campaign{}, err
	}

	if req.Name != "" {
		campaign.Name = req.Name
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	campaign.UpdatedAt = s.now()
	if err = s.store.UpdateCampaign(campaign); err != nil {
		return domain.Campaign{}, err
	}
	return campaign, nil
}

// DeleteCampaign removes the campaign with everything it owns, then closes its
// live subscribers with the not found code so none stays registered.
func (s *CampaignService) DeleteCampaign(ctx context.Context, campaignID uuid.UUID, cred auth.Credential) error {
	if _, err := s.gate.Authorize(ctx, campaignID, ownerOnly(cred)); err != nil {
		return err
	}
	if err := s.store.DeleteCampaign(campaignID); err != nil {
		return err
	}
	closed := s.publisher.CloseCampaign(campaignID, errors.CloseCampaignNotFound, "campaign deleted")
	s.log.Info("Campaign deleted", "campaign_id", campaignID, "closed_subscribers", closed)
	return nil
}

func ownerOnly(cred auth.Credential) auth.Credential {
	return auth.Credential{OwnerToken: cred.OwnerToken}
}

func (s *CampaignService) CreateCharacter(ctx context.Context, campaignID uuid.UUID, cred auth.Credential, req auth.CharacterRequest) (domain.Character, error) {
	if _, err := s.gate.Authorize(ctx, campaignID, cred); err != nil {
		return domain.Character{}, err
	}
	if err := auth.ValidateRequest(req); err != nil {
		return domain.Character{}, err
	}

	now := s.now()
	character := domain.Character{
		ID:         uuid.New(),
		CampaignID: campaignID,
		IsActive:   true,
		CreatedAt:  now,
	}
	applyCharacterRequest(&character, req, now)
	if err := s.store.SaveCharacter(character); err != nil {
		return domain.Character{}, err
	}

	s.publisher.Publish(campaignID, event.CharacterCreated{Character: character})
	return character, nil
}

// UpdateCharacter replaces the editable fields. The color override is kept.
func (s *CampaignService) UpdateCharacter(ctx context.Context, campaignID, characterID uuid.UUID, cred auth.Credential, req auth.CharacterRequest) (domain.Character, error) {
	if _, err := s.gate.Authorize(ctx, campaignID, cred); err != nil {
		return domain.Character{}, err
	}
	if err := auth.ValidateRequest(req); err != nil {
		return domain.Character{}, err
	}

	character, err := s.store.GetCharacter(campaignID, characterID)
	if err != nil {
		return domain.Character{}, err
	}
	applyCharacterRequest(&character, req, s.now())
	if err = s.store.SaveCharacter(character); err != nil {
		return domain.Character{}, err
	}

	s.publisher.Publish(campaignID, event.CharacterUpdated{Character: character})
	return character, nil
}

// DeleteCharacter leaves the roster untouched. Clients drop unknown roster ids.
func (s *CampaignService) DeleteCharacter(ctx context.Context, campaignID, characterID uuid.UUID, cred auth.Credential) error {
	if _, err := s.gate.Authorize(ctx, campaignID, cred); err != nil {
		return err
	}
	if err := s.store.DeleteCharacter(campaignID, characterID); err != nil {
		return err
	}
	s.publisher.Publish(campaignID, event.CharacterDeleted{CharacterID: characterID})
	return nil
}

// SetColorOverride sets, or clears when colors is nil, the per-character theme.
func (s *CampaignService) SetColorOverride(ctx context.Context, campaignID, characterID uuid.UUID, cred auth.Credential, colors *domain.ColorTheme) (domain.Character, error) {
	if _, err := s.gate.Authorize(ctx, campaignID, cred); err != nil {
		return domain.Character{}, err
	}
	if colors != nil {
		if err := auth.ValidateColorTheme(*colors); err != nil {
			return domain.Character{}, err
		}
	}

	character, err := s.store.GetCharacter(campaignID, characterID)
	if err != nil {
		return domain.Character{}, err
	}
	if colors != nil {
		override := colors.Clone()
		character.ColorThemeOverride = &override
	} else {
		character.ColorThemeOverride = nil
	}
	character.UpdatedAt = s.now()
	if err = s.store.SaveCharacter(character); err != nil {
		return domain.Character{}, err
	}

	s.publisher.Publish(campaignID, event.CharacterUpdated{Character: character})
	return character, nil
}

// UpdateRoster replaces the on-screen list. Every id must be a character of the campaign.
func (s *CampaignService) UpdateRoster(ctx context.Context, campaignID uuid.UUID, cred auth.Credential, req auth.RosterRequest) (domain.Roster, error) {
	if _, err := s.gate.Authorize(ctx, campaignID, cred); err != nil {
		return domain.Roster{}, err
	}
	if err := auth.ValidateRequest(req); err != nil {
		return domain.Roster{}, err
	}

	ids := lo.Uniq(lo.Map(req.CharacterIDs, func(id string, _ int) uuid.UUID {
		return uuid.MustParse(id)
	}))
	characters, err := s.store.ListCharacters(campaignID)
	if err != nil {
		return domain.Roster{}, err
	}
	known := lo.Map(characters, func(c domain.Character, _ int) uuid.UUID { return c.ID })
	if unknown, _ := lo.Difference(ids, known); len(unknown) > 0 {
		return domain.Roster{}, fmt.Errorf("%w: unknown characters %v", errors.ErrInvalidArgument, unknown)
	}

	roster := domain.Roster{CampaignID: campaignID, CharacterIDs: ids, UpdatedAt: s.now()}
	if err = s.store.SaveRoster(roster); err != nil {
		return domain.Roster{}, err
	}

	s.publisher.Publish(campaignID, event.RosterUpdated{Roster: roster})
	return roster, nil
}

func (s *CampaignService) SaveTierLayout(ctx context.Context, campaignID uuid.UUID, cred auth.Credential, req auth.TierLayoutRequest) (domain.TierLayout, error) {
	if _, err := s.gate.Authorize(ctx, campaignID, cred); err != nil {
		return domain.TierLayout{}, err
	}
	if err := auth.ValidateRequest(req); err != nil {
		return domain.TierLayout{}, err
	}

	layout := domain.TierLayout{
		CampaignID: campaignID,
		Tier:       req.Tier,
		Badges:     lo.Ternary(req.Badges == nil, map[string]domain.Placement{}, req.Badges),
		Chips:      lo.Ternary(req.Chips == nil, map[string]domain.Placement{}, req.Chips),
		UpdatedAt:  s.now(),
	}
	if err := s.store.SaveTierLayout(layout); err != nil {
		return domain.TierLayout{}, err
	}

	s.publisher.Publish(campaignID, event.LayoutUpdated{Tier: &layout})
	return layout, nil
}

// SaveCardLayout creates the layout, or replaces it when the request carries an id.
// Without explicit colors the layout takes the colors of its preset, the system
// default preset when none is named.
func (s *CampaignService) SaveCardLayout(ctx context.Context, campaignID uuid.UUID, cred auth.Credential, req auth.CardLayoutRequest) (domain.CardLayout, error) {
	if _, err := s.gate.Authorize(ctx, campaignID, cred); err != nil {
		return domain.CardLayout{}, err
	}
	if err := auth.ValidateRequest(req); err != nil {
		return domain.CardLayout{}, err
	}

	now := s.now()
	layout := domain.CardLayout{ID: uuid.New(), CampaignID: campaignID, CreatedAt: now}
	if req.ID != nil {
		existing, err := s.findCardLayout(campaignID, uuid.MustParse(*req.ID))
		if err != nil {
			return domain.CardLayout{}, err
		}
		layout = existing
	}

	presetID := lo.Ternary(req.ColorPreset != "", theme.PresetID(req.ColorPreset), theme.DefaultPreset)
	if req.Colors != nil {
		if err := auth.ValidateColorTheme(*req.Colors); err != nil {
			return domain.CardLayout{}, err
		}
		layout.ColorTheme = req.Colors.Clone()
	} else {
		preset, ok := theme.GetPreset(presetID)
		if !ok {
			return domain.CardLayout{}, fmt.Errorf("%w: unknown preset %q", errors.ErrInvalidArgument, presetID)
		}
		layout.ColorTheme = preset.Colors
	}
	layout.ColorPreset = string(presetID)
	layout.Name = req.Name
	layout.IsDefault = req.IsDefault
	layout.StatsToDisplay = lo.Ternary(req.StatsToDisplay == nil, []string{}, req.StatsToDisplay)
	layout.UpdatedAt = now

	if err := s.store.SaveCardLayout(layout); err != nil {
		return domain.CardLayout{}, err
	}

	s.publisher.Publish(campaignID, event.LayoutUpdated{Layout: &layout})
	return layout, nil
}

func (s *CampaignService) CreateEvent(ctx context.Context, campaignID uuid.UUID, cred auth.Credential, req auth.TimelineEventRequest) (domain.TimelineEvent, error) {
	if _, err := s.gate.Authorize(ctx, campaignID, cred); err != nil {
		return domain.TimelineEvent{}, err
	}
	if err := auth.ValidateRequest(req); err != nil {
		return domain.TimelineEvent{}, err
	}

	now := s.now()
	e := domain.TimelineEvent{ID: uuid.New(), CampaignID: campaignID, CreatedAt: now}
	applyEventRequest(&e, req, now)
	if err := s.store.SaveEvent(e); err != nil {
		return domain.TimelineEvent{}, err
	}

	s.publisher.Publish(campaignID, event.EventCreated{Event: e})
	return e, nil
}

func (s *CampaignService) UpdateEvent(ctx context.Context, campaignID, eventID uuid.UUID, cred auth.Credential, req auth.TimelineEventRequest) (domain.TimelineEvent, error) {
	if _, err := s.gate.Authorize(ctx, campaignID, cred); err != nil {
		return domain.TimelineEvent{}, err
	}
	if err := auth.ValidateRequest(req); err != nil {
		return domain.TimelineEvent{}, err
	}

	e, err := s.store.GetEvent(campaignID, eventID)
	if err != nil {
		return domain.TimelineEvent{}, err
	}
	applyEventRequest(&e, req, s.now())
	if err = s.store.SaveEvent(e); err != nil {
		return domain.TimelineEvent{}, err
	}

	s.publisher.Publish(campaignID, event.EventUpdated{Event: e})
	return e, nil
}

func (s *CampaignService) DeleteEvent(ctx context.Context, campaignID, eventID uuid.UUID, cred auth.Credential) error {
	if _, err := s.gate.Authorize(ctx, campaignID, cred); err != nil {
		return err
	}
	if err := s.store.DeleteEvent(campaignID, eventID); err != nil {
		return err
	}
	s.publisher.Publish(campaignID, event.EventDeleted{EventID: eventID})
	return nil
}

// Public reads.

func (s *CampaignService) GetCampaign(ctx context.Context, campaignID uuid.UUID) (domain.Campaign, error) {
	return s.store.GetCampaign(campaignID)
}

func (s *CampaignService) ListCharacters(ctx context.Context, campaignID uuid.UUID) ([]domain.Character, error) {
	if _, err := s.store.GetCampaign(campaignID); err != nil {
		return nil, err
	}
	characters, err := s.store.ListCharacters(campaignID)
	return lo.Ternary(characters == nil, []domain.Character{}, characters), err
}

func (s *CampaignService) GetCharacter(ctx context.Context, campaignID, characterID uuid.UUID) (domain.Character, error) {
	return s.store.GetCharacter(campaignID, characterID)
}

// GetRoster returns an empty roster for a campaign that never saved one.
func (s *CampaignService) GetRoster(ctx context.Context, campaignID uuid.UUID) (domain.Roster, error) {
	if _, err := s.store.GetCampaign(campaignID); err != nil {
		return domain.Roster{}, err
	}
	roster, err := s.store.GetRoster(campaignID)
	if errors.Is(err, errors.ErrNotFound) {
		return domain.EmptyRoster(campaignID), nil
	}
	return roster, err
}

func (s *CampaignService) GetTierLayout(ctx context.Context, campaignID uuid.UUID, tier domain.Tier) (domain.TierLayout, error) {
	if err := auth.ValidateRequest(auth.TierLayoutRequest{Tier: tier}); err != nil {
		return domain.TierLayout{}, err
	}
	return s.store.GetTierLayout(campaignID, tier)
}

func (s *CampaignService) ListCardLayouts(ctx context.Context, campaignID uuid.UUID) ([]domain.CardLayout, error) {
	if _, err := s.store.GetCampaign(campaignID); err != nil {
		return nil, err
	}
	layouts, err := s.store.ListCardLayouts(campaignID)
	return lo.Ternary(layouts == nil, []domain.CardLayout{}, layouts), err
}

// ListEvents returns the newest events first. A non-positive limit falls back to 50.
func (s *CampaignService) ListEvents(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.TimelineEvent, error) {
	if _, err := s.store.GetCampaign(campaignID); err != nil {
		return nil, err
	}
	events, err := s.store.ListEvents(campaignID, lo.Ternary(limit > 0, limit, defaultEventLimit))
	return lo.Ternary(events == nil, []domain.TimelineEvent{}, events), err
}

func (s *CampaignService) GetEvent(ctx context.Context, campaignID, eventID uuid.UUID) (domain.TimelineEvent, error) {
	return s.store.GetEvent(campaignID, eventID)
}

func (s *CampaignService) findCardLayout(campaignID, layoutID uuid.UUID) (domain.CardLayout, error) {
	layouts, err := s.store.ListCardLayouts(campaignID)
	if err != nil {
		return domain.CardLayout{}, err
	}
	layout, ok := lo.Find(layouts, func(l domain.CardLayout) bool { return l.ID == layoutID })
	if !ok {
		return domain.CardLayout{}, fmt.Errorf("card layout %s: %w", layoutID, errors.ErrNotFound)
	}
	return layout, nil
}

func applyCharacterRequest(c *domain.Character, req auth.CharacterRequest, now time.Time) {
	c.Name = req.Name
	c.Slug = Slugify(req.Name)
	c.ClassName = req.ClassName
	c.Race = req.Race
	c.PlayerName = req.PlayerName
	c.Description = req.Description
	c.Backstory = req.Backstory
	c.ImageURL = req.ImageURL
	c.BackgroundImageURL = req.BackgroundImageURL
	c.Level = req.Level
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	c.Stats = lo.Ternary(req.Stats == nil, map[string]int{}, req.Stats)
	c.UpdatedAt = now
}

func applyEventRequest(e *domain.TimelineEvent, req auth.TimelineEventRequest, now time.Time) {
	e.EpisodeID = req.EpisodeID
	e.Name = req.Name
	e.Description = req.Description
	e.TimestampInEpisode = req.TimestampInEpisode
	e.EventType = req.EventType
	e.CharactersInvolved = lo.Map(req.CharactersInvolved, func(id string, _ int) uuid.UUID {
		return uuid.MustParse(id)
	})
	e.UpdatedAt = now
}

// Slugify lowercases s and joins its letter and digit runs with dashes.
func Slugify(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, "-")
}
