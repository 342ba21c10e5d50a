package services

import (
	"context"
	"testing"

	"campaign-hub/auth"
	"campaign-hub/domain"
	"campaign-hub/domain/event"
	"campaign-hub/domain/theme"
	"campaign-hub/errors"
	"campaign-hub/mocks"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCampaignService(t *testing.T) (*CampaignService, *fixture, *mocks.MockPublisher) {
	t.Helper()
	f := newFixture(t)
	publisher := mocks.NewMockPublisher(gomock.NewController(t))
	return NewCampaignService(f.log, f.store, f.gate, publisher), f, publisher
}

// capture expects exactly one publish on campaignID and stores the event.
func capture(publisher *mocks.MockPublisher, campaignID uuid.UUID, got *event.Event) {
	publisher.EXPECT().Publish(campaignID, gomock.Any()).Do(func(_ uuid.UUID, e event.Event) {
		*got = e
	}).Times(1)
}

func TestCampaignService_CreateCampaign(t *testing.T) {
	svc, f, _ := newCampaignService(t)
	ctx := context.Background()

	t.Run("should derive the slug from the name and return the admin token once", func(t *testing.T) {
		req := require.New(t)

		created, err := svc.CreateCampaign(ctx, f.ownerID.String(), auth.CampaignRequest{Name: "Tomb of Annihilation!"})

		req.NoError(err)
		req.Equal("tomb-of-annihilation", created.Campaign.Slug)
		req.Len(created.AdminToken, 64)

		mine, err := svc.ListMyCampaigns(ctx, f.ownerID.String())
		req.NoError(err)
		req.Len(mine, 2)
	})

	t.Run("should refuse a taken slug", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.CreateCampaign(ctx, f.ownerID.String(), auth.CampaignRequest{Name: "Curse of Strahd"})

		req.ErrorIs(err, errors.ErrSlugTaken)
	})

	t.Run("should refuse an invalid owner id", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.CreateCampaign(ctx, "not-a-user", auth.CampaignRequest{Name: "Anything"})

		req.ErrorIs(err, errors.ErrUnauthenticated)
	})

	t.Run("should refuse a missing name", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.CreateCampaign(ctx, f.ownerID.String(), auth.CampaignRequest{})

		req.ErrorIs(err, errors.ErrInvalidArgument)
	})
}

func TestCampaignService_Unauthorized_Writes_Do_Nothing(t *testing.T) {
	svc, f, publisher := newCampaignService(t)
	ctx := context.Background()
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	stranger, err := f.tokens.GenerateToken(uuid.NewString())
	require.NoError(t, err)

	cases := []struct {
		name string
		cred auth.Credential
		want error
	}{
		{"no credential", auth.Credential{}, errors.ErrUnauthenticated},
		{"wrong admin token", auth.Credential{AdminToken: "nope"}, errors.ErrUnauthorized},
		{"stranger session", auth.Credential{OwnerToken: stranger}, errors.ErrUnauthorized},
		{"raw owner id", auth.Credential{OwnerToken: f.ownerID.String()}, errors.ErrUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)

			_, err := svc.CreateCharacter(ctx, f.campaignID(), tc.cred, auth.CharacterRequest{Name: "Ismark"})
			req.ErrorIs(err, tc.want)

			_, err = svc.UpdateRoster(ctx, f.campaignID(), tc.cred, auth.RosterRequest{CharacterIDs: []string{}})
			req.ErrorIs(err, tc.want)

			characters, err := f.store.ListCharacters(f.campaignID())
			req.NoError(err)
			req.Empty(characters)
		})
	}

	t.Run("missing campaign", func(t *testing.T) {
		req := require.New(t)
		_, err := svc.CreateCharacter(ctx, uuid.New(), f.adminCred, auth.CharacterRequest{Name: "Ismark"})
		req.ErrorIs(err, errors.ErrNotFound)
	})
}

func TestCampaignService_Character_Lifecycle(t *testing.T) {
	req := require.New(t)
	svc, f, publisher := newCampaignService(t)
	ctx := context.Background()
	ownerToken, err := f.tokens.GenerateToken(f.ownerID.String())
	req.NoError(err)
	ownerCred := auth.Credential{OwnerToken: ownerToken}

	// Given a character created by the owner
	var got event.Event
	capture(publisher, f.campaignID(), &got)
	created, err := svc.CreateCharacter(ctx, f.campaignID(), ownerCred, auth.CharacterRequest{
		Name:      "Ireena Kolyana",
		ClassName: "Fighter",
		Level:     3,
		Stats:     map[string]int{"hp": 24, "ac": 16},
	})
	req.NoError(err)
	req.Equal("ireena-kolyana", created.Slug)
	req.True(created.IsActive)
	req.Equal(event.KindCharacterCreated, got.Kind())
	req.Equal(created.ID, got.(event.CharacterCreated).Character.ID)

	// When the admin updates it
	capture(publisher, f.campaignID(), &got)
	inactive := false
	updated, err := svc.UpdateCharacter(ctx, f.campaignID(), created.ID, f.adminCred, auth.CharacterRequest{
		Name:     "Ireena",
		Level:    4,
		IsActive: &inactive,
	})
	req.NoError(err)
	req.False(updated.IsActive)
	req.Equal(4, updated.Level)
	req.True(updated.CreatedAt.Equal(created.CreatedAt))
	req.Equal(event.KindCharacterUpdated, got.Kind())

	// And sets then clears a color override
	override := theme.SystemDefault()
	override.BorderColors = []string{"#000000"}
	capture(publisher, f.campaignID(), &got)
	withOverride, err := svc.SetColorOverride(ctx, f.campaignID(), created.ID, f.adminCred, &override)
	req.NoError(err)
	req.NotNil(withOverride.ColorThemeOverride)
	req.Equal(event.KindCharacterUpdated, got.Kind())

	capture(publisher, f.campaignID(), &got)
	cleared, err := svc.SetColorOverride(ctx, f.campaignID(), created.ID, f.adminCred, nil)
	req.NoError(err)
	req.Nil(cleared.ColorThemeOverride)

	// Then deleting it publishes the id only and keeps the roster as is
	capture(publisher, f.campaignID(), &got)
	_, err = svc.UpdateRoster(ctx, f.campaignID(), f.adminCred, auth.RosterRequest{CharacterIDs: []string{created.ID.String()}})
	req.NoError(err)
	req.Equal(event.KindRosterUpdated, got.Kind())

	capture(publisher, f.campaignID(), &got)
	req.NoError(svc.DeleteCharacter(ctx, f.campaignID(), created.ID, f.adminCred))
	req.Equal(event.CharacterDeleted{CharacterID: created.ID}, got)

	roster, err := svc.GetRoster(ctx, f.campaignID())
	req.NoError(err)
	req.Equal([]uuid.UUID{created.ID}, roster.CharacterIDs)

	_, err = svc.GetCharacter(ctx, f.campaignID(), created.ID)
	req.ErrorIs(err, errors.ErrNotFound)

	// A second delete finds nothing and publishes nothing
	err = svc.DeleteCharacter(ctx, f.campaignID(), created.ID, f.adminCred)
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestCampaignService_SetColorOverride_Rejects_Bad_Colors(t *testing.T) {
	req := require.New(t)
	svc, f, publisher := newCampaignService(t)
	ctx := context.Background()
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)
	character, err := svc.CreateCharacter(ctx, f.campaignID(), f.adminCred, auth.CharacterRequest{Name: "Strahd"})
	req.NoError(err)

	bad := theme.SystemDefault()
	bad.TextColor = "red"
	_, err = svc.SetColorOverride(ctx, f.campaignID(), character.ID, f.adminCred, &bad)

	req.ErrorIs(err, errors.ErrInvalidArgument)
	stored, err := f.store.GetCharacter(f.campaignID(), character.ID)
	req.NoError(err)
	req.Nil(stored.ColorThemeOverride)
}

func TestCampaignService_UpdateRoster(t *testing.T) {
	svc, f, publisher := newCampaignService(t)
	ctx := context.Background()
	publisher.EXPECT().Publish(f.campaignID(), gomock.Any()).AnyTimes()

	a, err := svc.CreateCharacter(ctx, f.campaignID(), f.adminCred, auth.CharacterRequest{Name: "A"})
	require.NoError(t, err)
	b, err := svc.CreateCharacter(ctx, f.campaignID(), f.adminCred, auth.CharacterRequest{Name: "B"})
	require.NoError(t, err)

	t.Run("should keep the requested order and drop duplicates", func(t *testing.T) {
		req := require.New(t)

		roster, err := svc.UpdateRoster(ctx, f.campaignID(), f.adminCred, auth.RosterRequest{
			CharacterIDs: []string{b.ID.String(), a.ID.String(), b.ID.String()},
		})

		req.NoError(err)
		req.Equal([]uuid.UUID{b.ID, a.ID}, roster.CharacterIDs)
	})

	t.Run("should refuse characters of another campaign", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.UpdateRoster(ctx, f.campaignID(), f.adminCred, auth.RosterRequest{
			CharacterIDs: []string{a.ID.String(), uuid.NewString()},
		})

		req.ErrorIs(err, errors.ErrInvalidArgument)
		roster, err := svc.GetRoster(ctx, f.campaignID())
		req.NoError(err)
		req.Equal([]uuid.UUID{b.ID, a.ID}, roster.CharacterIDs)
	})

	t.Run("should refuse malformed ids", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.UpdateRoster(ctx, f.campaignID(), f.adminCred, auth.RosterRequest{CharacterIDs: []string{"42"}})

		req.ErrorIs(err, errors.ErrInvalidArgument)
	})
}

func TestCampaignService_Layouts(t *testing.T) {
	req := require.New(t)
	svc, f, publisher := newCampaignService(t)
	ctx := context.Background()
	var got event.Event

	// Tier layout
	capture(publisher, f.campaignID(), &got)
	tier, err := svc.SaveTierLayout(ctx, f.campaignID(), f.adminCred, auth.TierLayoutRequest{
		Tier:   domain.TierCompact,
		Badges: map[string]domain.Placement{"hp": {X: 10, Y: 4, Scale: 1}},
	})
	req.NoError(err)
	update := got.(event.LayoutUpdated)
	req.NotNil(update.Tier)
	req.Nil(update.Layout)
	req.Equal(domain.TierCompact, update.Tier.Tier)
	req.NotNil(tier.Chips)

	stored, err := svc.GetTierLayout(ctx, f.campaignID(), domain.TierCompact)
	req.NoError(err)
	req.Equal(tier.Badges, stored.Badges)

	_, err = svc.GetTierLayout(ctx, f.campaignID(), domain.Tier("huge"))
	req.ErrorIs(err, errors.ErrInvalidArgument)

	// Card layout from a preset becomes the campaign default
	capture(publisher, f.campaignID(), &got)
	layout, err := svc.SaveCardLayout(ctx, f.campaignID(), f.adminCred, auth.CardLayoutRequest{
		Name:        "Gothic",
		IsDefault:   true,
		ColorPreset: string(theme.PurpleAndSilver),
	})
	req.NoError(err)
	preset, ok := theme.GetPreset(theme.PurpleAndSilver)
	req.True(ok)
	req.Equal(preset.Colors, layout.ColorTheme)
	update = got.(event.LayoutUpdated)
	req.Nil(update.Tier)
	req.Equal(layout.ID, update.Layout.ID)

	// A second default replaces the first one
	capture(publisher, f.campaignID(), &got)
	second, err := svc.SaveCardLayout(ctx, f.campaignID(), f.adminCred, auth.CardLayoutRequest{Name: "Plain", IsDefault: true})
	req.NoError(err)
	req.Equal(string(theme.DefaultPreset), second.ColorPreset)

	layouts, err := svc.ListCardLayouts(ctx, f.campaignID())
	req.NoError(err)
	req.Len(layouts, 2)
	defaults := lo.Filter(layouts, func(l domain.CardLayout, _ int) bool { return l.IsDefault })
	req.Len(defaults, 1)
	req.Equal(second.ID, defaults[0].ID)

	// Editing by id keeps the creation time
	capture(publisher, f.campaignID(), &got)
	id := layout.ID.String()
	edited, err := svc.SaveCardLayout(ctx, f.campaignID(), f.adminCred, auth.CardLayoutRequest{ID: &id, Name: "Gothic v2"})
	req.NoError(err)
	req.Equal(layout.ID, edited.ID)
	req.True(edited.CreatedAt.Equal(layout.CreatedAt))

	unknown := uuid.NewString()
	_, err = svc.SaveCardLayout(ctx, f.campaignID(), f.adminCred, auth.CardLayoutRequest{ID: &unknown, Name: "Ghost"})
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestCampaignService_Events(t *testing.T) {
	req := require.New(t)
	svc, f, publisher := newCampaignService(t)
	ctx := context.Background()
	var got event.Event

	capture(publisher, f.campaignID(), &got)
	first, err := svc.CreateEvent(ctx, f.campaignID(), f.adminCred, auth.TimelineEventRequest{Name: "Arrival in Barovia", EpisodeID: "ep-1"})
	req.NoError(err)
	req.Equal(event.KindEventCreated, got.Kind())
	req.NotNil(first.CharactersInvolved)

	capture(publisher, f.campaignID(), &got)
	second, err := svc.CreateEvent(ctx, f.campaignID(), f.adminCred, auth.TimelineEventRequest{Name: "Death House", TimestampInEpisode: 120})
	req.NoError(err)

	capture(publisher, f.campaignID(), &got)
	updated, err := svc.UpdateEvent(ctx, f.campaignID(), first.ID, f.adminCred, auth.TimelineEventRequest{Name: "Arrival", EventType: "travel"})
	req.NoError(err)
	req.Equal("travel", updated.EventType)
	req.Equal(event.KindEventUpdated, got.Kind())

	events, err := svc.ListEvents(ctx, f.campaignID(), 0)
	req.NoError(err)
	req.Len(events, 2)
	req.Equal(second.ID, events[0].ID)

	events, err = svc.ListEvents(ctx, f.campaignID(), 1)
	req.NoError(err)
	req.Len(events, 1)

	capture(publisher, f.campaignID(), &got)
	req.NoError(svc.DeleteEvent(ctx, f.campaignID(), first.ID, f.adminCred))
	req.Equal(event.EventDeleted{EventID: first.ID}, got)

	_, err = svc.GetEvent(ctx, f.campaignID(), first.ID)
	req.ErrorIs(err, errors.ErrNotFound)

	_, err = svc.ListEvents(ctx, uuid.New(), 10)
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestSlugify(t *testing.T) {
	req := require.New(t)
	req.Equal("curse-of-strahd", Slugify("  Curse of Strahd "))
	req.Equal("d-d-5e", Slugify("D&D 5e"))
	req.Equal("", Slugify("!!!"))
}

func TestCampaignService_UpdateCampaign(t *testing.T) {
	svc, f, _ := newCampaignService(t)
	ctx := context.Background()
	ownerToken, err := f.tokens.GenerateToken(f.ownerID.String())
	require.NoError(t, err)
	ownerCred := auth.Credential{OwnerToken: ownerToken}

	t.Run("should change only the given fields", func(t *testing.T) {
		req := require.New(t)

		updated, err := svc.UpdateCampaign(ctx, f.campaignID(), ownerCred,
			auth.CampaignUpdateRequest{Description: lo.ToPtr("Barovia awaits")})

		req.NoError(err)
		req.Equal("Curse of Strahd", updated.Name)
		req.Equal("Barovia awaits", updated.Description)
		req.Equal(f.created.Campaign.Slug, updated.Slug)

		stored, err := svc.GetCampaign(ctx, f.campaignID())
		req.NoError(err)
		req.Equal("Barovia awaits", stored.Description)
		req.Equal(f.created.AdminToken, stored.AdminToken)
	})

	t.Run("should refuse the admin token alone", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.UpdateCampaign(ctx, f.campaignID(), f.adminCred, auth.CampaignUpdateRequest{Name: "Hijacked"})

		req.ErrorIs(err, errors.ErrUnauthenticated)
		stored, err := svc.GetCampaign(ctx, f.campaignID())
		req.NoError(err)
		req.Equal("Curse of Strahd", stored.Name)
	})
}

func TestCampaignService_DeleteCampaign(t *testing.T) {
	svc, f, publisher := newCampaignService(t)
	ctx := context.Background()
	ownerToken, err := f.tokens.GenerateToken(f.ownerID.String())
	require.NoError(t, err)
	strangerToken, err := f.tokens.GenerateToken(uuid.NewString())
	require.NoError(t, err)

	t.Run("should refuse a stranger and keep the subscribers", func(t *testing.T) {
		req := require.New(t)
		publisher.EXPECT().CloseCampaign(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.DeleteCampaign(ctx, f.campaignID(), auth.Credential{OwnerToken: strangerToken})

		req.ErrorIs(err, errors.ErrUnauthorized)
		_, err = svc.GetCampaign(ctx, f.campaignID())
		req.NoError(err)
	})

	t.Run("should delete and close the live subscribers as not found", func(t *testing.T) {
		req := require.New(t)
		publisher.EXPECT().CloseCampaign(f.campaignID(), errors.CloseCampaignNotFound, gomock.Any()).Return(2).Times(1)

		err := svc.DeleteCampaign(ctx, f.campaignID(), auth.Credential{OwnerToken: ownerToken})

		req.NoError(err)
		_, err = svc.GetCampaign(ctx, f.campaignID())
		req.ErrorIs(err, errors.ErrNotFound)
		mine, err := svc.ListMyCampaigns(ctx, f.ownerID.String())
		req.NoError(err)
		req.Empty(mine)
	})

	t.Run("should report a campaign already deleted", func(t *testing.T) {
		req := require.New(t)

		err := svc.DeleteCampaign(ctx, f.campaignID(), auth.Credential{OwnerToken: ownerToken})

		req.ErrorIs(err, errors.ErrNotFound)
	})
}
