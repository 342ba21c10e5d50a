package storage

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"campaign-hub/domain"
	"campaign-hub/domain/theme"
	"campaign-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Key layout, every campaign-scoped key starts with its campaign id so a
// prefix scan never crosses tenants:
//
//	campaign:{id}
//	campaign-slug:{slug}             -> campaign id
//	campaign-owner:{owner}:{id}      -> empty
//	character:{campaign}:{id}
//	roster:{campaign}
//	tier-layout:{campaign}:{tier}
//	card-layout:{campaign}:{id}
//	event:{campaign}:{id}
const (
	campaignPrefix      = "campaign:"
	campaignSlugPrefix  = "campaign-slug:"
	campaignOwnerPrefix = "campaign-owner:"
	characterPrefix     = "character:"
	rosterPrefix        = "roster:"
	tierLayoutPrefix    = "tier-layout:"
	cardLayoutPrefix    = "card-layout:"
	eventPrefix         = "event:"
)

func campaignKey(id uuid.UUID) string { return campaignPrefix + id.String() }
func slugKey(slug string) string      { return campaignSlugPrefix + slug }
func ownerKey(owner, id uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", campaignOwnerPrefix, owner, id)
}
func characterKey(campaignID, id uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", characterPrefix, campaignID, id)
}
func rosterKey(campaignID uuid.UUID) string { return rosterPrefix + campaignID.String() }
func tierLayoutKey(campaignID uuid.UUID, tier domain.Tier) string {
	return fmt.Sprintf("%s%s:%s", tierLayoutPrefix, campaignID, tier)
}
func cardLayoutKey(campaignID, id uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", cardLayoutPrefix, campaignID, id)
}
func eventKey(campaignID, id uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", eventPrefix, campaignID, id)
}
func scoped(prefix string, campaignID uuid.UUID) string {
	return prefix + campaignID.String() + ":"
}

// CampaignStore is the badger-backed campaign data store.
// Methods are safe for concurrent use; each one runs in its own transaction.
type CampaignStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCampaignStore(db *badger.DB, log *slog.Logger) *CampaignStore {
	return &CampaignStore{db: db, log: log}
}

// CreateCampaign persists a new campaign and reserves its slug.
func (s *CampaignStore) CreateCampaign(campaign domain.Campaign) error {
	return s.db.Update(func(txn *badger.Txn) error {
		taken, err := exists(txn, slugKey(campaign.Slug))
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%q: %w", campaign.Slug, errors.ErrSlugTaken)
		}
		if err = setValue(txn, campaignKey(campaign.ID), campaign); err != nil {
			return err
		}
		if err = txn.Set([]byte(slugKey(campaign.Slug)), []byte(campaign.ID.String())); err != nil {
			return err
		}
		return txn.Set([]byte(ownerKey(campaign.OwnerID, campaign.ID)), nil)
	})
}

// UpdateCampaign overwrites an existing campaign. The slug and owner are immutable.
func (s *CampaignStore) UpdateCampaign(campaign domain.Campaign) error {
	return s.db.Update(func(txn *badger.Txn) error {
		found, err := exists(txn, campaignKey(campaign.ID))
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s: %w", campaignKey(campaign.ID), errors.ErrNotFound)
		}
		return setValue(txn, campaignKey(campaign.ID), campaign)
	})
}

// DeleteCampaign removes the campaign, its slug and owner index entries and
// every key scoped to it, in one transaction.
func (s *CampaignStore) DeleteCampaign(campaignID uuid.UUID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		campaign, err := getValue[domain.Campaign](txn, campaignKey(campaignID))
		if err != nil {
			return err
		}
		keys := []string{
			campaignKey(campaignID),
			slugKey(campaign.Slug),
			ownerKey(campaign.OwnerID, campaignID),
			rosterKey(campaignID),
		}
		for _, prefix := range []string{characterPrefix, tierLayoutPrefix, cardLayoutPrefix, eventPrefix} {
			keys = append(keys, scanKeys(txn, scoped(prefix, campaignID))...)
		}
		for _, key := range keys {
			if err = txn.Delete([]byte(key)); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}
		s.log.Debug("Campaign keys deleted", "campaign_id", campaignID, "keys", len(keys))
		return nil
	})
}

func (s *CampaignStore) GetCampaign(campaignID uuid.UUID) (domain.Campaign, error) {
	var campaign domain.Campaign
	err := s.db.View(func(txn *badger.Txn) (err error) {
		campaign, err = getValue[domain.Campaign](txn, campaignKey(campaignID))
		return err
	})
	return campaign, err
}

func (s *CampaignStore) ListCampaignsByOwner(ownerID uuid.UUID) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := campaignOwnerPrefix + ownerID.String() + ":"
		for _, key := range scanKeys(txn, prefix) {
			id, err := uuid.Parse(strings.TrimPrefix(key, prefix))
			if err != nil {
				s.log.Warn("Malformed owner index key", "key", key)
				continue
			}
			campaign, err := getValue[domain.Campaign](txn, campaignKey(id))
			if err != nil {
				return err
			}
			campaigns = append(campaigns, campaign)
		}
		return nil
	})
	sort.Slice(campaigns, func(i, j int) bool {
		return campaigns[i].CreatedAt.Before(campaigns[j].CreatedAt)
	})
	return campaigns, err
}

func (s *CampaignStore) ListCharacters(campaignID uuid.UUID) ([]domain.Character, error) {
	var characters []domain.Character
	err := s.db.View(func(txn *badger.Txn) (err error) {
		characters, err = listCharacters(txn, campaignID)
		return err
	})
	return characters, err
}

func (s *CampaignStore) GetCharacter(campaignID, characterID uuid.UUID) (domain.Character, error) {
	var character domain.Character
	err := s.db.View(func(txn *badger.Txn) (err error) {
		character, err = getValue[domain.Character](txn, characterKey(campaignID, characterID))
		return err
	})
	return character, err
}

func (s *CampaignStore) SaveCharacter(character domain.Character) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return setValue(txn, characterKey(character.CampaignID, character.ID), character)
	})
}

// DeleteCharacter removes the character only; a roster still referencing it is left as is.
func (s *CampaignStore) DeleteCharacter(campaignID, characterID uuid.UUID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := characterKey(campaignID, characterID)
		found, err := exists(txn, key)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s: %w", key, errors.ErrNotFound)
		}
		return txn.Delete([]byte(key))
	})
}

// GetRoster returns errors.ErrNotFound when the campaign never saved a roster.
func (s *CampaignStore) GetRoster(campaignID uuid.UUID) (domain.Roster, error) {
	var roster domain.Roster
	err := s.db.View(func(txn *badger.Txn) (err error) {
		roster, err = getValue[domain.Roster](txn, rosterKey(campaignID))
		return err
	})
	if roster.CharacterIDs == nil {
		roster.CharacterIDs = []uuid.UUID{}
	}
	return roster, err
}

func (s *CampaignStore) SaveRoster(roster domain.Roster) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return setValue(txn, rosterKey(roster.CampaignID), roster)
	})
}

func (s *CampaignStore) GetTierLayout(campaignID uuid.UUID, tier domain.Tier) (domain.TierLayout, error) {
	var layout domain.TierLayout
	err := s.db.View(func(txn *badger.Txn) (err error) {
		layout, err = getValue[domain.TierLayout](txn, tierLayoutKey(campaignID, tier))
		return err
	})
	return layout, err
}

func (s *CampaignStore) SaveTierLayout(layout domain.TierLayout) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return setValue(txn, tierLayoutKey(layout.CampaignID, layout.Tier), layout)
	})
}

func (s *CampaignStore) ListCardLayouts(campaignID uuid.UUID) ([]domain.CardLayout, error) {
	var layouts []domain.CardLayout
	err := s.db.View(func(txn *badger.Txn) (err error) {
		layouts, err = scanPrefix[domain.CardLayout](txn, scoped(cardLayoutPrefix, campaignID))
		return err
	})
	return layouts, err
}

// GetDefaultLayout returns nil without error when the campaign has no default layout.
func (s *CampaignStore) GetDefaultLayout(campaignID uuid.UUID) (*domain.CardLayout, error) {
	layouts, err := s.ListCardLayouts(campaignID)
	if err != nil {
		return nil, err
	}
	return theme.PickDefault(layouts), nil
}

// SaveCardLayout persists the layout. Saving a default layout clears the flag
// on the other layouts of the campaign in the same transaction.
func (s *CampaignStore) SaveCardLayout(layout domain.CardLayout) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if layout.IsDefault {
			others, err := scanPrefix[domain.CardLayout](txn, scoped(cardLayoutPrefix, layout.CampaignID))
			if err != nil {
				return err
			}
			for _, other := range others {
				if other.ID == layout.ID || !other.IsDefault {
					continue
				}
				other.IsDefault = false
				if err = setValue(txn, cardLayoutKey(other.CampaignID, other.ID), other); err != nil {
					return err
				}
			}
		}
		return setValue(txn, cardLayoutKey(layout.CampaignID, layout.ID), layout)
	})
}

// ListEvents returns the newest events first. A non-positive limit returns them all.
func (s *CampaignStore) ListEvents(campaignID uuid.UUID, limit int) ([]domain.TimelineEvent, error) {
	var events []domain.TimelineEvent
	err := s.db.View(func(txn *badger.Txn) (err error) {
		events, err = scanPrefix[domain.TimelineEvent](txn, scoped(eventPrefix, campaignID))
		return err
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (s *CampaignStore) GetEvent(campaignID, eventID uuid.UUID) (domain.TimelineEvent, error) {
	var e domain.TimelineEvent
	err := s.db.View(func(txn *badger.Txn) (err error) {
		e, err = getValue[domain.TimelineEvent](txn, eventKey(campaignID, eventID))
		return err
	})
	return e, err
}

func (s *CampaignStore) SaveEvent(e domain.TimelineEvent) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return setValue(txn, eventKey(e.CampaignID, e.ID), e)
	})
}

func (s *CampaignStore) DeleteEvent(campaignID, eventID uuid.UUID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := eventKey(campaignID, eventID)
		found, err := exists(txn, key)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s: %w", key, errors.ErrNotFound)
		}
		return txn.Delete([]byte(key))
	})
}

// Snapshot reads the campaign, its characters and its roster in a single read
// transaction, so the three parts describe the same instant.
// A missing roster is returned empty.
func (s *CampaignStore) Snapshot(campaignID uuid.UUID) (domain.Snapshot, error) {
	var snapshot domain.Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		campaign, err := getValue[domain.Campaign](txn, campaignKey(campaignID))
		if err != nil {
			return err
		}
		characters, err := listCharacters(txn, campaignID)
		if err != nil {
			return err
		}
		roster, err := getValue[domain.Roster](txn, rosterKey(campaignID))
		switch {
		case errors.Is(err, errors.ErrNotFound):
			roster = domain.EmptyRoster(campaignID)
		case err != nil:
			return err
		}
		if roster.CharacterIDs == nil {
			roster.CharacterIDs = []uuid.UUID{}
		}
		snapshot = domain.Snapshot{
			Campaign:   campaign,
			Characters: lo.Ternary(characters == nil, []domain.Character{}, characters),
			Roster:     roster,
		}
		return nil
	})
	return snapshot, err
}

// listCharacters returns the campaign characters ordered by name.
func listCharacters(txn *badger.Txn, campaignID uuid.UUID) ([]domain.Character, error) {
	characters, err := scanPrefix[domain.Character](txn, scoped(characterPrefix, campaignID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(characters, func(i, j int) bool {
		if characters[i].Name == characters[j].Name {
			return characters[i].ID.String() < characters[j].ID.String()
		}
		return characters[i].Name < characters[j].Name
	})
	return characters, nil
}
