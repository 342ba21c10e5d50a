package services

import (
	"context"
	"fmt"
	"log/slog"

	"campaign-hub/contract"
	"campaign-hub/domain"
	"campaign-hub/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// BootstrapService builds the point-in-time state a subscriber receives on join.
type BootstrapService struct {
	log   *slog.Logger
	store contract.CampaignReader
}

func NewBootstrapService(log *slog.Logger, store contract.CampaignReader) *BootstrapService {
	return &BootstrapService{log: log, store: store}
}

// Snapshot reads campaign, characters and roster from one store transaction.
// Roster entries pointing at unknown characters are reported but kept.
func (s *BootstrapService) Snapshot(ctx context.Context, campaignID uuid.UUID) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	snapshot, err := s.store.Snapshot(campaignID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if snapshot.Characters == nil {
		snapshot.Characters = []domain.Character{}
	}
	if snapshot.Roster.CharacterIDs == nil {
		snapshot.Roster.CharacterIDs = []uuid.UUID{}
	}

	known := lo.SliceToMap(snapshot.Characters, func(c domain.Character) (uuid.UUID, struct{}) {
		return c.ID, struct{}{}
	})
	dangling := lo.Filter(snapshot.Roster.CharacterIDs, func(id uuid.UUID, _ int) bool {
		_, ok := known[id]
		return !ok
	})
	if len(dangling) > 0 {
		s.log.Warn("Roster references unknown characters",
			"campaign_id", campaignID,
			"character_ids", dangling,
			"error", fmt.Errorf("%w: %d dangling roster ids", errors.ErrSnapshotInconsistent, len(dangling)),
		)
	}
	return snapshot, nil
}
