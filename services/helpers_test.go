package services

import (
	"log/slog"
	"testing"
	"time"

	"campaign-hub/auth"
	"campaign-hub/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	log       *slog.Logger
	store     *storage.CampaignStore
	tokens    *auth.TokenIssuer
	gate      *AuthService
	ownerID   uuid.UUID
	created   CreatedCampaign
	adminCred auth.Credential
}

// newFixture opens a store on a temp dir and creates one campaign owned by a fresh user.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := storage.NewCampaignStore(db, log)
	tokens := auth.NewTokenIssuer(testSecret, time.Hour)
	gate := NewAuthService(log, storage.NewUserRepository(db), store, tokens, auth.NewCampaignValidator(tokens))

	f := &fixture{log: log, store: store, tokens: tokens, gate: gate, ownerID: uuid.New()}
	svc := NewCampaignService(log, store, gate, nil)
	f.created, err = svc.CreateCampaign(t.Context(), f.ownerID.String(), auth.CampaignRequest{Name: "Curse of Strahd"})
	require.NoError(t, err)
	f.adminCred = auth.Credential{AdminToken: f.created.AdminToken}
	return f
}

func (f *fixture) campaignID() uuid.UUID {
	return f.created.Campaign.ID
}
