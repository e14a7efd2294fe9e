//go:build unit

package usecase_test

import (
	"path/filepath"
	"testing"
	"time"

	"padel-club-api/internal/domain/user"
	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/pkg/config"
	"padel-club-api/internal/store"
	"padel-club-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixture wires usecases against a real file-backed store in a temp dir, so
// tests exercise the same commit path production runs.
type fixture struct {
	store        *store.Store
	clock        *clock.MockClock
	statsUpdater usecase.StatsUpdater
	notifier     usecase.Notifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cfg := config.StoreConfig{Path: filepath.Join(t.TempDir(), "db.json")}
	club := config.ClubConfig{
		AdminEmail:    "admin@padelparadise.club",
		AdminName:     "Administrateur Club",
		AdminPassword: "ClubPadel!2025",
	}

	s, err := store.New(cfg, club, clk)
	require.NoError(t, err)

	return &fixture{
		store:        s,
		clock:        clk,
		statsUpdater: usecase.NewStatsUpdater(s, clk),
		notifier:     usecase.NewNotifier(s, clk),
	}
}

func (f *fixture) addUser(t *testing.T, name, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	err := f.store.Mutate(func(doc *store.Document) error {
		doc.Users = append(doc.Users, user.User{
			ID:           id,
			Email:        email,
			Name:         name,
			PasswordHash: "x",
			Level:        user.LevelIntermediate,
			CreatedAt:    f.clock.Now(),
			UpdatedAt:    f.clock.Now(),
		})
		return nil
	})
	require.NoError(t, err)
	return id
}
