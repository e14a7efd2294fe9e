//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"padel-club-api/internal/pkg/jwt"
	"padel-club-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUseCase(f *fixture) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(f.store, jwt.NewService("test-secret", time.Hour), f.clock)
}

func TestRegister(t *testing.T) {
	t.Run("creates the account with a lazily seeded stats row", func(t *testing.T) {
		f := newFixture(t)
		uc := newAuthUseCase(f)

		account, token, err := uc.Register(context.Background(), usecase.RegisterParams{
			Name:     "Léa",
			Email:    "Lea@Example.com",
			Password: "padel1234",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		assert.Equal(t, "lea@example.com", account.Email)
		assert.False(t, account.IsAdmin)
		assert.NotEqual(t, "padel1234", account.PasswordHash)

		doc := f.store.Read()
		row := doc.StatsOf(account.ID)
		require.NotNil(t, row)
		assert.Equal(t, 1200, row.RankingPoints)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)
		uc := newAuthUseCase(f)

		_, _, err := uc.Register(context.Background(), usecase.RegisterParams{
			Name: "Léa", Email: "pas-un-email", Password: "padel1234",
		})
		require.ErrorIs(t, err, usecase.ErrInvalidEmail)

		_, _, err = uc.Register(context.Background(), usecase.RegisterParams{
			Name: "Léa", Email: "lea@example.com", Password: "court",
		})
		require.ErrorIs(t, err, usecase.ErrWeakPassword)
	})

	t.Run("duplicate email regardless of case", func(t *testing.T) {
		f := newFixture(t)
		uc := newAuthUseCase(f)

		_, _, err := uc.Register(context.Background(), usecase.RegisterParams{
			Name: "Léa", Email: "lea@example.com", Password: "padel1234",
		})
		require.NoError(t, err)

		_, _, err = uc.Register(context.Background(), usecase.RegisterParams{
			Name: "Autre", Email: "LEA@EXAMPLE.COM", Password: "padel1234",
		})
		require.ErrorIs(t, err, usecase.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	uc := newAuthUseCase(f)

	_, _, err := uc.Register(context.Background(), usecase.RegisterParams{
		Name: "Léa", Email: "lea@example.com", Password: "padel1234",
	})
	require.NoError(t, err)

	t.Run("valid credentials return a token", func(t *testing.T) {
		account, token, err := uc.Login(context.Background(), "lea@example.com", "padel1234")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "Léa", account.Name)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, _, err := uc.Login(context.Background(), "lea@example.com", "mauvais-mdp")
		require.ErrorIs(t, err, usecase.ErrInvalidCredentials)

		_, _, err = uc.Login(context.Background(), "inconnu@example.com", "padel1234")
		require.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	uc := newAuthUseCase(f)
	userID := f.addUser(t, "Léa", "lea@example.com")

	err := uc.UpdateProfile(context.Background(), userID, usecase.UpdateProfileParams{
		Name: "Léa M.",
		Bio:  "Toujours partante pour un match.",
	})
	require.NoError(t, err)

	account, err := uc.GetCurrentUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Léa M.", account.Name)
	assert.Equal(t, "Toujours partante pour un match.", account.Bio)
	// blank fields keep their previous value
	assert.Equal(t, "Intermédiaire", account.Level)
}

func TestMyOverview(t *testing.T) {
	f := newFixture(t)
	authUC := newAuthUseCase(f)
	resUC := newReservationUseCase(f)
	matchUC := newMatchUseCase(f)

	owner := f.addUser(t, "Léa", "lea@example.com")
	other := f.addUser(t, "Hugo", "hugo@example.com")

	_, err := resUC.Create(context.Background(), owner, usecase.CreateReservationParams{
		Date: "2025-06-02", StartHour: 10, DurationMinutes: 60, CourtNumber: 1,
	})
	require.NoError(t, err)

	created, err := matchUC.Create(context.Background(), other, usecase.CreateMatchParams{
		Title: "Match du soir", MatchDate: "2025-06-05", IsPublic: true,
	})
	require.NoError(t, err)
	_, err = matchUC.Join(context.Background(), owner, created.ID)
	require.NoError(t, err)

	overview, err := authUC.MyOverview(context.Background(), owner)
	require.NoError(t, err)

	assert.Len(t, overview.Reservations, 1)
	require.Len(t, overview.Matches, 1)
	assert.Len(t, overview.Matches[0].Participants, 2)
	require.NotNil(t, overview.Stats)
	assert.Equal(t, 60, overview.Stats.TotalPlayTimeMinutes)
}
