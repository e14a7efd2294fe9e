//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"padel-club-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDashboard(t *testing.T) {
	f := newFixture(t)
	adminUC := usecase.NewAdminUseCase(f.store, f.clock)
	resUC := newReservationUseCase(f)
	matchUC := newMatchUseCase(f)

	lea := f.addUser(t, "Léa", "lea@example.com")
	hugo := f.addUser(t, "Hugo", "hugo@example.com")

	// one reservation in the trailing week, one in the future
	_, err := resUC.Create(context.Background(), lea, usecase.CreateReservationParams{
		Date: "2025-05-30", StartHour: 17, DurationMinutes: 60, CourtNumber: 1,
	})
	require.NoError(t, err)
	_, err = resUC.Create(context.Background(), hugo, usecase.CreateReservationParams{
		Date: "2025-06-10", StartHour: 8, DurationMinutes: 90, CourtNumber: 2,
	})
	require.NoError(t, err)

	created, err := matchUC.Create(context.Background(), lea, usecase.CreateMatchParams{
		Title: "Match du soir", MatchDate: "2025-06-05", IsPublic: true,
	})
	require.NoError(t, err)
	_, err = matchUC.Join(context.Background(), hugo, created.ID)
	require.NoError(t, err)
	require.NoError(t, matchUC.PublishResult(context.Background(), lea, created.ID, []uuid.UUID{lea}))

	metrics, err := adminUC.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.ReservationsThisWeek)
	assert.Equal(t, 32.00+36.00, metrics.TotalRevenue)
	assert.Equal(t, 1, metrics.UpcomingMatches)
	// admin + two members
	assert.Equal(t, 3, metrics.MembersCount)

	require.Len(t, metrics.OccupancyByCourt, 4)
	assert.Equal(t, 60, metrics.OccupancyByCourt[0].TotalMinutes)
	assert.Equal(t, 90, metrics.OccupancyByCourt[1].TotalMinutes)
	assert.Zero(t, metrics.OccupancyByCourt[2].TotalMinutes)

	require.NotEmpty(t, metrics.TopPlayers)
	// the match winner leads the board
	assert.Equal(t, lea, metrics.TopPlayers[0].UserID)
	assert.Equal(t, 100, metrics.TopPlayers[0].WinRate)
}

func TestAdminReservations(t *testing.T) {
	f := newFixture(t)
	adminUC := usecase.NewAdminUseCase(f.store, f.clock)
	resUC := newReservationUseCase(f)

	lea := f.addUser(t, "Léa", "lea@example.com")
	f.addUser(t, "Hugo", "hugo@example.com")

	_, err := resUC.Create(context.Background(), lea, usecase.CreateReservationParams{
		Date:      "2025-06-02",
		StartHour: 10, DurationMinutes: 60, CourtNumber: 1,
		Invitees: []string{"hugo@example.com"},
	})
	require.NoError(t, err)

	views, err := adminUC.Reservations(context.Background(), "2025-06-02")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Léa", views[0].OwnerName)
	assert.Equal(t, []string{"Léa", "Hugo"}, views[0].ParticipantNames)

	empty, err := adminUC.Reservations(context.Background(), "2025-06-03")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAdminMembers(t *testing.T) {
	f := newFixture(t)
	adminUC := usecase.NewAdminUseCase(f.store, f.clock)
	f.addUser(t, "Léa", "lea@example.com")

	members, err := adminUC.Members(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)

	byName := map[string]bool{}
	for _, m := range members {
		byName[m.Name] = m.IsAdmin
	}
	assert.True(t, byName["Administrateur Club"])
	assert.False(t, byName["Léa"])
}
