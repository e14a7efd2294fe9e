//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"padel-club-api/internal/domain/match"
	"padel-club-api/internal/domain/stats"
	"padel-club-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchUseCase(f *fixture) usecase.MatchUseCase {
	return usecase.NewMatchUseCase(f.store, f.statsUpdater, f.notifier, f.clock)
}

func TestCreateMatch(t *testing.T) {
	t.Run("creator becomes the first confirmed player", func(t *testing.T) {
		f := newFixture(t)
		uc := newMatchUseCase(f)
		creator := f.addUser(t, "Léa", "lea@example.com")

		created, err := uc.Create(context.Background(), creator, usecase.CreateMatchParams{
			Title:     "Match du soir",
			MatchDate: "2025-06-05",
			IsPublic:  true,
		})
		require.NoError(t, err)

		assert.Equal(t, match.StatusScheduled, created.Status)
		assert.Equal(t, match.DefaultStartHour, created.StartHour)
		assert.Equal(t, match.DefaultDurationMinutes, created.DurationMinutes)
		assert.Equal(t, match.DefaultMaxPlayers, created.MaxPlayers)

		doc := f.store.Read()
		players := doc.PlayersOf(created.ID)
		require.Len(t, players, 1)
		assert.Equal(t, creator, players[0].UserID)
		assert.Equal(t, match.PlayerStatusConfirmed, players[0].Status)
	})

	t.Run("clamps max players", func(t *testing.T) {
		f := newFixture(t)
		uc := newMatchUseCase(f)
		creator := f.addUser(t, "Léa", "lea@example.com")

		created, err := uc.Create(context.Background(), creator, usecase.CreateMatchParams{
			Title:      "Petit comité",
			MatchDate:  "2025-06-05",
			IsPublic:   true,
			MaxPlayers: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, match.MinPlayers, created.MaxPlayers)
	})

	t.Run("requires title and a parseable date", func(t *testing.T) {
		f := newFixture(t)
		uc := newMatchUseCase(f)
		creator := f.addUser(t, "Léa", "lea@example.com")

		_, err := uc.Create(context.Background(), creator, usecase.CreateMatchParams{MatchDate: "2025-06-05"})
		require.ErrorIs(t, err, usecase.ErrInvalidMatch)

		_, err = uc.Create(context.Background(), creator, usecase.CreateMatchParams{Title: "x", MatchDate: "demain"})
		require.ErrorIs(t, err, usecase.ErrInvalidMatch)
	})
}

func TestJoinMatch(t *testing.T) {
	f := newFixture(t)
	uc := newMatchUseCase(f)
	creator := f.addUser(t, "Léa", "lea@example.com")
	joiner := f.addUser(t, "Hugo", "hugo@example.com")

	created, err := uc.Create(context.Background(), creator, usecase.CreateMatchParams{
		Title:      "Match du soir",
		MatchDate:  "2025-06-05",
		IsPublic:   true,
		MaxPlayers: 2,
	})
	require.NoError(t, err)

	t.Run("unknown match", func(t *testing.T) {
		_, err := uc.Join(context.Background(), joiner, uuid.New())
		require.ErrorIs(t, err, usecase.ErrMatchNotFound)
	})

	t.Run("join notifies the creator", func(t *testing.T) {
		alreadyJoined, err := uc.Join(context.Background(), joiner, created.ID)
		require.NoError(t, err)
		assert.False(t, alreadyJoined)

		doc := f.store.Read()
		require.Len(t, doc.Notifications, 1)
		assert.Equal(t, creator, doc.Notifications[0].UserID)
	})

	t.Run("joining twice is a success no-op", func(t *testing.T) {
		alreadyJoined, err := uc.Join(context.Background(), joiner, created.ID)
		require.NoError(t, err)
		assert.True(t, alreadyJoined)

		doc := f.store.Read()
		assert.Len(t, doc.PlayersOf(created.ID), 2)
		// no second notification
		assert.Len(t, doc.Notifications, 1)
	})

	t.Run("full match rejects new players", func(t *testing.T) {
		third := f.addUser(t, "Nina", "nina@example.com")
		_, err := uc.Join(context.Background(), third, created.ID)
		require.ErrorIs(t, err, usecase.ErrMatchFull)
	})
}

func TestJoinPrivateMatch(t *testing.T) {
	f := newFixture(t)
	uc := newMatchUseCase(f)
	creator := f.addUser(t, "Léa", "lea@example.com")
	joiner := f.addUser(t, "Hugo", "hugo@example.com")

	created, err := uc.Create(context.Background(), creator, usecase.CreateMatchParams{
		Title:     "Entre amis",
		MatchDate: "2025-06-05",
		IsPublic:  false,
	})
	require.NoError(t, err)

	_, err = uc.Join(context.Background(), joiner, created.ID)
	require.ErrorIs(t, err, usecase.ErrMatchPrivate)
}

func TestLeaveMatch(t *testing.T) {
	f := newFixture(t)
	uc := newMatchUseCase(f)
	creator := f.addUser(t, "Léa", "lea@example.com")
	joiner := f.addUser(t, "Hugo", "hugo@example.com")

	created, err := uc.Create(context.Background(), creator, usecase.CreateMatchParams{
		Title: "Match du soir", MatchDate: "2025-06-05", IsPublic: true,
	})
	require.NoError(t, err)
	_, err = uc.Join(context.Background(), joiner, created.ID)
	require.NoError(t, err)

	t.Run("the creator cannot leave", func(t *testing.T) {
		require.NoError(t, uc.Leave(context.Background(), creator, created.ID))
		assert.Len(t, f.store.Read().PlayersOf(created.ID), 2)
	})

	t.Run("a player leaves", func(t *testing.T) {
		require.NoError(t, uc.Leave(context.Background(), joiner, created.ID))

		players := f.store.Read().PlayersOf(created.ID)
		require.Len(t, players, 1)
		assert.Equal(t, creator, players[0].UserID)
	})
}

func TestMatchMessages(t *testing.T) {
	f := newFixture(t)
	uc := newMatchUseCase(f)
	creator := f.addUser(t, "Léa", "lea@example.com")
	stranger := f.addUser(t, "Hugo", "hugo@example.com")

	created, err := uc.Create(context.Background(), creator, usecase.CreateMatchParams{
		Title: "Match du soir", MatchDate: "2025-06-05", IsPublic: true,
	})
	require.NoError(t, err)

	t.Run("only players may post", func(t *testing.T) {
		_, err := uc.PostMessage(context.Background(), stranger, created.ID, "On est là ?")
		require.ErrorIs(t, err, usecase.ErrNotMatchPlayer)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		_, err := uc.PostMessage(context.Background(), creator, created.ID, "   ")
		require.ErrorIs(t, err, usecase.ErrEmptyMessage)
	})

	t.Run("a player posts and owns the message", func(t *testing.T) {
		posted, err := uc.PostMessage(context.Background(), creator, created.ID, "Rendez-vous à 18h")
		require.NoError(t, err)
		assert.Equal(t, "Léa", posted.SenderName)

		views, err := uc.ListMessages(context.Background(), creator, created.ID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.True(t, views[0].CanDelete)

		asStranger, err := uc.ListMessages(context.Background(), stranger, created.ID)
		require.NoError(t, err)
		assert.False(t, asStranger[0].CanDelete)
	})
}

func TestPublishResult(t *testing.T) {
	f := newFixture(t)
	uc := newMatchUseCase(f)
	creator := f.addUser(t, "Léa", "lea@example.com")
	joiner := f.addUser(t, "Hugo", "hugo@example.com")

	created, err := uc.Create(context.Background(), creator, usecase.CreateMatchParams{
		Title: "Match du soir", MatchDate: "2025-06-05", IsPublic: true,
	})
	require.NoError(t, err)
	_, err = uc.Join(context.Background(), joiner, created.ID)
	require.NoError(t, err)

	t.Run("only the creator may publish", func(t *testing.T) {
		err := uc.PublishResult(context.Background(), joiner, created.ID, []uuid.UUID{joiner})
		require.ErrorIs(t, err, usecase.ErrNotMatchCreator)
	})

	t.Run("publish settles stats for all players", func(t *testing.T) {
		require.NoError(t, uc.PublishResult(context.Background(), creator, created.ID, []uuid.UUID{creator}))

		doc := f.store.Read()
		entry := doc.MatchByID(created.ID)
		require.NotNil(t, entry)
		assert.Equal(t, match.StatusCompleted, entry.Status)
		require.NotNil(t, entry.Result)
		require.NotNil(t, entry.CompletedAt)

		winner := doc.StatsOf(creator)
		require.NotNil(t, winner)
		assert.Equal(t, stats.InitialRankingPoints+stats.WinPoints, winner.RankingPoints)
		assert.Equal(t, 1, winner.Wins)
		assert.Equal(t, 1, winner.Streak)

		loser := doc.StatsOf(joiner)
		require.NotNil(t, loser)
		assert.Equal(t, stats.InitialRankingPoints-stats.LossPenalty, loser.RankingPoints)
		assert.Equal(t, 1, loser.Losses)
	})

	t.Run("a completed match admits no second result and no joins", func(t *testing.T) {
		err := uc.PublishResult(context.Background(), creator, created.ID, []uuid.UUID{joiner})
		require.ErrorIs(t, err, usecase.ErrMatchCompleted)

		third := f.addUser(t, "Nina", "nina@example.com")
		_, err = uc.Join(context.Background(), third, created.ID)
		require.ErrorIs(t, err, usecase.ErrMatchCompleted)
	})
}
