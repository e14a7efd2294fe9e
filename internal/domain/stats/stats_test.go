//go:build unit

package stats_test

import (
	"testing"
	"time"

	"padel-club-api/internal/domain/stats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newRow(t *testing.T) stats.PlayerStats {
	t.Helper()
	return stats.NewPlayerStats(uuid.New(), time.Now())
}

func TestNewPlayerStats(t *testing.T) {
	row := newRow(t)

	assert.Equal(t, stats.InitialRankingPoints, row.RankingPoints)
	assert.Zero(t, row.MatchesPlayed)
	assert.Empty(t, row.Achievements)
	assert.Zero(t, row.WinRate())
}

func TestApplyReservation(t *testing.T) {
	t.Run("credits time and half-hour points", func(t *testing.T) {
		row := newRow(t)

		row.ApplyReservation(90)

		assert.Equal(t, 90, row.TotalPlayTimeMinutes)
		assert.Equal(t, stats.InitialRankingPoints+3, row.RankingPoints)
		assert.False(t, row.HasAchievement(stats.AchievementHabitue))
	})

	t.Run("habitue at six hundred minutes", func(t *testing.T) {
		row := newRow(t)

		for i := 0; i < 5; i++ {
			row.ApplyReservation(120)
		}

		assert.Equal(t, 600, row.TotalPlayTimeMinutes)
		assert.True(t, row.HasAchievement(stats.AchievementHabitue))

		// granted at most once
		row.ApplyReservation(60)
		assert.Equal(t, []string{stats.AchievementHabitue}, row.Achievements)
	})
}

func TestApplyMatchResult(t *testing.T) {
	t.Run("win", func(t *testing.T) {
		row := newRow(t)

		row.ApplyMatchResult(true)

		assert.Equal(t, 1, row.MatchesPlayed)
		assert.Equal(t, 1, row.Wins)
		assert.Equal(t, stats.InitialRankingPoints+stats.WinPoints, row.RankingPoints)
		assert.Equal(t, 1, row.Streak)
	})

	t.Run("loss resets streak", func(t *testing.T) {
		row := newRow(t)
		row.ApplyMatchResult(true)
		row.ApplyMatchResult(true)

		row.ApplyMatchResult(false)

		assert.Equal(t, 2, row.Wins)
		assert.Equal(t, 1, row.Losses)
		assert.Zero(t, row.Streak)
		assert.Equal(t, stats.InitialRankingPoints+2*stats.WinPoints-stats.LossPenalty, row.RankingPoints)
	})

	t.Run("ranking never drops below the floor", func(t *testing.T) {
		row := newRow(t)
		row.RankingPoints = stats.RankingFloor + 5

		row.ApplyMatchResult(false)
		assert.Equal(t, stats.RankingFloor, row.RankingPoints)

		row.ApplyMatchResult(false)
		assert.Equal(t, stats.RankingFloor, row.RankingPoints)
	})

	t.Run("veteran at ten matches", func(t *testing.T) {
		row := newRow(t)

		for i := 0; i < 9; i++ {
			row.ApplyMatchResult(false)
		}
		assert.False(t, row.HasAchievement(stats.AchievementVeteran))

		row.ApplyMatchResult(false)
		assert.True(t, row.HasAchievement(stats.AchievementVeteran))
	})

	t.Run("champion at sixty percent win rate", func(t *testing.T) {
		row := newRow(t)

		row.ApplyMatchResult(true)
		assert.True(t, row.HasAchievement(stats.AchievementChampion))
	})

	t.Run("no champion below the rate", func(t *testing.T) {
		row := newRow(t)

		row.ApplyMatchResult(true)
		row.Achievements = nil
		row.ApplyMatchResult(false)

		assert.InDelta(t, 0.5, row.WinRate(), 1e-9)
		assert.False(t, row.HasAchievement(stats.AchievementChampion))
	})
}
