package stats

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	InitialRankingPoints = 1200
	RankingFloor         = 800

	WinPoints   = 25
	LossPenalty = 10

	AchievementHabitue  = "habitue"
	AchievementVeteran  = "veteran"
	AchievementChampion = "champion"

	HabitueMinutes  = 600
	VeteranMatches  = 10
	ChampionWinRate = 0.6
)

// PlayerStats is the per-user ranking row. Rows are created lazily on first
// reference with the fixed initial values.
type PlayerStats struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"userId"`
	MatchesPlayed        int       `json:"matchesPlayed"`
	Wins                 int       `json:"wins"`
	Losses               int       `json:"losses"`
	TotalPlayTimeMinutes int       `json:"totalPlayTimeMinutes"`
	RankingPoints        int       `json:"rankingPoints"`
	Streak               int       `json:"streak"`
	Achievements         []string  `json:"achievements"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func NewPlayerStats(userID uuid.UUID, now time.Time) PlayerStats {
	return PlayerStats{
		ID:            uuid.New(),
		UserID:        userID,
		RankingPoints: InitialRankingPoints,
		Achievements:  []string{},
		UpdatedAt:     now,
	}
}

// ApplyReservation credits played court time: the full duration into total
// play time and one ranking point per half hour. Grants habitue once the
// total crosses the threshold.
func (s *PlayerStats) ApplyReservation(durationMinutes int) {
	s.TotalPlayTimeMinutes += durationMinutes
	s.RankingPoints += int(math.Round(float64(durationMinutes) / 30))
	if s.TotalPlayTimeMinutes >= HabitueMinutes {
		s.Grant(AchievementHabitue)
	}
}

// ApplyMatchResult settles one completed match for this player. Losses
// never push ranking points below the floor; a loss resets the win streak.
// Veteran is evaluated before champion, both on post-update counters.
func (s *PlayerStats) ApplyMatchResult(won bool) {
	s.MatchesPlayed++
	if won {
		s.Wins++
		s.RankingPoints += WinPoints
		s.Streak++
	} else {
		s.Losses++
		s.RankingPoints -= LossPenalty
		if s.RankingPoints < RankingFloor {
			s.RankingPoints = RankingFloor
		}
		s.Streak = 0
	}

	if s.MatchesPlayed >= VeteranMatches {
		s.Grant(AchievementVeteran)
	}
	if s.WinRate() >= ChampionWinRate {
		s.Grant(AchievementChampion)
	}
}

func (s *PlayerStats) WinRate() float64 {
	if s.MatchesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.MatchesPlayed)
}

// Grant adds an achievement key at most once.
func (s *PlayerStats) Grant(key string) {
	if s.HasAchievement(key) {
		return
	}
	s.Achievements = append(s.Achievements, key)
}

func (s *PlayerStats) HasAchievement(key string) bool {
	for _, a := range s.Achievements {
		if a == key {
			return true
		}
	}
	return false
}
