package usecase

import (
	"log/slog"

	"padel-club-api/internal/domain/match"
	"padel-club-api/internal/domain/reservation"
	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/store"
)

// StatsUpdater derives ranking points, records and achievements from
// committed reservations and match results. It runs after the triggering
// commit returns; its failure is independent and non-fatal to the booking.
type StatsUpdater interface {
	AfterReservation(res reservation.Reservation)
	AfterMatchResult(players []match.Player, result match.Result)
}

type statsUpdaterImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewStatsUpdater(st *store.Store, clk clock.Clock) StatsUpdater {
	return &statsUpdaterImpl{store: st, clock: clk}
}

func (s *statsUpdaterImpl) AfterReservation(res reservation.Reservation) {
	err := s.store.Mutate(func(doc *store.Document) error {
		now := s.clock.Now()
		for _, participantID := range res.Participants {
			row := doc.EnsureStats(participantID, now)
			row.ApplyReservation(res.DurationMinutes)
			row.UpdatedAt = now
		}
		return nil
	})
	if err != nil {
		slog.Warn("failed to update stats after reservation", "reservation_id", res.ID, "error", err)
	}
}

func (s *statsUpdaterImpl) AfterMatchResult(players []match.Player, result match.Result) {
	err := s.store.Mutate(func(doc *store.Document) error {
		now := s.clock.Now()
		for _, player := range players {
			row := doc.EnsureStats(player.UserID, now)
			row.ApplyMatchResult(result.IsWinner(player.UserID))
			row.UpdatedAt = now
		}
		return nil
	})
	if err != nil {
		slog.Warn("failed to update stats after match result", "error", err)
	}
}
