package usecase

import (
	"context"
	"sort"
	"time"

	"padel-club-api/internal/domain/payment"
	"padel-club-api/internal/domain/reservation"
	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/store"

	"github.com/google/uuid"
)

type CourtOccupancy struct {
	CourtID      int    `json:"courtId"`
	CourtName    string `json:"courtName"`
	TotalMinutes int    `json:"totalMinutes"`
}

type TopPlayer struct {
	UserID        uuid.UUID `json:"userId"`
	Name          string    `json:"name"`
	RankingPoints int       `json:"rankingPoints"`
	MatchesPlayed int       `json:"matchesPlayed"`
	WinRate       int       `json:"winRate"`
}

type DashboardMetrics struct {
	GeneratedAt          time.Time        `json:"generatedAt"`
	ReservationsThisWeek int              `json:"reservationsThisWeek"`
	TotalRevenue         float64          `json:"totalRevenue"`
	OccupancyByCourt     []CourtOccupancy `json:"occupancyByCourt"`
	TopPlayers           []TopPlayer      `json:"topPlayers"`
	UpcomingMatches      int              `json:"upcomingMatches"`
	MembersCount         int              `json:"membersCount"`
}

// AdminReservationView enriches a reservation with resolved member names
// for the back office.
type AdminReservationView struct {
	reservation.Reservation
	OwnerName        string   `json:"ownerName"`
	ParticipantNames []string `json:"participants"`
}

type MemberView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Level         string    `json:"level"`
	MatchesPlayed int       `json:"matchesPlayed"`
	RankingPoints int       `json:"rankingPoints"`
	JoinedAt      time.Time `json:"joinedAt"`
	IsAdmin       bool      `json:"isAdmin"`
}

type AdminUseCase interface {
	Dashboard(ctx context.Context) (*DashboardMetrics, error)
	Reservations(ctx context.Context, date string) ([]AdminReservationView, error)
	Transactions(ctx context.Context) ([]payment.Transaction, error)
	Members(ctx context.Context) ([]MemberView, error)
}

type adminUseCaseImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewAdminUseCase(st *store.Store, clk clock.Clock) AdminUseCase {
	return &adminUseCaseImpl{store: st, clock: clk}
}

func (a *adminUseCaseImpl) Dashboard(_ context.Context) (*DashboardMetrics, error) {
	doc := a.store.Read()
	now := a.clock.Now()

	reservationsThisWeek := 0
	for _, res := range doc.Reservations {
		age := now.Sub(res.StartDateTime)
		if age >= 0 && age <= 7*24*time.Hour {
			reservationsThisWeek++
		}
	}

	totalRevenue := 0.0
	for _, tx := range doc.Transactions {
		if tx.Status == payment.StatusCaptured {
			totalRevenue += tx.Amount
		}
	}

	occupancy := make([]CourtOccupancy, 0, len(doc.Settings.Courts))
	for _, court := range doc.Settings.Courts {
		minutes := 0
		for _, res := range doc.Reservations {
			if res.CourtNumber == court.ID {
				minutes += res.DurationMinutes
			}
		}
		occupancy = append(occupancy, CourtOccupancy{
			CourtID:      court.ID,
			CourtName:    court.Name,
			TotalMinutes: minutes,
		})
	}

	rows := make([]TopPlayer, 0, len(doc.PlayerStats))
	for _, row := range doc.PlayerStats {
		name := "Joueur inconnu"
		if u := doc.UserByID(row.UserID); u != nil {
			name = u.Name
		}
		rows = append(rows, TopPlayer{
			UserID:        row.UserID,
			Name:          name,
			RankingPoints: row.RankingPoints,
			MatchesPlayed: row.MatchesPlayed,
			WinRate:       winRatePercent(&row),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].RankingPoints > rows[j].RankingPoints
	})
	if len(rows) > 5 {
		rows = rows[:5]
	}

	// A match counts as upcoming for the whole of its calendar day (UTC).
	upcoming := 0
	for _, entry := range doc.Matches {
		if day, err := reservation.ParseDate(entry.MatchDate); err == nil && !day.Before(now.Truncate(24*time.Hour)) {
			upcoming++
		}
	}

	return &DashboardMetrics{
		GeneratedAt:          now,
		ReservationsThisWeek: reservationsThisWeek,
		TotalRevenue:         totalRevenue,
		OccupancyByCourt:     occupancy,
		TopPlayers:           rows,
		UpcomingMatches:      upcoming,
		MembersCount:         len(doc.Users),
	}, nil
}

func (a *adminUseCaseImpl) Reservations(_ context.Context, date string) ([]AdminReservationView, error) {
	doc := a.store.Read()

	views := make([]AdminReservationView, 0, len(doc.Reservations))
	for _, res := range doc.Reservations {
		if date != "" && res.Date != date {
			continue
		}
		view := AdminReservationView{Reservation: res, OwnerName: "Client"}
		if owner := doc.UserByID(res.OwnerID); owner != nil {
			view.OwnerName = owner.Name
		}
		for _, participantID := range res.Participants {
			name := "Joueur"
			if u := doc.UserByID(participantID); u != nil {
				name = u.Name
			}
			view.ParticipantNames = append(view.ParticipantNames, name)
		}
		views = append(views, view)
	}
	return views, nil
}

func (a *adminUseCaseImpl) Transactions(_ context.Context) ([]payment.Transaction, error) {
	doc := a.store.Read()
	return doc.Transactions, nil
}

func (a *adminUseCaseImpl) Members(_ context.Context) ([]MemberView, error) {
	doc := a.store.Read()

	members := make([]MemberView, 0, len(doc.Users))
	for _, member := range doc.Users {
		view := MemberView{
			ID:       member.ID,
			Name:     member.Name,
			Email:    member.Email,
			Level:    member.Level,
			JoinedAt: member.CreatedAt,
			IsAdmin:  member.IsAdmin,
		}
		if row := doc.StatsOf(member.ID); row != nil {
			view.MatchesPlayed = row.MatchesPlayed
			view.RankingPoints = row.RankingPoints
		}
		members = append(members, view)
	}
	return members, nil
}
