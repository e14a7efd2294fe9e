package store

import (
	"strings"
	"time"

	"padel-club-api/internal/domain/match"
	"padel-club-api/internal/domain/payment"
	"padel-club-api/internal/domain/reservation"
	"padel-club-api/internal/domain/stats"
	"padel-club-api/internal/domain/user"
	"padel-club-api/internal/pkg/config"
	"padel-club-api/internal/pkg/password"

	"github.com/google/uuid"
)

// Document is the entire club state, mirrored one-to-one onto the persisted
// JSON file. The store owns it exclusively: components never hold a mutable
// reference across a commit boundary.
type Document struct {
	Users                   []user.User               `json:"users"`
	Reservations            []reservation.Reservation `json:"reservations"`
	ReservationParticipants []reservation.Participant `json:"reservationParticipants"`
	Matches                 []match.Match             `json:"matches"`
	MatchPlayers            []match.Player            `json:"matchPlayers"`
	Messages                []match.Message           `json:"messages"`
	PlayerStats             []stats.PlayerStats       `json:"playerStats"`
	Follows                 []Follow                  `json:"follows"`
	Notifications           []Notification            `json:"notifications"`
	Transactions            []payment.Transaction     `json:"transactions"`
	TrainingLibrary         []TrainingItem            `json:"trainingLibrary"`
	Documents               []ClubDocument            `json:"documents"`
	Settings                Settings                  `json:"settings"`
}

type Follow struct {
	ID          uuid.UUID `json:"id"`
	FollowerID  uuid.UUID `json:"followerId"`
	FollowingID uuid.UUID `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	IsRead    bool       `json:"isRead"`
	CreatedAt time.Time  `json:"createdAt"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
}

type TrainingItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type ClubDocument struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type Court struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type OpeningHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Settings struct {
	ClubName     string             `json:"clubName"`
	Timezone     string             `json:"timezone"`
	Courts       []Court            `json:"courts"`
	OpeningHours OpeningHours       `json:"openingHours"`
	Pricing      reservation.Tariff `json:"pricing"`
}

// DefaultDocument seeds the first snapshot: one administrator account, the
// fixed court list and the default tariff.
func DefaultDocument(club config.ClubConfig, now time.Time) (*Document, error) {
	adminHash, err := password.HashPassword(club.AdminPassword)
	if err != nil {
		return nil, err
	}

	adminID := uuid.New()
	return &Document{
		Users: []user.User{
			{
				ID:           adminID,
				Email:        strings.ToLower(club.AdminEmail),
				Name:         club.AdminName,
				PasswordHash: adminHash,
				AvatarURL:    "/assets/images/admin-avatar.svg",
				Level:        user.LevelAdministrator,
				Bio:          "Gestionnaire officiel du club Padel Paradise.",
				IsAdmin:      true,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
		Reservations:            []reservation.Reservation{},
		ReservationParticipants: []reservation.Participant{},
		Matches:                 []match.Match{},
		MatchPlayers:            []match.Player{},
		Messages:                []match.Message{},
		PlayerStats: []stats.PlayerStats{
			stats.NewPlayerStats(adminID, now),
		},
		Follows:         []Follow{},
		Notifications:   []Notification{},
		Transactions:    []payment.Transaction{},
		TrainingLibrary: []TrainingItem{},
		Documents: []ClubDocument{
			{
				ID:        uuid.New(),
				Title:     "Guide Administrateur",
				Type:      "link",
				URL:       "/docs/ADMIN_GUIDE.html",
				CreatedAt: now,
			},
		},
		Settings: Settings{
			ClubName: "Padel Paradise",
			Timezone: "Europe/Paris",
			Courts: []Court{
				{ID: 1, Name: "Terrain 1"},
				{ID: 2, Name: "Terrain 2"},
				{ID: 3, Name: "Terrain 3"},
				{ID: 4, Name: "Terrain 4"},
			},
			OpeningHours: OpeningHours{Start: "08:00", End: "22:00"},
			Pricing:      reservation.DefaultTariff(),
		},
	}, nil
}

// ---------------------------------------------------------------------------
// Lookup helpers. All of these operate on the snapshot they are called on;
// results are only trustworthy inside a commit body.
// ---------------------------------------------------------------------------

func (d *Document) UserByEmail(email string) *user.User {
	needle := strings.ToLower(email)
	for i := range d.Users {
		if strings.ToLower(d.Users[i].Email) == needle {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) UserByID(id uuid.UUID) *user.User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) ReservationByID(id uuid.UUID) *reservation.Reservation {
	for i := range d.Reservations {
		if d.Reservations[i].ID == id {
			return &d.Reservations[i]
		}
	}
	return nil
}

// LiveIntervalsFor collects the occupied intervals for one court and day,
// skipping anything not live.
func (d *Document) LiveIntervalsFor(court int, date string) []reservation.Interval {
	var intervals []reservation.Interval
	for _, res := range d.Reservations {
		if res.CourtNumber != court || res.Date != date || !res.IsLive() {
			continue
		}
		intervals = append(intervals, res.Interval())
	}
	return intervals
}

func (d *Document) MatchByID(id uuid.UUID) *match.Match {
	for i := range d.Matches {
		if d.Matches[i].ID == id {
			return &d.Matches[i]
		}
	}
	return nil
}

func (d *Document) PlayersOf(matchID uuid.UUID) []match.Player {
	var players []match.Player
	for _, p := range d.MatchPlayers {
		if p.MatchID == matchID {
			players = append(players, p)
		}
	}
	return players
}

func (d *Document) IsMatchPlayer(matchID, userID uuid.UUID) bool {
	for _, p := range d.MatchPlayers {
		if p.MatchID == matchID && p.UserID == userID {
			return true
		}
	}
	return false
}

func (d *Document) MessagesOf(matchID uuid.UUID) []match.Message {
	var messages []match.Message
	for _, m := range d.Messages {
		if m.MatchID == matchID {
			messages = append(messages, m)
		}
	}
	return messages
}

func (d *Document) StatsOf(userID uuid.UUID) *stats.PlayerStats {
	for i := range d.PlayerStats {
		if d.PlayerStats[i].UserID == userID {
			return &d.PlayerStats[i]
		}
	}
	return nil
}

// EnsureStats returns the stats row for a user, creating it lazily with the
// fixed initial values.
func (d *Document) EnsureStats(userID uuid.UUID, now time.Time) *stats.PlayerStats {
	if row := d.StatsOf(userID); row != nil {
		return row
	}
	d.PlayerStats = append(d.PlayerStats, stats.NewPlayerStats(userID, now))
	return &d.PlayerStats[len(d.PlayerStats)-1]
}

func (d *Document) IsFollowing(followerID, followingID uuid.UUID) bool {
	for _, f := range d.Follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			return true
		}
	}
	return false
}
