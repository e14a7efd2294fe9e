package match

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinDurationMinutes = 60
	MaxDurationMinutes = 180
	MinPlayers         = 2
	MaxPlayers         = 8

	DefaultStartHour       = 18.0
	DefaultDurationMinutes = 90
	DefaultMaxPlayers      = 4
)

type Status string

const (
	// StatusScheduled → StatusCompleted is one-way and terminal.
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// Match is an ad-hoc social game open to club players.
type Match struct {
	ID              uuid.UUID  `json:"id"`
	CreatorID       uuid.UUID  `json:"creatorId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	MatchDate       string     `json:"matchDate"`
	StartHour       float64    `json:"startHour"`
	DurationMinutes int        `json:"durationMinutes"`
	CourtNumber     int        `json:"courtNumber"`
	IsPublic        bool       `json:"isPublic"`
	MinLevel        string     `json:"minLevel"`
	MaxLevel        string     `json:"maxLevel"`
	MaxPlayers      int        `json:"maxPlayers"`
	Status          Status     `json:"status"`
	Result          *Result    `json:"result,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

func (m Match) IsCompleted() bool {
	return m.Status == StatusCompleted
}

// Result records the winning side once a match completes.
type Result struct {
	Winners []uuid.UUID `json:"winners"`
}

func (r Result) IsWinner(userID uuid.UUID) bool {
	for _, id := range r.Winners {
		if id == userID {
			return true
		}
	}
	return false
}

type PlayerStatus string

const (
	PlayerStatusConfirmed PlayerStatus = "confirmed"
)

// Player is the join row between a match and a user. A user joins a match
// at most once.
type Player struct {
	ID       uuid.UUID    `json:"id"`
	MatchID  uuid.UUID    `json:"matchId"`
	UserID   uuid.UUID    `json:"userId"`
	Status   PlayerStatus `json:"status"`
	JoinedAt time.Time    `json:"joinedAt"`
}

// Message is one entry of a match's append-only chat log.
type Message struct {
	ID         uuid.UUID `json:"id"`
	MatchID    uuid.UUID `json:"matchId"`
	SenderID   uuid.UUID `json:"senderId"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ClampDuration(minutes int) int {
	if minutes == 0 {
		minutes = DefaultDurationMinutes
	}
	return clamp(minutes, MinDurationMinutes, MaxDurationMinutes)
}

func ClampMaxPlayers(players int) int {
	if players == 0 {
		players = DefaultMaxPlayers
	}
	return clamp(players, MinPlayers, MaxPlayers)
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
