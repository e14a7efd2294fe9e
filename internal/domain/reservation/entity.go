package reservation

import (
	"time"

	"github.com/google/uuid"
)

const (
	// Durations outside this range are clamped, not rejected. Documented
	// product decision carried over from the booking desk workflow.
	MinDurationMinutes = 60
	MaxDurationMinutes = 180

	// DateLayout is the calendar-day format reservations are keyed by.
	DateLayout = "2006-01-02"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

// Reservation is a confirmed booking of one court for a contiguous block of
// half-hour slots on a single calendar day.
type Reservation struct {
	ID              uuid.UUID   `json:"id"`
	OwnerID         uuid.UUID   `json:"ownerId"`
	Date            string      `json:"date"`
	StartHour       float64     `json:"startHour"`
	DurationMinutes int         `json:"durationMinutes"`
	CourtNumber     int         `json:"courtNumber"`
	Participants    []uuid.UUID `json:"participants"`
	SplitPayment    bool        `json:"splitPayment"`
	Price           float64     `json:"price"`
	Status          Status      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	StartDateTime   time.Time   `json:"startDateTime"`
}

func (r Reservation) Interval() Interval {
	return NewInterval(r.StartHour, r.DurationMinutes)
}

func (r Reservation) IsLive() bool {
	return r.Status == StatusConfirmed
}

// Participant is the per-user share row attached to a reservation. Share is
// the full price unless the booking is split, in which case it is the price
// divided by the participant count, rounded to cents.
type Participant struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	UserID        uuid.UUID `json:"userId"`
	Share         float64   `json:"share"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ClampDuration forces a requested duration into the bookable range.
func ClampDuration(minutes int) int {
	if minutes == 0 {
		minutes = MinDurationMinutes
	}
	return clamp(minutes, MinDurationMinutes, MaxDurationMinutes)
}

// ClampCourt forces a requested court number into [1, courtCount].
func ClampCourt(court, courtCount int) int {
	if court == 0 {
		court = 1
	}
	return clamp(court, 1, courtCount)
}

// ParseDate validates a calendar-day string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// StartInstant resolves the absolute UTC instant a booking begins at.
func StartInstant(day time.Time, startHour float64) time.Time {
	minutes := 0
	if startHour != float64(int(startHour)) {
		minutes = 30
	}
	return time.Date(day.Year(), day.Month(), day.Day(), int(startHour), minutes, 0, 0, time.UTC)
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
