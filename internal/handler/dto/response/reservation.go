package response

import (
	"time"

	"padel-club-api/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              uuid.UUID          `json:"id"`
	OwnerID         uuid.UUID          `json:"ownerId"`
	Date            string             `json:"date"`
	StartHour       float64            `json:"startHour"`
	DurationMinutes int                `json:"durationMinutes"`
	CourtNumber     int                `json:"courtNumber"`
	Participants    []uuid.UUID        `json:"participants"`
	SplitPayment    bool               `json:"splitPayment"`
	Price           float64            `json:"price"`
	Status          reservation.Status `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	StartDateTime   time.Time          `json:"startDateTime"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, res)
	return &resp
}
