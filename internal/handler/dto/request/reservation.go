package request

import (
	"padel-club-api/internal/usecase"
)

type CreateReservationRequest struct {
	Date            string   `json:"date" binding:"required"`
	StartHour       float64  `json:"startHour"`
	DurationMinutes int      `json:"durationMinutes"`
	CourtNumber     int      `json:"courtNumber"`
	Invitees        []string `json:"invitees"`
	SplitPayment    bool     `json:"splitPayment"`
}

func (r CreateReservationRequest) ToParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		Date:            r.Date,
		StartHour:       r.StartHour,
		DurationMinutes: r.DurationMinutes,
		CourtNumber:     r.CourtNumber,
		Invitees:        r.Invitees,
		SplitPayment:    r.SplitPayment,
	}
}
