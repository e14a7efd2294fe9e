package request

import (
	"github.com/google/uuid"
)

type ChargeRequest struct {
	Amount        float64    `json:"amount" binding:"required"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
	SplitPayment  bool       `json:"splitPayment"`
}
