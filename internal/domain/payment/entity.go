package payment

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Provider is the card terminal provider the club contracts with. Charges
// are simulated: only the resulting status and reference are persisted.
const Provider = "SumUp"

type Status string

const (
	StatusCaptured     Status = "captured"
	StatusPendingSplit Status = "pending_split"
)

// StatusForSplit returns pending_split for split bookings, captured
// otherwise.
func StatusForSplit(splitPayment bool) Status {
	if splitPayment {
		return StatusPendingSplit
	}
	return StatusCaptured
}

// Transaction is one entry of the append-only charge ledger. Entries are
// never mutated after creation except through the same document commit that
// created them.
type Transaction struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
	Amount        float64    `json:"amount"`
	Status        Status     `json:"status"`
	Provider      string     `json:"provider"`
	Reference     string     `json:"reference,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewReference generates an opaque provider-style payment reference.
func NewReference() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "SUMUP-" + strings.ToUpper(uuid.NewString()[:8])
	}
	return "SUMUP-" + strings.ToUpper(hex.EncodeToString(buf))
}
