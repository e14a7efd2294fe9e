package usecase

import (
	"context"

	"padel-club-api/internal/domain/payment"
	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/store"

	"github.com/google/uuid"
)

type ChargeParams struct {
	Amount        float64
	ReservationID *uuid.UUID
	SplitPayment  bool
}

// PaymentUseCase simulates the SumUp terminal: no provider call is made,
// only the resulting status and reference are persisted to the ledger.
type PaymentUseCase interface {
	SimulateCharge(ctx context.Context, params ChargeParams) (*payment.Transaction, error)
}

type paymentUseCaseImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewPaymentUseCase(st *store.Store, clk clock.Clock) PaymentUseCase {
	return &paymentUseCaseImpl{store: st, clock: clk}
}

func (p *paymentUseCaseImpl) SimulateCharge(_ context.Context, params ChargeParams) (*payment.Transaction, error) {
	return store.Update(p.store, func(doc *store.Document) (*payment.Transaction, error) {
		tx := payment.Transaction{
			ID:            uuid.New(),
			ReservationID: params.ReservationID,
			Amount:        params.Amount,
			Status:        payment.StatusForSplit(params.SplitPayment),
			Provider:      payment.Provider,
			Reference:     payment.NewReference(),
			CreatedAt:     p.clock.Now(),
		}
		doc.Transactions = append(doc.Transactions, tx)
		return &tx, nil
	})
}
