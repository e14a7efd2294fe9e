//go:build unit

package usecase_test

import (
	"context"
	"strings"
	"testing"

	"padel-club-api/internal/domain/payment"
	"padel-club-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateCharge(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewPaymentUseCase(f.store, f.clock)

	t.Run("captured charge", func(t *testing.T) {
		tx, err := uc.SimulateCharge(context.Background(), usecase.ChargeParams{Amount: 32})
		require.NoError(t, err)

		assert.Equal(t, payment.StatusCaptured, tx.Status)
		assert.Equal(t, "SumUp", tx.Provider)
		assert.True(t, strings.HasPrefix(tx.Reference, "SUMUP-"))
		assert.Len(t, tx.Reference, len("SUMUP-")+8)
	})

	t.Run("split charge stays pending", func(t *testing.T) {
		tx, err := uc.SimulateCharge(context.Background(), usecase.ChargeParams{Amount: 18, SplitPayment: true})
		require.NoError(t, err)
		assert.Equal(t, payment.StatusPendingSplit, tx.Status)
	})

	t.Run("charges land in the ledger", func(t *testing.T) {
		assert.Len(t, f.store.Read().Transactions, 2)
	})
}
