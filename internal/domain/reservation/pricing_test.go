//go:build unit

package reservation_test

import (
	"testing"

	"padel-club-api/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPriceForSlot(t *testing.T) {
	calc := reservation.NewTariffPriceCalculator()
	tariff := reservation.DefaultTariff()

	cases := []struct {
		name            string
		startHour       float64
		durationMinutes int
		expectTotal     float64
		expectSlots     int
	}{
		{
			name:            "one peak hour",
			startHour:       17,
			durationMinutes: 60,
			expectTotal:     32.00,
			expectSlots:     2,
		},
		{
			name:            "ninety off-peak minutes",
			startHour:       8,
			durationMinutes: 90,
			expectTotal:     36.00,
			expectSlots:     3,
		},
		{
			name:            "half-hour start crossing into peak",
			startHour:       16.5,
			durationMinutes: 60,
			expectTotal:     28.00,
			expectSlots:     2,
		},
		{
			name:            "last half hour before peak ends",
			startHour:       19.5,
			durationMinutes: 60,
			expectTotal:     28.00,
			expectSlots:     2,
		},
		{
			name:            "starts exactly at peak end",
			startHour:       20,
			durationMinutes: 120,
			expectTotal:     48.00,
			expectSlots:     4,
		},
		{
			name:            "maximum duration all peak",
			startHour:       17,
			durationMinutes: 180,
			expectTotal:     96.00,
			expectSlots:     6,
		},
		{
			name:            "partial increment billed in full",
			startHour:       10,
			durationMinutes: 75,
			expectTotal:     36.00,
			expectSlots:     3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := calc.PriceForSlot(tariff, tc.startHour, tc.durationMinutes)
			assert.Equal(t, tc.expectTotal, quote.Total)
			assert.Len(t, quote.Slots, tc.expectSlots)
		})
	}
}

func TestPriceForSlotBreakdown(t *testing.T) {
	calc := reservation.NewTariffPriceCalculator()
	tariff := reservation.DefaultTariff()

	quote := calc.PriceForSlot(tariff, 16.5, 60)

	expected := []reservation.SlotRate{
		{Hour: 16, Minute: 30, Rate: 24},
		{Hour: 17, Minute: 0, Rate: 32},
	}
	if diff := cmp.Diff(expected, quote.Slots); diff != "" {
		t.Errorf("slot breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestPriceForSlotCustomTariff(t *testing.T) {
	calc := reservation.NewTariffPriceCalculator()
	tariff := reservation.Tariff{
		OffPeakRate:   20,
		PeakRate:      40,
		PeakStartHour: 18,
		PeakEndHour:   22,
	}

	quote := calc.PriceForSlot(tariff, 17.5, 60)
	assert.Equal(t, 30.00, quote.Total)
}

func TestRoundToCents(t *testing.T) {
	assert.Equal(t, 13.33, reservation.RoundToCents(39.99/3))
	assert.Equal(t, 10.00, reservation.RoundToCents(10.004))
	assert.Equal(t, 10.01, reservation.RoundToCents(10.005))
}
