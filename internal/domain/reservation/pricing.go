package reservation

import "math"

// Tariff is the time-of-day rate card. Rates are hourly; each half-hour
// increment is billed at rate/2. The peak window is [PeakStartHour,
// PeakEndHour) on whole hours.
type Tariff struct {
	OffPeakRate   float64 `json:"offPeakRate"`
	PeakRate      float64 `json:"peakRate"`
	PeakStartHour int     `json:"peakStartHour"`
	PeakEndHour   int     `json:"peakEndHour"`
}

func DefaultTariff() Tariff {
	return Tariff{
		OffPeakRate:   24,
		PeakRate:      32,
		PeakStartHour: 17,
		PeakEndHour:   20,
	}
}

// SlotRate is one billed half-hour increment of a quote.
type SlotRate struct {
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Rate   float64 `json:"rate"`
}

// Quote is the derived price for a slot. The breakdown is informational
// only; callers persist just the total.
type Quote struct {
	Total float64    `json:"total"`
	Slots []SlotRate `json:"slots"`
}

type PriceCalculator interface {
	PriceForSlot(tariff Tariff, startHour float64, durationMinutes int) Quote
}

type TariffPriceCalculator struct{}

func NewTariffPriceCalculator() *TariffPriceCalculator {
	return &TariffPriceCalculator{}
}

// PriceForSlot walks the booking in half-hour increments, classifying each
// by its floor hour against the peak window. Pure: the tariff is passed in
// so a later tariff change never touches already-persisted prices.
func (pc *TariffPriceCalculator) PriceForSlot(tariff Tariff, startHour float64, durationMinutes int) Quote {
	// Partially covered increments are billed in full.
	steps := (durationMinutes + 29) / 30
	slots := make([]SlotRate, 0, steps)

	total := 0.0
	hour := startHour
	for i := 0; i < steps; i++ {
		floorHour := int(math.Floor(hour))
		minute := 0
		if hour != math.Floor(hour) {
			minute = 30
		}
		rate := tariff.OffPeakRate
		if floorHour >= tariff.PeakStartHour && floorHour < tariff.PeakEndHour {
			rate = tariff.PeakRate
		}
		total += rate / 2
		slots = append(slots, SlotRate{Hour: floorHour, Minute: minute, Rate: rate})
		hour += 0.5
	}

	return Quote{
		Total: RoundToCents(total),
		Slots: slots,
	}
}

// RoundToCents rounds a monetary amount to 2 decimal places.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
