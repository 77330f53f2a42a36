package pricing

import (
	"math"

	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
)

// Duration multipliers for session lengths.
const (
	DurationMultiplier30 = 0.5
	DurationMultiplier45 = 0.75
	DurationMultiplier60 = 1.0
)

// Priority multipliers for report delivery.
const (
	PriorityMultiplierLow    = 1.0
	PriorityMultiplierMedium = 1.2
	PriorityMultiplierHigh   = 1.5
)

// Calculate returns the total price for a booking in whole currency units.
// Every booking and report flow goes through this one function so the
// arithmetic never drifts between forms. Rounding is half-up.
func Calculate(baseRatePerHour, durationMultiplier, priorityMultiplier float64) (int, error) {
	if baseRatePerHour <= 0 {
		return 0, domain.NewInvalidPricingInputError("base rate must be positive")
	}
	if durationMultiplier <= 0 {
		return 0, domain.NewInvalidPricingInputError("duration multiplier must be positive")
	}
	if priorityMultiplier <= 0 {
		return 0, domain.NewInvalidPricingInputError("priority multiplier must be positive")
	}

	total := baseRatePerHour * durationMultiplier * priorityMultiplier
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return 0, domain.NewInvalidPricingInputError("pricing computation produced an invalid result")
	}

	return int(math.Floor(total + 0.5)), nil
}

// ForConsultation prices a consultation session. Consultations have no
// priority dimension; only the session length scales the hourly rate.
func ForConsultation(baseRatePerHour float64, durationMinutes int) (int, error) {
	mult, err := DurationMultiplierForMinutes(durationMinutes)
	if err != nil {
		return 0, err
	}
	return Calculate(baseRatePerHour, mult, PriorityMultiplierLow)
}

// ForReport prices a report request from its base price and priority.
func ForReport(basePrice float64, priority string) (int, error) {
	mult, err := PriorityMultiplierFor(priority)
	if err != nil {
		return 0, err
	}
	return Calculate(basePrice, 1.0, mult)
}

// DurationMultiplierForMinutes maps a session length to its rate multiplier.
func DurationMultiplierForMinutes(minutes int) (float64, error) {
	switch minutes {
	case 30:
		return DurationMultiplier30, nil
	case 45:
		return DurationMultiplier45, nil
	case 60:
		return DurationMultiplier60, nil
	default:
		return 0, domain.NewInvalidPricingInputError("duration must be 30, 45 or 60 minutes")
	}
}

// PriorityMultiplierFor maps a report priority to its price multiplier.
func PriorityMultiplierFor(priority string) (float64, error) {
	switch priority {
	case "low", "":
		return PriorityMultiplierLow, nil
	case "medium":
		return PriorityMultiplierMedium, nil
	case "high":
		return PriorityMultiplierHigh, nil
	default:
		return 0, domain.NewInvalidPricingInputError("priority must be low, medium or high")
	}
}
