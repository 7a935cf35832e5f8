package ecotrack

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RiskLevel is the qualitative outcome of a risk assessment.
type RiskLevel int

const (
	// RiskHigh means the reward does not justify risking the gear.
	RiskHigh RiskLevel = iota
	// RiskMedium means the trip is worth it with care.
	RiskMedium
	// RiskLow means the reward largely outweighs the gear at stake.
	RiskLow
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Advice returns the recommendation shown with the level.
func (r RiskLevel) Advice() string {
	switch r {
	case RiskLow:
		return "Go for it!"
	case RiskMedium:
		return "Be careful"
	default:
		return "Not worth it"
	}
}

// RiskPolicy holds the reward/gear ratio thresholds of each level.
//
// A ratio strictly above Low is RiskLow, strictly above Medium is RiskMedium
// and anything else is RiskHigh.
type RiskPolicy struct {
	Low    decimal.Decimal `json:"low"`
	Medium decimal.Decimal `json:"medium"`
}

// DefaultRiskPolicy returns the thresholds 3 and 1.
func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{Low: decimal.NewFromInt(3), Medium: decimal.NewFromInt(1)}
}

// Validate checks that the thresholds are ordered.
func (p RiskPolicy) Validate() error {
	if p.Medium.IsNegative() {
		return fmt.Errorf("%w: medium risk threshold %s is negative", ErrInvalid, p.Medium)
	}
	if p.Low.LessThan(p.Medium) {
		return fmt.Errorf("%w: low risk threshold %s is below medium risk threshold %s", ErrInvalid, p.Low, p.Medium)
	}
	return nil
}

// RiskAssessment is the result of rating a trip.
type RiskAssessment struct {
	Gear   Money
	Reward Money
	// Ratio is Reward / Gear.
	Ratio decimal.Decimal
	Level RiskLevel
}

// Rate compares the expected reward of a trip with the cost of the gear put
// at risk.
//
// Without a positive gear cost there is no ratio to compute and
// ErrInsufficientInput is returned.
func (p RiskPolicy) Rate(gear, reward Money) (RiskAssessment, error) {
	if !gear.IsPositive() {
		return RiskAssessment{}, fmt.Errorf("gear cost must be positive: %w", ErrInsufficientInput)
	}
	ratio, _ := reward.Ratio(gear)
	a := RiskAssessment{Gear: gear, Reward: reward, Ratio: ratio}
	switch {
	case ratio.GreaterThan(p.Low):
		a.Level = RiskLow
	case ratio.GreaterThan(p.Medium):
		a.Level = RiskMedium
	default:
		a.Level = RiskHigh
	}
	return a, nil
}
