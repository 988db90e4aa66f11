// Package pricing contains the tariff model that drives fare
// calculation: per-weight-bracket rules loaded from the pricing table.
package pricing

import (
	"errors"
	"math"

	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

// ErrRuleIsNotConstructed is returned when a Rule instance was not
// created through a constructor.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")

var (
	// ErrNoDistanceAnchor is returned when the tariff has no rule with a
	// zero weight bracket start, which carries the distance pricing.
	ErrNoDistanceAnchor = errors.New("tariff has no distance anchor rule")

	// ErrNoWeightBracket is returned when no rule's weight bracket
	// covers the requested weight.
	ErrNoWeightBracket = errors.New("no tariff rule covers the requested weight")
)

// Rule is one row of the tariff: a weight bracket with its surcharge and
// the distance pricing parameters. Distance parameters are only
// meaningful on the anchor rule, the one whose bracket starts at zero.
type Rule struct {
	weightBracketStart float64
	weightBracketEnd   float64
	baseFare           float64
	extraFarePerKm     float64
	baseDistanceKm     float64
	weightFare         float64
	guard              guard.ConstructorGuard
}

// NewRule creates a tariff rule. The bracket start must be non-negative
// and strictly below the bracket end; fares and distances must be
// non-negative.
func NewRule(
	weightBracketStart float64,
	weightBracketEnd float64,
	baseFare float64,
	extraFarePerKm float64,
	baseDistanceKm float64,
	weightFare float64,
) (Rule, error) {
	if weightBracketStart < 0 || math.IsNaN(weightBracketStart) {
		return Rule{}, errs.NewValueIsOutOfRangeError("weightBracketStart", weightBracketStart, 0, math.MaxFloat64)
	}
	if weightBracketEnd <= weightBracketStart || math.IsNaN(weightBracketEnd) {
		return Rule{}, errs.NewValueIsInvalidError("weightBracketEnd")
	}
	for name, v := range map[string]float64{
		"baseFare":       baseFare,
		"extraFarePerKm": extraFarePerKm,
		"baseDistanceKm": baseDistanceKm,
		"weightFare":     weightFare,
	} {
		if v < 0 || math.IsNaN(v) {
			return Rule{}, errs.NewValueIsOutOfRangeError(name, v, 0, math.MaxFloat64)
		}
	}

	return Rule{
		weightBracketStart: weightBracketStart,
		weightBracketEnd:   weightBracketEnd,
		baseFare:           baseFare,
		extraFarePerKm:     extraFarePerKm,
		baseDistanceKm:     baseDistanceKm,
		weightFare:         weightFare,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Rule was created through a constructor.
func (r Rule) Validate() error {
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

// WeightBracketStart returns the exclusive lower bound of the bracket in
// kilograms. Zero marks the anchor rule carrying the distance pricing.
func (r Rule) WeightBracketStart() float64 {
	return r.weightBracketStart
}

// WeightBracketEnd returns the inclusive upper bound of the bracket in
// kilograms.
func (r Rule) WeightBracketEnd() float64 {
	return r.weightBracketEnd
}

// BaseFare returns the flat fare in rupees up to the base distance.
func (r Rule) BaseFare() float64 {
	return r.baseFare
}

// ExtraFarePerKm returns the rupee rate applied per kilometer beyond the
// base distance.
func (r Rule) ExtraFarePerKm() float64 {
	return r.extraFarePerKm
}

// BaseDistanceKm returns the distance in kilometers covered by the base
// fare.
func (r Rule) BaseDistanceKm() float64 {
	return r.baseDistanceKm
}

// WeightFare returns the surcharge in rupees for parcels in this bracket.
func (r Rule) WeightFare() float64 {
	return r.weightFare
}

// Covers reports whether weight falls in this bracket. The lower bound
// is exclusive and the upper bound inclusive.
func (r Rule) Covers(weight float64) bool {
	return weight > r.weightBracketStart && weight <= r.weightBracketEnd
}

// Tariff is the full set of pricing rules in effect.
type Tariff []Rule

// DistanceAnchor returns the rule carrying the distance pricing
// parameters, identified by a weight bracket starting at zero.
func (t Tariff) DistanceAnchor() (Rule, error) {
	for _, rule := range t {
		if rule.WeightBracketStart() == 0 {
			return rule, nil
		}
	}
	return Rule{}, ErrNoDistanceAnchor
}

// WeightBracketFor returns the rule whose weight bracket covers weight.
func (t Tariff) WeightBracketFor(weight float64) (Rule, error) {
	for _, rule := range t {
		if rule.Covers(weight) {
			return rule, nil
		}
	}
	return Rule{}, ErrNoWeightBracket
}
