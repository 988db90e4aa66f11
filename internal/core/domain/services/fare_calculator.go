package services

import (
	"errors"
	"math"

	"turtu/internal/core/domain/model/pricing"
	"turtu/internal/pkg/errs"
)

const (
	// surchargeThresholdKm is the distance above which the long-haul
	// surcharge applies. The threshold is strict: a trip of exactly this
	// length carries no surcharge.
	surchargeThresholdKm = 10.0

	// surchargeRate is the fraction of the distance fare added for trips
	// beyond the surcharge threshold.
	surchargeRate = 0.6
)

// Fare is the priced breakdown of a trip. Total is the amount actually
// charged; the remaining fields exist so the client can show how it was
// built.
type Fare struct {
	Total            float64
	BaseFare         float64
	ExtraFarePerKm   float64
	WeightFare       float64
	AdditionalCharge float64
}

// FareCalculator is a domain service that prices a trip from the tariff.
//
// Pricing rules:
//   - Trips within the anchor rule's base distance cost the base fare.
//   - Beyond the base distance, every extra kilometer is charged at the
//     per-kilometer rate on top of the base fare.
//   - Trips longer than the surcharge threshold carry an additional 60%
//     of the extra-distance fare.
//   - The weight bracket covering the parcel adds its flat weight fare.
//   - The total is rounded up to a whole rupee.
type FareCalculator struct{}

// NewFareCalculator creates a new FareCalculator instance.
func NewFareCalculator() FareCalculator {
	return FareCalculator{}
}

// Calculate prices a trip of the given distance in kilometers carrying
// the given weight in kilograms against the tariff.
func (c FareCalculator) Calculate(tariff pricing.Tariff, distanceKm, weightKg float64) (Fare, error) {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		return Fare{}, errs.NewValueIsOutOfRangeError("distance", distanceKm, 0, math.MaxFloat64)
	}
	if weightKg < 0 || math.IsNaN(weightKg) {
		return Fare{}, errs.NewValueIsOutOfRangeError("weight", weightKg, 0, math.MaxFloat64)
	}

	anchor, err := tariff.DistanceAnchor()
	if err != nil {
		return Fare{}, err
	}

	// A weight outside every bracket carries no weight surcharge.
	var weightFare float64
	if bracket, err := tariff.WeightBracketFor(weightKg); err == nil {
		weightFare = bracket.WeightFare()
	} else if !errors.Is(err, pricing.ErrNoWeightBracket) {
		return Fare{}, err
	}

	var extraFare float64
	if distanceKm > anchor.BaseDistanceKm() {
		extraFare = (distanceKm - anchor.BaseDistanceKm()) * anchor.ExtraFarePerKm()
	}

	var additionalCharge float64
	if distanceKm > surchargeThresholdKm {
		additionalCharge = extraFare * surchargeRate
	}

	distanceFare := anchor.BaseFare() + extraFare

	return Fare{
		Total:            math.Ceil(distanceFare + additionalCharge + weightFare),
		BaseFare:         anchor.BaseFare(),
		ExtraFarePerKm:   anchor.ExtraFarePerKm(),
		WeightFare:       weightFare,
		AdditionalCharge: additionalCharge,
	}, nil
}
