// Package queries contains read-only operations over the database.
// Implements the Query side of the CQRS architecture: handlers read
// directly with SQL and return plain read models, bypassing the
// aggregates.
package queries

import (
	"errors"
	"math"

	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

var ErrCalculateFareQueryIsNotConstructed = errors.New(
	"CalculateFareQuery must be created via NewCalculateFareQuery constructor",
)

// CalculateFareQuery requests a fare quote for a trip of the given
// distance in kilometers carrying the given weight in kilograms.
type CalculateFareQuery struct {
	distanceKm float64
	weightKg   float64

	guard guard.ConstructorGuard
}

// NewCalculateFareQuery creates a fare quote query.
// Distance and weight must be non-negative numbers.
func NewCalculateFareQuery(distanceKm, weightKg float64) (CalculateFareQuery, error) {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		return CalculateFareQuery{}, errs.NewValueIsOutOfRangeError("distance", distanceKm, 0, math.MaxFloat64)
	}
	if weightKg < 0 || math.IsNaN(weightKg) {
		return CalculateFareQuery{}, errs.NewValueIsOutOfRangeError("weight", weightKg, 0, math.MaxFloat64)
	}

	return CalculateFareQuery{
		distanceKm: distanceKm,
		weightKg:   weightKg,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateFareQuery) Validate() error {
	return q.guard.Validate(ErrCalculateFareQueryIsNotConstructed)
}

// DistanceKm returns the trip distance in kilometers.
func (q CalculateFareQuery) DistanceKm() float64 {
	return q.distanceKm
}

// WeightKg returns the parcel weight in kilograms.
func (q CalculateFareQuery) WeightKg() float64 {
	return q.weightKg
}

// CalculateFareQueryResponse is the fare breakdown returned to the client.
type CalculateFareQueryResponse struct {
	TotalAmount      float64
	BaseFare         float64
	ExtraFarePerKm   float64
	WeightFare       float64
	AdditionalCharge float64
	DistanceKm       float64
	WeightKg         float64
}
