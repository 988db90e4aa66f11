package queries

import (
	"context"

	"turtu/internal/core/domain/services"
	"turtu/internal/core/ports"
)

// CalculateFareQueryHandler prices a trip against the tariff in effect.
// Unlike the listing queries this one goes through the pricing
// repository because the tariff feeds the domain fare calculator.
type CalculateFareQueryHandler struct {
	pricingRepo ports.PricingRepository
	calculator  services.FareCalculator
}

// NewCalculateFareQueryHandler creates a handler for fare quote queries.
func NewCalculateFareQueryHandler(pricingRepo ports.PricingRepository) CalculateFareQueryHandler {
	return CalculateFareQueryHandler{
		pricingRepo: pricingRepo,
		calculator:  services.NewFareCalculator(),
	}
}

// Handle loads the tariff and computes the fare breakdown.
func (h CalculateFareQueryHandler) Handle(
	ctx context.Context,
	query CalculateFareQuery,
) (CalculateFareQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateFareQueryResponse{}, err
	}

	tariff, err := h.pricingRepo.GetTariff(ctx)
	if err != nil {
		return CalculateFareQueryResponse{}, err
	}

	fare, err := h.calculator.Calculate(tariff, query.DistanceKm(), query.WeightKg())
	if err != nil {
		return CalculateFareQueryResponse{}, err
	}

	return CalculateFareQueryResponse{
		TotalAmount:      fare.Total,
		BaseFare:         fare.BaseFare,
		ExtraFarePerKm:   fare.ExtraFarePerKm,
		WeightFare:       fare.WeightFare,
		AdditionalCharge: fare.AdditionalCharge,
		DistanceKm:       query.DistanceKm(),
		WeightKg:         query.WeightKg(),
	}, nil
}
