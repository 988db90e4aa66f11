package ports

import (
	"context"

	"turtu/internal/core/domain/model/pricing"
)

// PricingRepository provides read access to the tariff in effect.
type PricingRepository interface {
	// GetTariff retrieves every pricing rule.
	GetTariff(ctx context.Context) (pricing.Tariff, error)
}
