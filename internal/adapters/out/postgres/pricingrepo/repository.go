package pricingrepo

import (
	"context"

	"turtu/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// GormPricingRepository implements PricingRepository using GORM.
// The tariff is read outside any unit of work because pricing rules are
// reference data and never written by the application.
type GormPricingRepository struct {
	db *gorm.DB
}

// NewGormPricingRepository creates a new GORM pricing repository.
func NewGormPricingRepository(db *gorm.DB) *GormPricingRepository {
	return &GormPricingRepository{db: db}
}

// GetTariff retrieves every pricing rule ordered by weight bracket.
func (r *GormPricingRepository) GetTariff(ctx context.Context) (pricing.Tariff, error) {
	var dtos []PricingRuleDTO
	if err := r.db.WithContext(ctx).
		Order("weight_bracket_start").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	tariff := make(pricing.Tariff, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tariff = append(tariff, rule)
	}

	return tariff, nil
}
