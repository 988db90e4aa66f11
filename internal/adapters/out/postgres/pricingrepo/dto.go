// Package pricingrepo provides read access to the pricing rules table.
package pricingrepo

import (
	"turtu/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// PricingRuleDTO represents one row of the tariff table. Rows are keyed
// by weight bracket; the bracket starting at zero also anchors the
// distance fare parameters.
type PricingRuleDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	WeightBracketStart float64   `gorm:"type:numeric;not null"`
	WeightBracketEnd   float64   `gorm:"type:numeric;not null"`
	BaseFare           float64   `gorm:"type:numeric;not null"`
	ExtraFarePerKm     float64   `gorm:"type:numeric;not null"`
	BaseDistanceKm     float64   `gorm:"type:numeric;not null"`
	WeightFare         float64   `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for pricing rules.
// Overrides GORM's default naming convention to use "pricing_rules".
func (PricingRuleDTO) TableName() string {
	return "pricing_rules"
}

// toDomain converts a database DTO to a pricing rule value object.
func toDomain(dto PricingRuleDTO) (pricing.Rule, error) {
	return pricing.NewRule(
		dto.WeightBracketStart,
		dto.WeightBracketEnd,
		dto.BaseFare,
		dto.ExtraFarePerKm,
		dto.BaseDistanceKm,
		dto.WeightFare,
	)
}
