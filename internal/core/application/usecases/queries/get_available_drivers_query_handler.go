package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"turtu/internal/core/domain/model/kernel"
)

// GetAvailableDriversQueryHandler reads available drivers from the
// database.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for available driver queries.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle returns every driver currently marked available, sorted by name.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]DriverResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			email,
			availability
		FROM drivers
		WHERE availability = ?
		ORDER BY name
	`, "available").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp DriverResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.Name, &resp.Phone, &resp.Email, &resp.Availability)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = driverID
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
