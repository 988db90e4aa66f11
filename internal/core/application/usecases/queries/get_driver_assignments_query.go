package queries

import (
	"errors"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/guard"
)

var ErrGetDriverAssignmentsQueryIsNotConstructed = errors.New(
	"GetDriverAssignmentsQuery must be created via NewGetDriverAssignmentsQuery constructor",
)

// GetDriverAssignmentsQuery retrieves the assignment snapshots handed
// to one driver.
type GetDriverAssignmentsQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverAssignmentsQuery creates a query for one driver's assignments.
func NewGetDriverAssignmentsQuery(driverID kernel.UUID) (GetDriverAssignmentsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverAssignmentsQuery{}, err
	}

	return GetDriverAssignmentsQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverAssignmentsQueryIsNotConstructed)
}

// DriverID returns the driver whose assignments are requested.
func (q GetDriverAssignmentsQuery) DriverID() kernel.UUID {
	return q.driverID
}
