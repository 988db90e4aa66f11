package order

import (
	"errors"
	"fmt"
	"time"

	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

const (
	// scheduleDateLayout is the expected pickup date format.
	scheduleDateLayout = "2006-01-02"
	// scheduleTimeLayout is the expected pickup time format.
	scheduleTimeLayout = "15:04"
)

// ErrScheduleIsNotConstructed is returned when a Schedule instance was not
// created through NewSchedule.
var ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule constructor")

// Schedule is the pickup date and time of a "Schedule for Later" order.
// Immediate orders carry no schedule at all, which is how the read side
// distinguishes the two intake flows.
type Schedule struct {
	pickupDate string
	pickupTime string
	guard      guard.ConstructorGuard
}

// NewSchedule creates a validated Schedule. Both parts are required:
// the date as "2006-01-02" and the time as "15:04".
func NewSchedule(pickupDate, pickupTime string) (Schedule, error) {
	if pickupDate == "" {
		return Schedule{}, errs.NewValueIsRequiredError("pickupDate")
	}
	if pickupTime == "" {
		return Schedule{}, errs.NewValueIsRequiredError("pickupTime")
	}
	if _, err := time.Parse(scheduleDateLayout, pickupDate); err != nil {
		return Schedule{}, errs.NewValueIsInvalidErrorWithCause("pickupDate",
			fmt.Errorf("%q does not match %s", pickupDate, scheduleDateLayout))
	}
	if _, err := time.Parse(scheduleTimeLayout, pickupTime); err != nil {
		return Schedule{}, errs.NewValueIsInvalidErrorWithCause("pickupTime",
			fmt.Errorf("%q does not match %s", pickupTime, scheduleTimeLayout))
	}

	return Schedule{
		pickupDate: pickupDate,
		pickupTime: pickupTime,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// PickupDate returns the scheduled pickup date in "2006-01-02" form.
func (s Schedule) PickupDate() string {
	return s.pickupDate
}

// PickupTime returns the scheduled pickup time in "15:04" form.
func (s Schedule) PickupTime() string {
	return s.pickupTime
}

// Validate ensures the Schedule was created via NewSchedule.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}
