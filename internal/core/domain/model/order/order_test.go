package order_test

import (
	"testing"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"
	"turtu/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer(t *testing.T) order.Contact {
	t.Helper()
	phone, err := kernel.NewPhoneNumber("9998887776")
	require.NoError(t, err)
	contact, err := order.NewContact("Asha Kulkarni", phone, "asha@example.com")
	require.NoError(t, err)
	return contact
}

func validReceiver(t *testing.T) order.Contact {
	t.Helper()
	phone, err := kernel.NewPhoneNumber("8887776665")
	require.NoError(t, err)
	contact, err := order.NewContact("Ravi Patil", phone, "ravi@example.com")
	require.NoError(t, err)
	return contact
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		validCustomer(t),
		validReceiver(t),
		"12 MG Road, Belagavi",
		"4 College Road, Belagavi",
		"Documents",
		2.5,
		120,
		"Call on arrival",
		nil,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_immediate_order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.AssignedDriver())
		assert.False(t, o.IsScheduled())
		assert.Nil(t, o.Schedule())
	})

	t.Run("creates_scheduled_order", func(t *testing.T) {
		schedule, err := order.NewSchedule("2026-09-15", "14:30")
		require.NoError(t, err)

		o, err := order.NewOrder(
			kernel.NewUUID(),
			validCustomer(t),
			validReceiver(t),
			"12 MG Road, Belagavi",
			"4 College Road, Belagavi",
			"Birthday cake",
			1.2,
			90,
			"",
			&schedule,
		)

		require.NoError(t, err)
		assert.True(t, o.IsScheduled())
		assert.Equal(t, "2026-09-15", o.Schedule().PickupDate())
		assert.Equal(t, "14:30", o.Schedule().PickupTime())
	})

	t.Run("rejects_missing_identifiers_and_fields", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := order.NewOrder(zeroID, validCustomer(t), validReceiver(t),
			"a", "b", "c", 1, 10, "", nil)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), order.Contact{}, validReceiver(t),
			"a", "b", "c", 1, 10, "", nil)
		require.ErrorIs(t, err, order.ErrContactIsNotConstructed)

		_, err = order.NewOrder(kernel.NewUUID(), validCustomer(t), validReceiver(t),
			"", "b", "c", 1, 10, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(kernel.NewUUID(), validCustomer(t), validReceiver(t),
			"a", "", "c", 1, 10, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(kernel.NewUUID(), validCustomer(t), validReceiver(t),
			"a", "b", "", 1, 10, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_non_positive_weight", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), validCustomer(t), validReceiver(t),
			"a", "b", "c", 0, 10, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewOrder(kernel.NewUUID(), validCustomer(t), validReceiver(t),
			"a", "b", "c", -1, 10, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), validCustomer(t), validReceiver(t),
			"a", "b", "c", 1, -10, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("moves_order_to_active", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignDriver("Suresh")

		require.NoError(t, err)
		assert.Equal(t, order.Active, o.Status())
		assert.Equal(t, "Suresh", o.AssignedDriver())
	})

	t.Run("requires_driver_name", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignDriver("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("walks_full_lifecycle", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignDriver("Suresh"))

		require.NoError(t, o.UpdateStatus(order.Picked))
		assert.Equal(t, order.Picked, o.Status())

		require.NoError(t, o.UpdateStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects_updates_after_delivery", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignDriver("Suresh"))
		require.NoError(t, o.UpdateStatus(order.Delivered))

		err := o.UpdateStatus(order.Picked)

		require.ErrorIs(t, err, order.ErrOrderAlreadyDelivered)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects_reversal_after_pickup", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignDriver("Suresh"))
		require.NoError(t, o.UpdateStatus(order.Picked))

		err := o.UpdateStatus(order.Active)

		require.ErrorIs(t, err, order.ErrStatusReversal)
		assert.Equal(t, order.Picked, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_status_and_driver", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			validCustomer(t),
			validReceiver(t),
			"12 MG Road, Belagavi",
			"4 College Road, Belagavi",
			"Documents",
			2.5,
			120,
			"",
			nil,
			order.Picked,
			"Suresh",
		)

		require.NoError(t, err)
		assert.Equal(t, order.Picked, o.Status())
		assert.Equal(t, "Suresh", o.AssignedDriver())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			validCustomer(t),
			validReceiver(t),
			"a", "b", "c", 1, 10, "", nil,
			order.Unknown,
			"",
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_rejected", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestNewContact(t *testing.T) {
	t.Run("rejects_blank_name", func(t *testing.T) {
		phone, err := kernel.NewPhoneNumber("9998887776")
		require.NoError(t, err)

		_, err = order.NewContact("   ", phone, "asha@example.com")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_malformed_email", func(t *testing.T) {
		phone, err := kernel.NewPhoneNumber("9998887776")
		require.NoError(t, err)

		for _, email := range []string{"", "no-at-sign", "@example.com", "asha@"} {
			_, err = order.NewContact("Asha", phone, email)
			require.Error(t, err, "email %q should be rejected", email)
		}
	})
}

func TestNewSchedule(t *testing.T) {
	t.Run("rejects_missing_parts", func(t *testing.T) {
		_, err := order.NewSchedule("", "14:30")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewSchedule("2026-09-15", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_malformed_parts", func(t *testing.T) {
		_, err := order.NewSchedule("15-09-2026", "14:30")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewSchedule("2026-09-15", "2pm")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
