package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turtu/internal/core/application/usecases/commands"
	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"
)

func validSubmitOrderCommand(t *testing.T, schedule *order.Schedule) commands.SubmitOrderCommand {
	t.Helper()

	cmd, err := commands.NewSubmitOrderCommand(
		kernel.NewUUID(),
		testContact(t, "Asha Rao", "9876543210", "asha@example.com"),
		testContact(t, "Vikram Joshi", "9123456780", "vikram@example.com"),
		"12 MG Road, Bengaluru",
		"4 Residency Road, Bengaluru",
		"documents",
		1.5,
		118,
		"call on arrival",
		schedule,
	)
	require.NoError(t, err)

	return cmd
}

func TestNewSubmitOrderCommand(t *testing.T) {
	t.Run("valid immediate order", func(t *testing.T) {
		cmd := validSubmitOrderCommand(t, nil)

		assert.NoError(t, cmd.Validate())
		assert.Nil(t, cmd.Schedule())
		assert.Equal(t, "documents", cmd.Content())
		assert.Equal(t, 1.5, cmd.Weight())
		assert.Equal(t, 118.0, cmd.Amount())
	})

	t.Run("valid scheduled order", func(t *testing.T) {
		schedule, err := order.NewSchedule("2026-09-01", "14:30")
		require.NoError(t, err)

		cmd := validSubmitOrderCommand(t, &schedule)

		require.NotNil(t, cmd.Schedule())
		assert.Equal(t, "2026-09-01", cmd.Schedule().PickupDate())
	})

	t.Run("empty pickup address", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(),
			testContact(t, "Asha Rao", "9876543210", "asha@example.com"),
			testContact(t, "Vikram Joshi", "9123456780", "vikram@example.com"),
			"",
			"4 Residency Road, Bengaluru",
			"documents",
			1.5,
			118,
			"",
			nil,
		)
		assert.Error(t, err)
	})

	t.Run("zero weight", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(),
			testContact(t, "Asha Rao", "9876543210", "asha@example.com"),
			testContact(t, "Vikram Joshi", "9123456780", "vikram@example.com"),
			"12 MG Road, Bengaluru",
			"4 Residency Road, Bengaluru",
			"documents",
			0,
			118,
			"",
			nil,
		)
		assert.Error(t, err)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(),
			testContact(t, "Asha Rao", "9876543210", "asha@example.com"),
			testContact(t, "Vikram Joshi", "9123456780", "vikram@example.com"),
			"12 MG Road, Bengaluru",
			"4 Residency Road, Bengaluru",
			"documents",
			1.5,
			-1,
			"",
			nil,
		)
		assert.Error(t, err)
	})

	t.Run("not constructed contact", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(
			kernel.NewUUID(),
			order.Contact{},
			testContact(t, "Vikram Joshi", "9123456780", "vikram@example.com"),
			"12 MG Road, Bengaluru",
			"4 Residency Road, Bengaluru",
			"documents",
			1.5,
			118,
			"",
			nil,
		)
		assert.Error(t, err)
	})

	t.Run("not constructed command", func(t *testing.T) {
		cmd := commands.SubmitOrderCommand{}
		assert.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
	})
}
