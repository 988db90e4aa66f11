package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turtu/internal/core/application/usecases/commands"
	"turtu/internal/core/domain/model/kernel"
)

func TestNewVerifyDeliveryOTPCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewVerifyDeliveryOTPCommand(orderID, "482913")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, "482913", cmd.ProvidedOTP())
	})

	t.Run("empty otp", func(t *testing.T) {
		_, err := commands.NewVerifyDeliveryOTPCommand(kernel.NewUUID(), "")
		assert.Error(t, err)
	})

	t.Run("not constructed order id", func(t *testing.T) {
		_, err := commands.NewVerifyDeliveryOTPCommand(kernel.UUID{}, "482913")
		assert.Error(t, err)
	})

	t.Run("not constructed command", func(t *testing.T) {
		cmd := commands.VerifyDeliveryOTPCommand{}
		assert.ErrorIs(t, cmd.Validate(), commands.ErrVerifyDeliveryOTPCommandIsNotConstructed)
	})
}
