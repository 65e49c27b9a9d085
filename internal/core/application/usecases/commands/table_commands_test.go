package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateTableCommand(t *testing.T) {
	t.Run("should accept zero guests", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateTableCommand(id, ptr(0), true)

		require.NoError(t, err)
		assert.Equal(t, id, cmd.TableID())
		assert.Equal(t, 0, cmd.GuestNumber().Value())
		assert.True(t, cmd.Empty())
	})

	t.Run("should reject negative guests", func(t *testing.T) {
		_, err := commands.NewCreateTableCommand(kernel.NewUUID(), ptr(-1), false)

		require.ErrorIs(t, err, kernel.ErrInvalidGuestNumber)
	})

	t.Run("should require guests", func(t *testing.T) {
		_, err := commands.NewCreateTableCommand(kernel.NewUUID(), nil, false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewChangeTableEmptyCommand(t *testing.T) {
	t.Run("should carry the flag", func(t *testing.T) {
		cmd, err := commands.NewChangeTableEmptyCommand(kernel.NewUUID(), ptr(true))

		require.NoError(t, err)
		assert.True(t, cmd.Empty())
	})

	t.Run("should require the flag", func(t *testing.T) {
		_, err := commands.NewChangeTableEmptyCommand(kernel.NewUUID(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require a table id", func(t *testing.T) {
		_, err := commands.NewChangeTableEmptyCommand(kernel.UUID{}, ptr(false))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewChangeTableGuestNumberCommand(t *testing.T) {
	t.Run("should carry guest number", func(t *testing.T) {
		cmd, err := commands.NewChangeTableGuestNumberCommand(kernel.NewUUID(), ptr(4))

		require.NoError(t, err)
		assert.Equal(t, 4, cmd.GuestNumber().Value())
	})

	t.Run("should reject negative guests", func(t *testing.T) {
		_, err := commands.NewChangeTableGuestNumberCommand(kernel.NewUUID(), ptr(-5))

		require.ErrorIs(t, err, kernel.ErrInvalidGuestNumber)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
