package guard_test

import (
	"errors"
	"testing"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("not constructed")

	t.Run("constructed", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the caller error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Same(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_ValueObjects(t *testing.T) {
	cpf, err := customer.NewCpf("529.982.247-25")
	require.NoError(t, err)
	email, err := customer.NewEmail("maria@example.com")
	require.NoError(t, err)
	name, err := customer.NewName("Maria Silva")
	require.NoError(t, err)

	tests := []struct {
		name        string
		constructed interface{ Validate() error }
		zero        interface{ Validate() error }
		want        error
	}{
		{"cpf", cpf, customer.Cpf{}, customer.ErrCpfIsNotConstructed},
		{"email", email, customer.Email{}, customer.ErrEmailIsNotConstructed},
		{"name", name, customer.Name{}, customer.ErrNameIsNotConstructed},
		{"created at", order.Now(), order.CreatedAt{}, order.ErrCreatedAtIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.constructed.Validate())

			err := tt.zero.Validate()
			require.ErrorIs(t, err, tt.want)
			assert.True(t, errs.IsValidation(err))
		})
	}
}
