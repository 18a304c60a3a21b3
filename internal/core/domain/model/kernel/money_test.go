package kernel_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(decimal.Zero)
		require.NoError(t, err)
		assert.False(t, zero.IsPositive())

		m, err := kernel.NewMoney(decimal.RequireFromString("10.5"))
		require.NoError(t, err)
		assert.True(t, m.IsPositive())
		assert.Equal(t, "10.50", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 must not be negative")
	})
}

func TestMoneyFromString(t *testing.T) {
	m, err := kernel.MoneyFromString("3.99")
	require.NoError(t, err)
	assert.True(t, m.Decimal().Equal(decimal.RequireFromString("3.99")))

	_, err = kernel.MoneyFromString("abc")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = kernel.MoneyFromString("-0.01")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.MoneyFromString("2.50")

	line, err := price.Times(3)
	require.NoError(t, err)
	assert.Equal(t, "7.50", line.String())

	total := kernel.ZeroMoney().Add(line).Add(price)
	assert.Equal(t, "10.00", total.String())
	assert.True(t, total.IsEqual(kernel.Money{}.Add(total)))

	_, err = price.Times(-1)
	assert.Error(t, err)
}
