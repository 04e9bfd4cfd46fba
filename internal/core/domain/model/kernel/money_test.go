package kernel_test

import (
	"testing"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses valid decimal strings", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("49.90")
		require.NoError(t, err)
		assert.Equal(t, "49.90", m.String())
	})

	t.Run("rejects non-decimal strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("forty-nine")
		require.Error(t, err)
	})

	t.Run("accepts negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("-5.00")
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, err := kernel.NewMoneyFromString("49.90")
	require.NoError(t, err)

	t.Run("multiplication by quantity is exact", func(t *testing.T) {
		assert.Equal(t, "149.70", price.MulInt(3).String())
		assert.Equal(t, "499.00", price.MulInt(10).String())
	})

	t.Run("addition and subtraction are exact", func(t *testing.T) {
		fee, feeErr := kernel.NewMoneyFromString("9.90")
		require.NoError(t, feeErr)

		assert.Equal(t, "59.80", price.Add(fee).String())
		assert.Equal(t, "40.00", price.Sub(fee).String())
	})

	t.Run("half splits without losing precision", func(t *testing.T) {
		assert.Equal(t, "24.95", price.Half().String())
	})

	t.Run("round2 uses half-up rounding", func(t *testing.T) {
		m := kernel.NewMoneyFromDecimal(decimal.RequireFromString("10.005"))
		assert.Equal(t, "10.01", m.Round2().String())

		m = kernel.NewMoneyFromDecimal(decimal.RequireFromString("10.004"))
		assert.Equal(t, "10.00", m.Round2().String())
	})
}

func TestMoney_Comparison(t *testing.T) {
	hundred, err := kernel.NewMoneyFromString("100.00")
	require.NoError(t, err)
	almost, err := kernel.NewMoneyFromString("99.99")
	require.NoError(t, err)

	assert.True(t, hundred.GreaterOrEqual(hundred))
	assert.True(t, hundred.GreaterOrEqual(almost))
	assert.True(t, almost.LessThan(hundred))
	assert.False(t, hundred.LessThan(almost))

	t.Run("equality ignores scale", func(t *testing.T) {
		a := kernel.NewMoneyFromDecimal(decimal.RequireFromString("100"))
		assert.True(t, a.IsEqual(hundred))
	})

	t.Run("zero money is zero", func(t *testing.T) {
		assert.True(t, kernel.ZeroMoney().IsZero())
		assert.False(t, hundred.IsZero())
	})
}
