package kernel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money

		assert.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
	})
}

func TestMoneyFromString(t *testing.T) {
	m, err := kernel.MoneyFromString("999.99")
	require.NoError(t, err)
	assert.Equal(t, "999.99", m.String())

	_, err = kernel.MoneyFromString("abc")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = kernel.MoneyFromString("-0.01")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoney_Arithmetic(t *testing.T) {
	price, err := kernel.MoneyFromString("999.99")
	require.NoError(t, err)
	shipping, err := kernel.MoneyFromString("0.01")
	require.NoError(t, err)

	assert.Equal(t, "1999.98", price.Times(2).String())
	assert.Equal(t, "1000.00", price.Add(shipping).String())
	assert.Equal(t, "0.00", price.Times(0).String())
	assert.True(t, kernel.ZeroMoney().IsEqual(price.Times(0)))
}

func TestMoney_WithinTolerance(t *testing.T) {
	tolerance := decimal.RequireFromString("0.01")
	total, _ := kernel.MoneyFromString("100.00")

	tests := []struct {
		amount string
		want   bool
	}{
		{"100.00", true},
		{"100.01", true},
		{"99.99", true},
		{"100.02", false},
		{"99.98", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			amount, err := kernel.MoneyFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total.WithinTolerance(amount, tolerance))
		})
	}
}
