package book_test

import (
	"testing"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestBook(t *testing.T, available int) *book.Book {
	t.Helper()
	b, err := book.NewBook(kernel.NewUUID(), "Effective Java", 2017, mustMoney(t, "49.90"), available)
	require.NoError(t, err)
	return b
}

func TestNewBook(t *testing.T) {
	t.Run("creates valid book", func(t *testing.T) {
		b := newTestBook(t, 50)

		require.NoError(t, b.Validate())
		assert.Equal(t, "Effective Java", b.Title())
		assert.Equal(t, 2017, b.Year())
		assert.Equal(t, "49.90", b.Price().String())
		assert.Equal(t, 50, b.Available())
	})

	t.Run("rejects invalid attributes", func(t *testing.T) {
		price := mustMoney(t, "49.90")

		testCases := []struct {
			name      string
			id        kernel.UUID
			title     string
			year      int
			price     kernel.Money
			available int
		}{
			{"zero id", kernel.UUID{}, "Effective Java", 2017, price, 50},
			{"empty title", kernel.NewUUID(), "", 2017, price, 50},
			{"non-positive year", kernel.NewUUID(), "Effective Java", 0, price, 50},
			{"negative price", kernel.NewUUID(), "Effective Java", 2017, mustMoney(t, "-1.00"), 50},
			{"negative stock", kernel.NewUUID(), "Effective Java", 2017, price, -1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := book.NewBook(tc.id, tc.title, tc.year, tc.price, tc.available)
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value book fails validation", func(t *testing.T) {
		var b book.Book
		require.ErrorIs(t, b.Validate(), book.ErrBookIsNotConstructed)
	})
}

func TestBook_Reserve(t *testing.T) {
	t.Run("decrements available stock", func(t *testing.T) {
		b := newTestBook(t, 50)

		require.NoError(t, b.Reserve(15))
		assert.Equal(t, 35, b.Available())
	})

	t.Run("fails with insufficient stock and leaves stock unchanged", func(t *testing.T) {
		b := newTestBook(t, 10)

		err := b.Reserve(11)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 10, b.Available())
	})

	t.Run("can reserve the entire stock", func(t *testing.T) {
		b := newTestBook(t, 10)

		require.NoError(t, b.Reserve(10))
		assert.Equal(t, 0, b.Available())
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		b := newTestBook(t, 10)

		for _, quantity := range []int{0, -5} {
			err := b.Reserve(quantity)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, 10, b.Available())
		}
	})
}

func TestBook_Restock(t *testing.T) {
	t.Run("reverses a reservation exactly", func(t *testing.T) {
		b := newTestBook(t, 50)

		require.NoError(t, b.Reserve(15))
		require.NoError(t, b.Restock(15))
		assert.Equal(t, 50, b.Available())
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		b := newTestBook(t, 50)

		require.ErrorIs(t, b.Restock(0), errs.ErrValueIsInvalid)
		assert.Equal(t, 50, b.Available())
	})
}
