package recipient_test

import (
	"testing"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/recipient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipient(t *testing.T) {
	t.Run("creates valid recipient", func(t *testing.T) {
		r, err := recipient.NewRecipient(
			kernel.NewUUID(), "marek@example.org", "Marek Nowak", "123-456-789", "Main St 1", "Warsaw", "00-001")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "marek@example.org", r.Email())
		assert.Equal(t, "Marek Nowak", r.Name())
	})

	t.Run("address fields are optional", func(t *testing.T) {
		_, err := recipient.NewRecipient(kernel.NewUUID(), "marek@example.org", "Marek Nowak", "", "", "", "")
		require.NoError(t, err)
	})

	t.Run("requires email and name", func(t *testing.T) {
		_, err := recipient.NewRecipient(kernel.NewUUID(), "", "Marek Nowak", "", "", "", "")
		require.Error(t, err)

		_, err = recipient.NewRecipient(kernel.NewUUID(), "marek@example.org", "", "", "", "", "")
		require.Error(t, err)
	})

	t.Run("zero value recipient fails validation", func(t *testing.T) {
		var r recipient.Recipient
		require.ErrorIs(t, r.Validate(), recipient.ErrRecipientIsNotConstructed)
	})
}

func TestRecipient_EmailEquals(t *testing.T) {
	r, err := recipient.NewRecipient(kernel.NewUUID(), "Marek@Example.org", "Marek Nowak", "", "", "", "")
	require.NoError(t, err)

	assert.True(t, r.EmailEquals("marek@example.org"))
	assert.True(t, r.EmailEquals("MAREK@EXAMPLE.ORG"))
	assert.False(t, r.EmailEquals("adam@example.org"))
}
