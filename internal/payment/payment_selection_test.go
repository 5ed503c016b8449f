package payment_test

import (
	"testing"

	"go-japastel-api/internal/payment"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Defaults(t *testing.T) {
	sel := payment.NewSelection()

	method, card := sel.Current()
	assert.Equal(t, payment.MethodCash, method)
	assert.Empty(t, card.CardNumber)
	assert.True(t, sel.IsComplete())
}

func TestSelection_SelectMethod(t *testing.T) {
	t.Run("cash_and_pix_are_always_complete", func(t *testing.T) {
		sel := payment.NewSelection()

		sel.SelectMethod(payment.MethodPix)
		assert.True(t, sel.IsComplete())

		sel.SelectMethod(payment.MethodCash)
		assert.True(t, sel.IsComplete())
	})

	t.Run("credit_card_incomplete_until_all_fields_set", func(t *testing.T) {
		sel := payment.NewSelection()
		sel.SelectMethod(payment.MethodCreditCard)
		assert.False(t, sel.IsComplete())

		sel.SetCardField(payment.FieldCardNumber, "4111111111111111")
		sel.SetCardField(payment.FieldSecurityCode, "123")
		assert.False(t, sel.IsComplete())

		sel.SetCardField(payment.FieldExpiry, "12/29")
		assert.True(t, sel.IsComplete())
	})

	t.Run("switching_away_discards_card_details", func(t *testing.T) {
		sel := payment.NewSelection()
		sel.SelectMethod(payment.MethodCreditCard)
		sel.SetCardField(payment.FieldCardNumber, "4111111111111111")
		sel.SetCardField(payment.FieldSecurityCode, "123")
		sel.SetCardField(payment.FieldExpiry, "12/29")
		assert.True(t, sel.IsComplete())

		sel.SelectMethod(payment.MethodCash)
		sel.SelectMethod(payment.MethodCreditCard)

		// re-entry required
		assert.False(t, sel.IsComplete())
		_, card := sel.Current()
		assert.Empty(t, card.CardNumber)
		assert.Empty(t, card.SecurityCode)
		assert.Empty(t, card.Expiry)
	})
}

func TestSelection_SetCardField(t *testing.T) {
	t.Run("rejected_when_method_is_not_credit_card", func(t *testing.T) {
		sel := payment.NewSelection()
		assert.False(t, sel.SetCardField(payment.FieldCardNumber, "4111"))

		_, card := sel.Current()
		assert.Empty(t, card.CardNumber)
	})

	t.Run("unknown_field_is_rejected", func(t *testing.T) {
		sel := payment.NewSelection()
		sel.SelectMethod(payment.MethodCreditCard)
		assert.False(t, sel.SetCardField(payment.Field("pin"), "0000"))
	})
}
