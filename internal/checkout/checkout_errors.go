package checkout

import (
	"net/http"

	"go-japastel-api/internal/pkg/apperror"
)

// Both failures are user-correctable; the cart and payment state stay as
// they were so the user can fix the problem and submit again.
var (
	ErrEmptyCart = apperror.New(
		"EMPTY_CART",
		"Add items to the cart before placing the order",
		http.StatusUnprocessableEntity,
	)

	ErrIncompletePayment = apperror.New(
		"INCOMPLETE_PAYMENT",
		"Fill in all credit card fields before placing the order",
		http.StatusUnprocessableEntity,
	)
)
