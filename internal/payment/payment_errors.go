package payment

import (
	"net/http"

	"go-japastel-api/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payment input",
		http.StatusBadRequest,
	)

	ErrCardNotApplicable = apperror.New(
		apperror.CodeConflict,
		"Card details only apply to credit card payments",
		http.StatusConflict,
	)

	ErrInvalidCardField = apperror.New(
		apperror.CodeInvalidInput,
		"Card field value has an invalid format",
		http.StatusBadRequest,
	)
)

func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(validator.ValidationErrors); ok {
		return ErrInvalidInput
	}
	return err
}
