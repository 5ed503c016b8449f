package cart

import (
	"net/http"

	"go-japastel-api/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidInput = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid cart input",
	http.StatusBadRequest,
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
