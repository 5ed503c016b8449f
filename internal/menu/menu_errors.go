package menu

import (
	"net/http"

	"go-japastel-api/internal/pkg/apperror"
)

var ErrItemNotFound = apperror.New(
	apperror.CodeNotFound,
	"Menu item not found",
	http.StatusNotFound,
)
