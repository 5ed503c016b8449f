package checkout

import (
	"net/http"

	"go-japastel-api/internal/pkg/apperror"
	"go-japastel-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Finalize(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	res, err := h.service.Finalize(ctx, sessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusCreated, "Order confirmed", res)
}
