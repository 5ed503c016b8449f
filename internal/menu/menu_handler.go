package menu

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

func (h *Handler) List(ctx *gin.Context) {
	items := h.service.List(ctx)
	response.Success(ctx, http.StatusOK, "", ListResponse{Items: items})
}

func (h *Handler) Get(ctx *gin.Context) {
	item, err := h.service.Get(ctx, ctx.Param("itemId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", toItemResponse(item))
}
