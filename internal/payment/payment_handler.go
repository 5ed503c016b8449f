package payment

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

func (h *Handler) Selection(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	res, err := h.service.Selection(ctx, sessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) SelectMethod(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	var req SelectMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid payment input", err.Error())
		return
	}

	if err := h.service.SelectMethod(ctx, sessionID, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "Payment method selected", nil)
}

func (h *Handler) SetCardField(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	var req SetCardFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid payment input", err.Error())
		return
	}

	if err := h.service.SetCardField(ctx, sessionID, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", nil)
}
