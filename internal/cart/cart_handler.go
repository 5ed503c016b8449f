package cart

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

func (h *Handler) AddItem(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	req := AddItemRequest{ItemID: ctx.Param("itemId")}
	if err := h.service.AddItem(ctx, sessionID, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusCreated, "Item added to cart", nil)
}

func (h *Handler) Detail(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	res, err := h.service.Detail(ctx, sessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) Count(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	count, err := h.service.Count(ctx, sessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", CartCountResponse{Count: count})
}

func (h *Handler) UpdateQty(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid cart input", err.Error())
		return
	}

	if err := h.service.UpdateQty(ctx, sessionID, ctx.Param("itemId"), req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", nil)
}

func (h *Handler) Increment(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	if err := h.service.Increment(ctx, sessionID, ctx.Param("itemId")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", nil)
}

func (h *Handler) Decrement(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	if err := h.service.Decrement(ctx, sessionID, ctx.Param("itemId")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", nil)
}

func (h *Handler) DeleteItem(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	if err := h.service.DeleteItem(ctx, sessionID, ctx.Param("itemId")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", nil)
}

func (h *Handler) Clear(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	if err := h.service.Clear(ctx, sessionID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", nil)
}
