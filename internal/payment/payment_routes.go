package payment

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payments := r.Group("/payment")
	{
		payments.GET("", handler.Selection)
		payments.PUT("/method", handler.SelectMethod)
		payments.PUT("/card", handler.SetCardField)
	}
}
