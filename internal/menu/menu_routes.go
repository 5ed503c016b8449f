package menu

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	items := r.Group("/menu")
	{
		items.GET("", handler.List)
		items.GET("/:itemId", handler.Get)
	}
}
