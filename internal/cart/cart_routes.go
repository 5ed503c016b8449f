package cart

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)

		items := carts.Group("/items/:itemId")
		{
			items.POST("", handler.AddItem)
			items.PATCH("", handler.UpdateQty)
			items.POST("/increment", handler.Increment)
			items.POST("/decrement", handler.Decrement)
			items.DELETE("", handler.DeleteItem)
		}
	}
}
