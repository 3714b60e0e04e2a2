package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.POST("/boards", handler.CreateBoard)
	rg.GET("/boards", handler.GetBoards)
	rg.GET("/boards/:id", handler.GetBoard)
	rg.PUT("/boards/:id", handler.UpdateBoard)
	rg.DELETE("/boards/:id", handler.DeleteBoard)
	rg.DELETE("/boards/:id/permanent", handler.PurgeBoard)
}
