package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/matches")
	{
		group.GET("/open", h.ListOpen) // Teams looking for opponents
	}
}
