package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the availability grid and slot selection routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/venues/:id/schedule", h.Grid)
	g.POST("/selections", h.Select)
}
