package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers catalog routes. All are public.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/sports", h.Sports)

	group := g.Group("/venues")
	{
		group.GET("", h.List)    // Filter venues by name and sport
		group.GET("/:id", h.Get) // Venue details
	}
}
