package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes. The session is optional at the
// routing level; Create reports a missing session itself.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.POST("", h.Create)
		group.GET("/check", h.Check) // By code or phone
	}
}
