package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/court-booking-web/internal/match"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/response"
)

type Handler struct {
	service match.Service
}

func NewHandler(service match.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListOpen(c *gin.Context) {
	matches, err := h.service.ListOpen(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]MatchResponse, len(matches))
	for i, m := range matches {
		items[i] = NewMatchResponse(m)
	}

	c.JSON(http.StatusOK, response.NewListResponse(items))
}
