package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/court-booking-web/internal/media"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/request"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/response"
)

type ThumbnailQuery struct {
	Width  int `form:"w" binding:"omitempty,min=0"`
	Height int `form:"h" binding:"omitempty,min=0"`
}

type Handler struct {
	service media.Service
}

func NewHandler(service media.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Thumbnail(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}
	var q ThumbnailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	data, err := h.service.Thumbnail(c.Request.Context(), uri.ID, q.Width, q.Height)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/jpeg", data)
}
