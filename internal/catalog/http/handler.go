package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/court-booking-web/internal/catalog"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/request"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/response"
)

type Handler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *Handler {
	return &Handler{service: service}
}

// Sports lists the sport categories, led by the "all" option.
func (h *Handler) Sports(c *gin.Context) {
	sports := h.service.Sports()
	items := make([]SportResponse, 0, len(sports)+1)
	items = append(items, SportResponse{Value: "all", Label: "Semua Olahraga"})
	for _, s := range sports {
		items = append(items, SportResponse{Value: string(s), Label: string(s)})
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) List(c *gin.Context) {
	var req ListVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}
	req.Normalize()

	sport, err := catalog.ParseSport(req.Sport)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := catalog.Filter{
		Query:    req.Query,
		Sport:    sport,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}
