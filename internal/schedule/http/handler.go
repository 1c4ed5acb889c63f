package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/court-booking-web/internal/auth"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/flight"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/request"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/response"
	"github.com/nekogravitycat/court-booking-web/internal/schedule"
)

// ViewHeader names the client view a schedule request belongs to. When two
// requests share a view, only the most recently started one gets an answer.
const ViewHeader = "X-View-ID"

type Handler struct {
	service schedule.Service
	views   *flight.Tracker
}

func NewHandler(service schedule.Service, views *flight.Tracker) *Handler {
	return &Handler{service: service, views: views}
}

func (h *Handler) Grid(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}
	var query GridQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	view := c.GetHeader(ViewHeader)
	var ticket flight.Ticket
	if view != "" {
		ticket = h.views.Begin(auth.CallerKey(c) + "|view:" + view)
		defer h.views.Finish(ticket)
	}

	grid, err := h.service.Grid(c.Request.Context(), uri.ID, query.Date)

	if view != "" && !h.views.Current(ticket) {
		response.Error(c, flight.ErrStaleResponse)
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewGridResponse(grid))
}

func (h *Handler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	in, err := h.service.Select(c.Request.Context(), req.VenueID, req.Date, req.Time)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewInteractionResponse(in))
}
