package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/court-booking-web/internal/auth"
	"github.com/nekogravitycat/court-booking-web/internal/booking"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/flight"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/response"
	"github.com/nekogravitycat/court-booking-web/internal/schedule"
)

type Handler struct {
	service   booking.Service
	schedules schedule.Service
	guard     *flight.Guard
}

func NewHandler(service booking.Service, schedules schedule.Service, guard *flight.Guard) *Handler {
	return &Handler{
		service:   service,
		schedules: schedules,
		guard:     guard,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}
	ctx := c.Request.Context()

	// Price and sport always come from the catalog.
	sel, err := h.schedules.Quote(ctx, req.VenueID, req.Date, req.Time)
	if err != nil {
		response.Error(c, err)
		return
	}

	built, err := booking.Build(
		auth.GetSession(c),
		booking.Contact{Name: req.Name, Phone: req.Phone, Email: req.Email},
		*sel,
		booking.MatchOptions{TeamName: req.TeamName, FindOpponent: req.FindOpponent, FindPlayers: req.FindPlayers},
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	release, err := h.guard.Acquire(auth.CallerKey(c) + "|booking-submit")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer release()

	res, err := h.service.Submit(ctx, built)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewConfirmationResponse(built, sel.Sport, res))
}

func (h *Handler) Check(c *gin.Context) {
	var req CheckBookingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}
	mode, value, err := req.Query()
	if err != nil {
		response.Error(c, err)
		return
	}

	form := booking.NewLookupForm()
	form.SwitchMode(mode)
	form.SetValue(value)

	release, err := h.guard.Acquire(auth.CallerKey(c) + "|booking-lookup")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer release()

	if err := form.Submit(c.Request.Context(), h.service); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(form.Result))
}
