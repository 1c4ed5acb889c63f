package http

import (
	"github.com/nekogravitycat/court-booking-web/internal/booking"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/locale"
)

// CreateBookingRequest is the booking form. Name and phone are checked by
// booking.Build so that validation errors come back in a fixed order.
type CreateBookingRequest struct {
	VenueID      string `json:"venueId" binding:"required,max=64"`
	Date         string `json:"date" binding:"omitempty,max=10"`
	Time         string `json:"time" binding:"required"`
	Name         string `json:"name" binding:"max=100"`
	Phone        string `json:"phone" binding:"max=30"`
	Email        string `json:"email" binding:"omitempty,max=254"`
	TeamName     string `json:"teamName" binding:"max=100"`
	FindOpponent bool   `json:"findOpponent"`
	FindPlayers  bool   `json:"findPlayers"`
}

// CheckBookingRequest accepts either mode+value or one of code/phone directly.
type CheckBookingRequest struct {
	Mode  string `form:"mode"`
	Value string `form:"value"`
	Code  string `form:"code"`
	Phone string `form:"phone"`
}

// Query resolves the request to a mode and search value.
func (r *CheckBookingRequest) Query() (booking.Mode, string, error) {
	switch {
	case r.Code != "" && r.Phone != "":
		return "", "", booking.ErrAmbiguousQuery
	case r.Code != "":
		return booking.ModeCode, r.Code, nil
	case r.Phone != "":
		return booking.ModePhone, r.Phone, nil
	}
	mode, err := booking.ParseMode(r.Mode)
	if err != nil {
		return "", "", err
	}
	return mode, r.Value, nil
}

type BookingResponse struct {
	BookingCode string `json:"bookingCode"`
	Status      string `json:"status,omitempty"`
	StatusClass string `json:"statusClass"`
	Name        string `json:"name,omitempty"`
	Court       string `json:"court,omitempty"`
	Date        string `json:"date,omitempty"`
	DateLabel   string `json:"dateLabel,omitempty"`
	Time        string `json:"time,omitempty"`
	Price       int64  `json:"price"`
	PriceLabel  string `json:"priceLabel"`
}

func NewBookingResponse(r *booking.Result) BookingResponse {
	return BookingResponse{
		BookingCode: r.BookingCode,
		Status:      r.Status,
		StatusClass: booking.StatusClass(r.Status),
		Name:        r.Name,
		Court:       r.Court,
		Date:        r.Date,
		DateLabel:   locale.FormatDateString(r.Date),
		Time:        r.Time,
		Price:       r.Price,
		PriceLabel:  locale.FormatRupiah(r.Price),
	}
}

// ConfirmationResponse is returned after a booking is created. Booking details
// the backend leaves out are filled in from the submitted request.
type ConfirmationResponse struct {
	BookingCode  string `json:"bookingCode"`
	VenueID      string `json:"venueId"`
	Sport        string `json:"sport"`
	Date         string `json:"date"`
	DateLabel    string `json:"dateLabel"`
	Time         string `json:"time"`
	Price        int64  `json:"price"`
	PriceLabel   string `json:"priceLabel"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	TeamName     string `json:"teamName,omitempty"`
	FindOpponent bool   `json:"findOpponent"`
	FindPlayers  bool   `json:"findPlayers"`
	Status       string `json:"status,omitempty"`
}

func NewConfirmationResponse(req *booking.Request, sport string, res *booking.Result) ConfirmationResponse {
	price := req.Price
	if res.Price > 0 {
		price = res.Price
	}
	return ConfirmationResponse{
		BookingCode:  res.BookingCode,
		VenueID:      req.CourtID,
		Sport:        sport,
		Date:         req.Date,
		DateLabel:    locale.FormatDateString(req.Date),
		Time:         req.Time,
		Price:        price,
		PriceLabel:   locale.FormatRupiah(price),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		TeamName:     req.TeamName,
		FindOpponent: req.FindOpponent,
		FindPlayers:  req.FindPlayers,
		Status:       res.Status,
	}
}
