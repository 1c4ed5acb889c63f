package http

import (
	"time"

	"github.com/nekogravitycat/court-booking-web/internal/match"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/locale"
	"github.com/nekogravitycat/court-booking-web/internal/schedule"
)

// GridQuery defines the query parameters of the schedule endpoint.
type GridQuery struct {
	Date string `form:"date" binding:"omitempty,max=10"`
}

type SelectRequest struct {
	VenueID string `json:"venueId" binding:"required,max=64"`
	Date    string `json:"date" binding:"omitempty,max=10"`
	Time    string `json:"time" binding:"required"`
}

type MatchInfoResponse struct {
	TeamName    string `json:"teamName"`
	Contact     string `json:"contact"`
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

type SlotResponse struct {
	Time       string             `json:"time"`
	Status     string             `json:"status"`
	Selectable bool               `json:"selectable"`
	Price      *int64             `json:"price,omitempty"`
	PriceLabel string             `json:"priceLabel,omitempty"`
	Match      *MatchInfoResponse `json:"match,omitempty"`
}

type GridResponse struct {
	VenueID   string         `json:"venueId"`
	Sport     string         `json:"sport"`
	Date      string         `json:"date"`
	DateLabel string         `json:"dateLabel"`
	Slots     []SlotResponse `json:"slots"`
}

type SelectionResponse struct {
	VenueID    string `json:"venueId"`
	Sport      string `json:"sport"`
	Date       string `json:"date"`
	DateLabel  string `json:"dateLabel"`
	Time       string `json:"time"`
	Price      int64  `json:"price"`
	PriceLabel string `json:"priceLabel"`
}

// InteractionResponse carries either a selection or the contact of an open match.
type InteractionResponse struct {
	Selection *SelectionResponse `json:"selection,omitempty"`
	Match     *MatchInfoResponse `json:"match,omitempty"`
}

func dateLabel(date string) string {
	t, err := time.Parse(schedule.DateLayout, date)
	if err != nil {
		return ""
	}
	return locale.FormatDate(t)
}

func newMatchInfo(b *schedule.ExistingBooking) *MatchInfoResponse {
	return &MatchInfoResponse{
		TeamName:    b.TeamName,
		Contact:     b.Contact,
		WhatsAppURL: match.WhatsAppURL(b.Contact),
	}
}

func NewGridResponse(g *schedule.Grid) GridResponse {
	slots := make([]SlotResponse, len(g.Slots))
	for i, s := range g.Slots {
		slot := SlotResponse{
			Time:       s.Time,
			Status:     string(s.Kind),
			Selectable: s.Selectable(),
		}
		switch s.Kind {
		case schedule.KindAvailable:
			price := s.Price
			slot.Price = &price
			slot.PriceLabel = locale.FormatRupiah(price)
		case schedule.KindOpenMatch:
			slot.Match = newMatchInfo(s.Booking)
		}
		slots[i] = slot
	}

	return GridResponse{
		VenueID:   g.VenueID,
		Sport:     g.Sport,
		Date:      g.Date,
		DateLabel: dateLabel(g.Date),
		Slots:     slots,
	}
}

func NewInteractionResponse(in schedule.Interaction) InteractionResponse {
	if in.Match != nil {
		return InteractionResponse{Match: newMatchInfo(in.Match)}
	}
	sel := in.Selection
	return InteractionResponse{Selection: &SelectionResponse{
		VenueID:    sel.VenueID,
		Sport:      sel.Sport,
		Date:       sel.Date,
		DateLabel:  dateLabel(sel.Date),
		Time:       sel.Time,
		Price:      sel.Price,
		PriceLabel: locale.FormatRupiah(sel.Price),
	}}
}
