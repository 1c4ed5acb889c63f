package schedule

import (
	"net/http"

	"github.com/nekogravitycat/court-booking-web/internal/pkg/apperror"
)

var (
	ErrInvalidDate         = apperror.New(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	ErrUnknownSlot         = apperror.New(http.StatusBadRequest, "unknown time slot")
	ErrSlotNotSelectable   = apperror.New(http.StatusConflict, "time slot is not available")
	ErrScheduleUnavailable = apperror.New(http.StatusBadGateway, "schedule is temporarily unavailable, please try again")
)

// DateLayout is the ISO calendar date used on the wire.
const DateLayout = "2006-01-02"

type Kind string

const (
	KindAvailable Kind = "available"
	KindBooked    Kind = "booked"
	KindClosed    Kind = "closed"
	KindOpenMatch Kind = "open-match"
)

// ExistingBooking is a booking already held on a slot.
type ExistingBooking struct {
	TimeSlot     string `json:"timeSlot"`
	FindOpponent bool   `json:"findOpponent"`
	TeamName     string `json:"teamName,omitempty"`
	Contact      string `json:"contact,omitempty"`
}

// SlotStatus is the resolved state of one calendar slot.
// Price is set only for available slots, Booking only for open matches.
type SlotStatus struct {
	Time    string
	Kind    Kind
	Price   int64
	Booking *ExistingBooking
}

// Selectable reports whether the slot can start a new booking.
func (s SlotStatus) Selectable() bool {
	return s.Kind == KindAvailable
}

// Grid is the availability of one venue on one date.
type Grid struct {
	VenueID string
	Sport   string
	Date    string
	Slots   []SlotStatus
}

// Selection is a slot picked for booking. Price and sport come from the
// catalog, never from the client.
type Selection struct {
	VenueID string
	Sport   string
	Date    string
	Time    string
	Price   int64
}

// Interaction is the outcome of choosing a slot on the grid. Exactly one of
// Selection or Match is set.
type Interaction struct {
	Selection *Selection
	Match     *ExistingBooking
}
