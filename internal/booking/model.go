package booking

import (
	"net/http"

	"github.com/nekogravitycat/court-booking-web/internal/pkg/apperror"
)

// Validation errors are detected locally and never reach the backend.
var (
	ErrMissingName     = apperror.New(http.StatusBadRequest, "name is required")
	ErrMissingPhone    = apperror.New(http.StatusBadRequest, "phone number is required")
	ErrNoActiveSession = apperror.New(http.StatusUnauthorized, "your session has ended, please sign in again")
	ErrEmptyInput      = apperror.New(http.StatusBadRequest, "please enter a booking code or phone number")
	ErrInvalidMode     = apperror.New(http.StatusBadRequest, "search mode must be code or phone")
	ErrAmbiguousQuery  = apperror.New(http.StatusBadRequest, "use either code or phone, not both")
)

// Backend outcomes. Messages are defaults; the backend's own text wins when present.
var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "booking not found")
	ErrRejected    = apperror.New(http.StatusUnprocessableEntity, "booking was not accepted")
	ErrUnreachable = apperror.New(http.StatusBadGateway, "could not reach the booking server, please try again")
)

// Contact is who the booking is for. Email is optional.
type Contact struct {
	Name  string
	Phone string
	Email string
}

type MatchOptions struct {
	TeamName     string
	FindOpponent bool
	FindPlayers  bool
}

// Request is a validated booking ready to be sent to the backend.
type Request struct {
	UserID       string `json:"userId"`
	CourtID      string `json:"courtId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Price        int64  `json:"price"`
	TeamName     string `json:"teamName"`
	FindOpponent bool   `json:"findOpponent"`
	FindPlayers  bool   `json:"findPlayers"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
}

// Result is a booking as reported by the backend. BookingCode is issued by
// the backend and passed through unchanged.
type Result struct {
	BookingCode string
	Status      string
	Name        string
	Court       string
	Date        string
	Time        string
	Price       int64
}

// Status labels used by the backend.
const (
	StatusConfirmed = "Terkonfirmasi"
	StatusPending   = "Menunggu Pembayaran"
	StatusCancelled = "Dibatalkan"
)

// StatusClass maps a backend status label to a stable display class:
// confirmed, pending, cancelled or unknown.
func StatusClass(status string) string {
	switch status {
	case StatusConfirmed:
		return "confirmed"
	case StatusPending:
		return "pending"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
