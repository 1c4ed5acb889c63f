package backend

import (
	"bytes"
	"encoding/json"
)

// The JSON shapes below are dictated by the venue backend and must not drift.

// ScheduleEntry is one existing booking returned by GET /bookings/schedule.
type ScheduleEntry struct {
	TimeSlot     string `json:"timeSlot"`
	FindOpponent bool   `json:"findOpponent"`
	TeamName     string `json:"teamName,omitempty"`
	Contact      string `json:"contact,omitempty"`
}

// CreateBookingRequest is the body of POST /bookings. The first eight fields
// are what the backend requires; the contact fields ride along so the venue
// can reach the person who booked, and the backend may ignore them.
type CreateBookingRequest struct {
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

// CreateBookingResponse is the envelope returned by POST /bookings.
type CreateBookingResponse struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Booking is a booking record as the backend reports it.
type Booking struct {
	BookingCode string `json:"bookingCode"`
	Status      string `json:"status"`
	Name        string `json:"name"`
	Court       string `json:"court"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Price       int64  `json:"price"`
}

// OpenMatch is one entry of GET /matches/open.
type OpenMatch struct {
	ID         FlexID `json:"id"`
	TeamName   string `json:"teamName"`
	Sport      string `json:"sport"`
	SkillLevel string `json:"skillLevel,omitempty"`
	Court      string `json:"court"`
	Time       string `json:"time"`
	Contact    string `json:"contact"`
	Date       string `json:"date"`
}

type errorBody struct {
	Error string `json:"error"`
}

// FlexID accepts identifiers encoded either as JSON strings or numbers.
type FlexID string

func (id *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}
