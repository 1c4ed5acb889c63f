package booking

import (
	"strings"

	"github.com/nekogravitycat/court-booking-web/internal/auth"
	"github.com/nekogravitycat/court-booking-web/internal/schedule"
)

// Build validates a booking and assembles the request sent to the backend.
// Checks run in a fixed order and the first failure is returned: name, then
// phone, then session.
func Build(session *auth.Session, contact Contact, sel schedule.Selection, opts MatchOptions) (*Request, error) {
	name := strings.TrimSpace(contact.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	phone := strings.TrimSpace(contact.Phone)
	if phone == "" {
		return nil, ErrMissingPhone
	}
	if session == nil || session.UserID == "" {
		return nil, ErrNoActiveSession
	}

	return &Request{
		UserID:       session.UserID,
		CourtID:      sel.VenueID,
		Date:         sel.Date,
		Time:         sel.Time,
		Price:        sel.Price,
		TeamName:     strings.TrimSpace(opts.TeamName),
		FindOpponent: opts.FindOpponent,
		FindPlayers:  opts.FindPlayers,
		Name:         name,
		Phone:        phone,
		Email:        strings.TrimSpace(contact.Email),
	}, nil
}
