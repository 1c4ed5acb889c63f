package match

import (
	"net/http"
	"strings"

	"github.com/nekogravitycat/court-booking-web/internal/pkg/apperror"
)

var ErrMatchesUnavailable = apperror.New(http.StatusBadGateway, "open matches are temporarily unavailable, please try again")

// Match is a confirmed booking whose team is looking for opponents or players.
type Match struct {
	ID         string
	TeamName   string
	Sport      string
	SkillLevel string // optional
	Court      string
	Time       string
	Contact    string
	Date       string
}

// WhatsAppURL returns the wa.me chat link for m's contact number.
func (m *Match) WhatsAppURL() string {
	return WhatsAppURL(m.Contact)
}

// WhatsAppURL builds a wa.me chat link from a phone number by keeping only its
// digits. It returns "" when the number has no digits.
func WhatsAppURL(contact string) string {
	var b strings.Builder
	for _, r := range contact {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + b.String()
}
