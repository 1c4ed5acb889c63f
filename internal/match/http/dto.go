package http

import (
	"github.com/nekogravitycat/court-booking-web/internal/match"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/locale"
)

type MatchResponse struct {
	ID          string `json:"id"`
	TeamName    string `json:"teamName"`
	Sport       string `json:"sport"`
	SkillLevel  string `json:"skillLevel,omitempty"`
	Court       string `json:"court"`
	Time        string `json:"time"`
	Contact     string `json:"contact"`
	Date        string `json:"date"`
	DateLabel   string `json:"dateLabel,omitempty"`
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

func NewMatchResponse(m *match.Match) MatchResponse {
	return MatchResponse{
		ID:          m.ID,
		TeamName:    m.TeamName,
		Sport:       m.Sport,
		SkillLevel:  m.SkillLevel,
		Court:       m.Court,
		Time:        m.Time,
		Contact:     m.Contact,
		Date:        m.Date,
		DateLabel:   locale.FormatDateString(m.Date),
		WhatsAppURL: m.WhatsAppURL(),
	}
}
