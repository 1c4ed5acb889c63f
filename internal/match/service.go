package match

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/court-booking-web/internal/backend"
)

type Service interface {
	ListOpen(ctx context.Context) ([]*Match, error)
}

type service struct {
	api backend.API
}

func NewService(api backend.API) Service {
	return &service{api: api}
}

// ListOpen returns the backend's open matches as reported, in backend order.
func (s *service) ListOpen(ctx context.Context) ([]*Match, error) {
	entries, err := s.api.OpenMatches(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("open match fetch failed")
		return nil, ErrMatchesUnavailable
	}

	matches := make([]*Match, len(entries))
	for i, e := range entries {
		matches[i] = &Match{
			ID:         string(e.ID),
			TeamName:   e.TeamName,
			Sport:      e.Sport,
			SkillLevel: e.SkillLevel,
			Court:      e.Court,
			Time:       e.Time,
			Contact:    e.Contact,
			Date:       e.Date,
		}
	}
	return matches, nil
}
