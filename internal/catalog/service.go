package catalog

import (
	"context"
	"fmt"
	"slices"
)

type Service interface {
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	Sports() []Sport
}

type service struct {
	venues []Venue
	byID   map[string]int
}

// NewService builds the catalog from a loaded venue table.
// The table is copied; later changes to the argument do not leak in.
func NewService(venues []Venue) (Service, error) {
	s := &service{
		venues: make([]Venue, 0, len(venues)),
		byID:   make(map[string]int, len(venues)),
	}

	for _, v := range venues {
		if v.ID == "" {
			return nil, fmt.Errorf("venue %q has no id", v.Name)
		}
		if _, dup := s.byID[v.ID]; dup {
			return nil, fmt.Errorf("duplicate venue id %q", v.ID)
		}
		if _, err := ParseSport(string(v.Sport)); err != nil || v.Sport == "" {
			return nil, fmt.Errorf("venue %q has invalid sport %q", v.ID, v.Sport)
		}
		if v.PriceFrom < 0 {
			return nil, fmt.Errorf("venue %q has negative price", v.ID)
		}

		s.byID[v.ID] = len(s.venues)
		s.venues = append(s.venues, cloneVenue(v))
	}

	return s, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	var matched []*Venue
	for i := range s.venues {
		if filter.matches(&s.venues[i]) {
			v := cloneVenue(s.venues[i])
			matched = append(matched, &v)
		}
	}

	total := len(matched)
	if filter.PageSize <= 0 {
		return matched, total, nil
	}

	page := max(filter.Page, 1)
	start := (page - 1) * filter.PageSize
	if start >= total {
		return nil, total, nil
	}
	end := min(start+filter.PageSize, total)
	return matched[start:end], total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	v := cloneVenue(s.venues[i])
	return &v, nil
}

// Sports returns the categories in display order.
func (s *service) Sports() []Sport {
	return slices.Clone(AllSports)
}

func cloneVenue(v Venue) Venue {
	v.Facilities = slices.Clone(v.Facilities)
	return v
}
