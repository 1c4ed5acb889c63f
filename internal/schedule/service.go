package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/nekogravitycat/court-booking-web/internal/backend"
	"github.com/nekogravitycat/court-booking-web/internal/catalog"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/cache"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/locale"
)

type Service interface {
	// Grid resolves the availability of venueID on date. An empty date means
	// today in the venue's time zone.
	Grid(ctx context.Context, venueID, date string) (*Grid, error)
	// Select applies the interaction policy to one slot of the grid.
	Select(ctx context.Context, venueID, date, label string) (Interaction, error)
	// Quote prices a slot from the catalog without contacting the backend.
	// The backend stays authoritative on whether the slot is still free.
	Quote(ctx context.Context, venueID, date, label string) (*Selection, error)
	// Invalidate drops any cached schedule for venueID on date.
	Invalidate(ctx context.Context, venueID, date string) error
}

type service struct {
	catalog  catalog.Service
	api      backend.API
	cache    cache.Cache
	ttl      time.Duration
	calendar Calendar
	closed   ClosedSet
	now      func() time.Time
	group    singleflight.Group
}

// NewService builds the schedule service on the default operating calendar.
// A zero ttl disables caching of backend schedules.
func NewService(cat catalog.Service, api backend.API, c cache.Cache, ttl time.Duration) Service {
	if c == nil {
		c = cache.Noop{}
	}
	return &service{
		catalog:  cat,
		api:      api,
		cache:    c,
		ttl:      ttl,
		calendar: DefaultCalendar(),
		closed:   DefaultClosed(),
		now:      time.Now,
	}
}

func (s *service) Grid(ctx context.Context, venueID, date string) (*Grid, error) {
	date, err := s.normalizeDate(date)
	if err != nil {
		return nil, err
	}

	venue, err := s.catalog.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings(ctx, venue.ID, date)
	if err != nil {
		return nil, err
	}

	return &Grid{
		VenueID: venue.ID,
		Sport:   string(venue.Sport),
		Date:    date,
		Slots:   Resolve(s.calendar, bookings, s.closed, venue.PriceFrom),
	}, nil
}

func (s *service) Select(ctx context.Context, venueID, date, label string) (Interaction, error) {
	if !s.calendar.Contains(label) {
		return Interaction{}, ErrUnknownSlot
	}
	grid, err := s.Grid(ctx, venueID, date)
	if err != nil {
		return Interaction{}, err
	}
	return grid.Select(label)
}

func (s *service) Quote(ctx context.Context, venueID, date, label string) (*Selection, error) {
	date, err := s.normalizeDate(date)
	if err != nil {
		return nil, err
	}
	if !s.calendar.Contains(label) {
		return nil, ErrUnknownSlot
	}
	if s.closed.Has(label) {
		return nil, ErrSlotNotSelectable
	}

	venue, err := s.catalog.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	return &Selection{
		VenueID: venue.ID,
		Sport:   string(venue.Sport),
		Date:    date,
		Time:    label,
		Price:   venue.PriceFrom,
	}, nil
}

func (s *service) Invalidate(ctx context.Context, venueID, date string) error {
	return s.cache.Delete(ctx, cacheKey(venueID, date))
}

func (s *service) normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return locale.Today(s.now()), nil
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(DateLayout), nil
}

func cacheKey(venueID, date string) string {
	return "schedule:" + venueID + ":" + date
}

// bookings returns the existing bookings of a venue on a date, from cache when
// possible. Concurrent misses for the same key share one backend call.
func (s *service) bookings(ctx context.Context, venueID, date string) ([]ExistingBooking, error) {
	log := zerolog.Ctx(ctx)
	key := cacheKey(venueID, date)

	var cached []ExistingBooking
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn().Err(err).Str("key", key).Msg("schedule cache read failed")
	}

	// The shared call must not die with whichever caller happened to start it.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(key, func() (any, error) {
		entries, err := s.api.Schedule(fetchCtx, venueID, date)
		if err != nil {
			return nil, err
		}

		out := make([]ExistingBooking, len(entries))
		for i, e := range entries {
			out[i] = ExistingBooking{
				TimeSlot:     e.TimeSlot,
				FindOpponent: e.FindOpponent,
				TeamName:     e.TeamName,
				Contact:      e.Contact,
			}
		}

		if s.ttl > 0 {
			if err := s.cache.Set(fetchCtx, key, out, s.ttl); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("schedule cache write failed")
			}
		}
		return out, nil
	})
	if err != nil {
		log.Warn().Err(err).Str("venue_id", venueID).Str("date", date).Msg("schedule fetch failed")
		return nil, ErrScheduleUnavailable
	}

	return v.([]ExistingBooking), nil
}
