package booking

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/court-booking-web/internal/backend"
)

// ScheduleInvalidator drops cached availability once a booking changes it.
type ScheduleInvalidator interface {
	Invalidate(ctx context.Context, venueID, date string) error
}

type Service interface {
	// Submit sends a built request to the backend. It is never retried.
	Submit(ctx context.Context, req *Request) (*Result, error)
	Lookup(ctx context.Context, q Query) (*Result, error)
}

type service struct {
	api       backend.API
	schedules ScheduleInvalidator
}

func NewService(api backend.API, schedules ScheduleInvalidator) Service {
	return &service{api: api, schedules: schedules}
}

func (s *service) Submit(ctx context.Context, req *Request) (*Result, error) {
	log := zerolog.Ctx(ctx)

	resp, err := s.api.CreateBooking(ctx, backend.CreateBookingRequest(*req))
	if err != nil {
		var se *backend.StatusError
		if errors.As(err, &se) {
			log.Info().Int("status", se.StatusCode).Str("court_id", req.CourtID).Str("time", req.Time).Msg("booking rejected by backend")
			return nil, &SubmissionError{Kind: KindRejected, Message: se.Message, Err: err}
		}
		log.Warn().Err(err).Str("court_id", req.CourtID).Msg("booking submission failed")
		return nil, &SubmissionError{Kind: KindUnreachable, Err: err}
	}

	if !resp.Success || resp.Booking == nil || resp.Booking.BookingCode == "" {
		log.Info().Str("court_id", req.CourtID).Str("time", req.Time).Str("reason", resp.Error).Msg("booking not accepted")
		return nil, &SubmissionError{Kind: KindRejected, Message: resp.Error}
	}

	if s.schedules != nil {
		if err := s.schedules.Invalidate(ctx, req.CourtID, req.Date); err != nil {
			log.Warn().Err(err).Str("court_id", req.CourtID).Str("date", req.Date).Msg("schedule cache invalidation failed")
		}
	}

	log.Info().Str("booking_code", resp.Booking.BookingCode).Str("court_id", req.CourtID).Msg("booking created")
	return newResult(resp.Booking), nil
}

func (s *service) Lookup(ctx context.Context, q Query) (*Result, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}

	b, err := s.api.CheckBooking(ctx, filter)
	if err != nil {
		var se *backend.StatusError
		if errors.As(err, &se) {
			return nil, &LookupError{Kind: KindNotFound, Message: se.Message, Err: err}
		}
		zerolog.Ctx(ctx).Warn().Err(err).Str("mode", string(q.mode)).Msg("booking lookup failed")
		return nil, &LookupError{Kind: KindUnreachable, Err: err}
	}

	return newResult(b), nil
}

func newResult(b *backend.Booking) *Result {
	return &Result{
		BookingCode: b.BookingCode,
		Status:      b.Status,
		Name:        b.Name,
		Court:       b.Court,
		Date:        b.Date,
		Time:        b.Time,
		Price:       b.Price,
	}
}
