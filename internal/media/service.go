package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/nekogravitycat/court-booking-web/internal/catalog"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/apperror"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/storage"
)

var ErrImageUnavailable = apperror.New(http.StatusBadGateway, "venue image is unavailable")

const (
	DefaultWidth  = 400
	DefaultHeight = 300
	MinSize       = 16
	MaxSize       = 1080

	maxSourceSize = 10 << 20
)

type Service interface {
	// Thumbnail returns a JPEG of the venue photo fitted into width x height.
	// Zero sizes take the defaults; other sizes are clamped to [MinSize, MaxSize].
	Thumbnail(ctx context.Context, venueID string, width, height int) ([]byte, error)
}

type service struct {
	catalog    catalog.Service
	store      storage.Storage
	images     *storage.ImageProcessor
	httpClient *http.Client
	group      singleflight.Group
}

func NewService(cat catalog.Service, store storage.Storage, images *storage.ImageProcessor, httpClient *http.Client) Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &service{
		catalog:    cat,
		store:      store,
		images:     images,
		httpClient: httpClient,
	}
}

func clamp(v, def int) int {
	if v == 0 {
		return def
	}
	return min(max(v, MinSize), MaxSize)
}

func thumbPath(venueID string, w, h int) string {
	return fmt.Sprintf("thumbs/%s_%dx%d.jpg", venueID, w, h)
}

func (s *service) Thumbnail(ctx context.Context, venueID string, width, height int) ([]byte, error) {
	venue, err := s.catalog.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	w, h := clamp(width, DefaultWidth), clamp(height, DefaultHeight)
	path := thumbPath(venue.ID, w, h)
	log := zerolog.Ctx(ctx)

	if data, err := s.load(ctx, path); err == nil {
		return data, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Warn().Err(err).Str("path", path).Msg("thumbnail cache read failed")
	}

	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(path, func() (any, error) {
		src, err := s.fetch(fetchCtx, venue.Image)
		if err != nil {
			return nil, err
		}
		thumb, err := s.images.Thumbnail(bytes.NewReader(src), w, h)
		if err != nil {
			return nil, err
		}
		if err := s.store.Save(fetchCtx, path, bytes.NewReader(thumb)); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("thumbnail cache write failed")
		}
		return thumb, nil
	})
	if err != nil {
		log.Warn().Err(err).Str("venue_id", venue.ID).Msg("thumbnail generation failed")
		return nil, ErrImageUnavailable
	}
	return v.([]byte), nil
}

func (s *service) load(ctx context.Context, path string) ([]byte, error) {
	rc, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (s *service) fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("venue has no image")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxSourceSize))
}
