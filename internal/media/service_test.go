package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/court-booking-web/internal/catalog"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/storage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 29, G: 185, B: 84, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestService(t *testing.T, handler http.Handler) (Service, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	cat, err := catalog.NewService([]catalog.Venue{
		{ID: "futsal-sintetis-1", Name: "Lapangan Futsal Sintetis A", Sport: catalog.SportFutsal, Image: srv.URL + "/futsal.png"},
		{ID: "voli-indoor-1", Name: "Lapangan Voli Indoor A", Sport: catalog.SportVoli},
	})
	require.NoError(t, err)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	return NewService(cat, store, storage.NewImageProcessor(80), srv.Client()), &hits
}

func decodeJPEG(t *testing.T, data []byte) image.Rectangle {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds()
}

func TestThumbnail(t *testing.T) {
	src := pngBytes(t, 800, 400)
	svc, hits := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(src)
	}))
	ctx := context.Background()

	data, err := svc.Thumbnail(ctx, "futsal-sintetis-1", 0, 0)
	require.NoError(t, err)
	b := decodeJPEG(t, data)
	assert.Equal(t, 400, b.Dx())
	assert.Equal(t, 200, b.Dy())

	again, err := svc.Thumbnail(ctx, "futsal-sintetis-1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, data, again)
	assert.Equal(t, int32(1), hits.Load(), "second request is served from storage")

	t.Run("Sizes are clamped", func(t *testing.T) {
		data, err := svc.Thumbnail(ctx, "futsal-sintetis-1", 5000, 1)
		require.NoError(t, err)
		b := decodeJPEG(t, data)
		assert.LessOrEqual(t, b.Dx(), MaxSize)
		assert.LessOrEqual(t, b.Dy(), MinSize)
	})
}

func TestThumbnailFailures(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	ctx := context.Background()

	_, err := svc.Thumbnail(ctx, "futsal-sintetis-1", 0, 0)
	assert.True(t, errors.Is(err, ErrImageUnavailable))

	_, err = svc.Thumbnail(ctx, "voli-indoor-1", 0, 0)
	assert.True(t, errors.Is(err, ErrImageUnavailable), "venue without an image")

	_, err = svc.Thumbnail(ctx, "basket-indoor-1", 0, 0)
	assert.True(t, errors.Is(err, catalog.ErrVenueNotFound))
}

func TestThumbnailRejectsNonImages(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))

	_, err := svc.Thumbnail(context.Background(), "futsal-sintetis-1", 0, 0)
	assert.True(t, errors.Is(err, ErrImageUnavailable))
}
