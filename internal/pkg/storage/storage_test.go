package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	t.Run("Save then Get", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "thumbs/a.jpg", strings.NewReader("hello")))

		rc, err := store.Get(ctx, "thumbs/a.jpg")
		require.NoError(t, err)
		defer rc.Close()

		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(got))
	})

	t.Run("Get missing object", func(t *testing.T) {
		_, err := store.Get(ctx, "thumbs/missing.jpg")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("Traversal stays inside base path", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "../../escape.txt", strings.NewReader("x")))
		rc, err := store.Get(ctx, "escape.txt")
		require.NoError(t, err, "cleaned path should land under the base dir")
		rc.Close()
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "thumbs/a.jpg"))
		require.NoError(t, store.Delete(ctx, "thumbs/a.jpg"))
		_, err := store.Get(ctx, "thumbs/a.jpg")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestImageProcessorThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 400))
	for x := 0; x < 800; x++ {
		for y := 0; y < 400; y++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	out, err := NewImageProcessor(80).Thumbnail(&buf, 200, 200)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 100, cfg.Height, "aspect ratio is preserved")

	_, err = NewImageProcessor(80).Thumbnail(strings.NewReader("not an image"), 10, 10)
	assert.Error(t, err)
}
