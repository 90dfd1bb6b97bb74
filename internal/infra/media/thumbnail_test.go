package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is a test double keeping objects in a map.
type memoryStore struct {
	objects map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string][]byte)}
}

func (s *memoryStore) Save(_ context.Context, key string, data []byte, _ string) error {
	s.objects[key] = data

	return nil
}

func (s *memoryStore) Load(_ context.Context, key string) ([]byte, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}

	return data, nil
}

func encodeTestImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newTestThumbnailService(store *memoryStore, maxWidth int) *thumbnailService {
	cfg := &config.Config{
		Media: &config.MediaConfig{ThumbnailMaxWidth: maxWidth},
	}

	return NewThumbnailService(store, cfg, slog.New(slog.DiscardHandler)).(*thumbnailService)
}

func TestThumbnailService_Generate_WideImage(t *testing.T) {
	store := newMemoryStore()
	store.objects["products/wide.png"] = encodeTestImage(t, 400, 300)

	svc := newTestThumbnailService(store, 200)

	key, err := svc.Generate(context.Background(), "products/wide.png")
	require.NoError(t, err)
	assert.Equal(t, "products/wide_thumb.png", key)

	thumbData, ok := store.objects[key]
	require.True(t, ok)

	thumb, err := png.Decode(bytes.NewReader(thumbData))
	require.NoError(t, err)
	assert.Equal(t, 200, thumb.Bounds().Dx())
	// Aspect ratio preserved: 300 * 200 / 400 = 150.
	assert.Equal(t, 150, thumb.Bounds().Dy())
}

func TestThumbnailService_Generate_NarrowImageSkipped(t *testing.T) {
	store := newMemoryStore()
	store.objects["products/narrow.png"] = encodeTestImage(t, 150, 150)

	svc := newTestThumbnailService(store, 200)

	key, err := svc.Generate(context.Background(), "products/narrow.png")
	require.NoError(t, err)
	assert.Empty(t, key)
	assert.Len(t, store.objects, 1)
}

func TestThumbnailService_Generate_ExactWidthSkipped(t *testing.T) {
	store := newMemoryStore()
	store.objects["products/exact.png"] = encodeTestImage(t, 200, 100)

	svc := newTestThumbnailService(store, 200)

	key, err := svc.Generate(context.Background(), "products/exact.png")
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestThumbnailService_Generate_MissingSource(t *testing.T) {
	store := newMemoryStore()
	svc := newTestThumbnailService(store, 200)

	_, err := svc.Generate(context.Background(), "products/missing.png")
	assert.Error(t, err)
}

func TestThumbnailService_Generate_CorruptImage(t *testing.T) {
	store := newMemoryStore()
	store.objects["products/corrupt.png"] = []byte("definitely not an image")

	svc := newTestThumbnailService(store, 200)

	_, err := svc.Generate(context.Background(), "products/corrupt.png")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode source image")
}

func TestThumbnailKeyFor(t *testing.T) {
	tests := []struct {
		name     string
		imageKey string
		expected string
	}{
		{"with extension", "products/abc.jpeg", "products/abc_thumb.png"},
		{"png extension", "products/abc.png", "products/abc_thumb.png"},
		{"no extension", "products/abc", "products/abc_thumb.png"},
		{"dot in directory", "products.v2/abc", "products.v2/abc_thumb.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ThumbnailKeyFor(tt.imageKey))
		})
	}
}
