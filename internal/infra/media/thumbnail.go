package media

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"log/slog"
	"strings"

	// Register decoders for the image formats merchants upload.
	_ "image/gif"
	_ "image/jpeg"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"golang.org/x/image/draw"
)

const defaultThumbnailMaxWidth = 200

// thumbnailService implements service.ThumbnailService. It reads a stored
// product image, scales it down to the configured width when it is wider,
// and stores the result next to the original.
type thumbnailService struct {
	store    service.MediaStore
	maxWidth int
	logger   *slog.Logger
}

// NewThumbnailService is the constructor for thumbnailService.
func NewThumbnailService(store service.MediaStore, cfg *config.Config, logger *slog.Logger) service.ThumbnailService {
	maxWidth := defaultThumbnailMaxWidth
	if cfg.Media != nil && cfg.Media.ThumbnailMaxWidth > 0 {
		maxWidth = cfg.Media.ThumbnailMaxWidth
	}

	return &thumbnailService{
		store:    store,
		maxWidth: maxWidth,
		logger:   logger,
	}
}

// Generate derives a thumbnail for the image stored at imageKey. It returns
// the thumbnail key, or an empty string when the source is already narrow
// enough and no thumbnail is needed.
func (s *thumbnailService) Generate(ctx context.Context, imageKey string) (string, error) {
	data, err := s.store.Load(ctx, imageKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to load source image")
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "failed to decode source image")
	}

	bounds := src.Bounds()
	if bounds.Dx() <= s.maxWidth {
		return "", nil
	}

	scaled := scaleToWidth(src, s.maxWidth)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", errors.Wrap(err, "failed to encode thumbnail")
	}

	thumbnailKey := ThumbnailKeyFor(imageKey)
	if err := s.store.Save(ctx, thumbnailKey, buf.Bytes(), "image/png"); err != nil {
		return "", errors.Wrap(err, "failed to store thumbnail")
	}

	s.logger.Debug("Thumbnail generated",
		slog.String("imageKey", imageKey),
		slog.String("thumbnailKey", thumbnailKey),
		slog.Int("sourceWidth", bounds.Dx()),
		slog.Int("thumbnailWidth", s.maxWidth),
	)

	return thumbnailKey, nil
}

// scaleToWidth resamples the image to the target width, preserving aspect ratio.
func scaleToWidth(src image.Image, width int) image.Image {
	bounds := src.Bounds()
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	return dst
}

// ThumbnailKeyFor derives the storage key of an image's thumbnail. The
// extension becomes .png since thumbnails are always re-encoded.
func ThumbnailKeyFor(imageKey string) string {
	base := imageKey
	if idx := strings.LastIndex(imageKey, "."); idx > strings.LastIndex(imageKey, "/") {
		base = imageKey[:idx]
	}

	return base + "_thumb.png"
}
