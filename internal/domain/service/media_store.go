package service

import "context"

// MediaStore abstracts blob storage for product images, thumbnails and
// generated QR codes.
type MediaStore interface {
	// Save writes data under key, overwriting any previous object.
	Save(ctx context.Context, key string, data []byte, contentType string) error

	// Load reads the object stored under key.
	Load(ctx context.Context, key string) ([]byte, error)
}

// ThumbnailService derives a bounded-width preview from a stored product image.
type ThumbnailService interface {
	// Generate reads the image at imageKey, scales it down when it exceeds the
	// configured width and stores the result. It returns the thumbnail key, or
	// an empty string when the source is already narrow enough.
	Generate(ctx context.Context, imageKey string) (string, error)
}
