package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"foodpool-be/internal/logger"
	"foodpool-be/internal/metrics"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxImageBytes caps a single listing image.
const MaxImageBytes = 5 << 20

var (
	ErrEmptyFile     = errors.New("file is empty")
	ErrImageTooLarge = errors.New("image must be 5MB or smaller")
	ErrNotImage      = errors.New("only PNG, JPEG, WebP or GIF images are allowed")
)

// Raster formats only. SVG can carry script and the bucket is public.
var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp", "image/gif"}

type ImageService struct {
	objects ObjectWriter
	newName func() string
	uploads *metrics.Counter
}

func NewImageService(objects ObjectWriter) *ImageService {
	return &ImageService{
		objects: objects,
		newName: uuid.NewString,
		uploads: metrics.Default.Counter("image_uploads"),
	}
}

// Upload sniffs the content type, rejects anything that is not an allowed
// raster image and stores the file under a random name.
func (s *ImageService) Upload(ctx context.Context, r io.Reader) (string, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "UploadImage"))

	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", err
	}
	switch {
	case len(data) == 0:
		return "", ErrEmptyFile
	case len(data) > MaxImageBytes:
		return "", ErrImageTooLarge
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(contentType(mt), allowedImageTypes...) {
		log.Info("rejected upload", zap.String("mime", mt.String()))
		return "", ErrNotImage
	}

	name := s.newName() + mt.Extension()
	url, err := s.objects.Write(ctx, name, contentType(mt), data)
	if err != nil {
		log.Error("image upload failed", zap.Error(err))
		return "", err
	}

	s.uploads.Inc()
	log.Info("image uploaded", zap.String("object", name), zap.Int("bytes", len(data)))
	return url, nil
}

// contentType drops mime parameters such as charset.
func contentType(mt *mimetype.MIME) string {
	ct, _, _ := strings.Cut(mt.String(), ";")
	return ct
}
