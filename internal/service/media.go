package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"yatube/internal/model"
	"yatube/internal/storage"
)

// MediaService validates uploaded post images, downscales oversized ones and
// hands them to the object store.
type MediaService struct {
	store        storage.ImageStore
	maxSizeBytes int64
	maxDimension int
}

// StoredImage points at an uploaded attachment: the public URL plus the
// object key needed to delete it later.
type StoredImage struct {
	URL string
	Key string
}

func NewMediaService(store storage.ImageStore, maxSizeMB, maxDimension int) *MediaService {
	return &MediaService{
		store:        store,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
		maxDimension: maxDimension,
	}
}

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// UploadPostImage validates and stores a multipart image upload. JPEG and
// PNG images larger than the max dimension are scaled down to fit; GIFs pass
// through untouched to keep animation frames.
func (s *MediaService) UploadPostImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*StoredImage, error) {
	if header.Size > s.maxSizeBytes {
		return nil, model.ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return nil, model.ErrInvalidImageType
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxSizeBytes {
		return nil, model.ErrImageTooLarge
	}

	if ext != ".gif" {
		data, err = s.fitImage(data, ext)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	objectName := fmt.Sprintf("posts/%d/%02d/%s%s", now.Year(), int(now.Month()), uuid.New().String(), ext)

	url, err := s.store.Upload(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return nil, err
	}

	log.Printf("[MediaService] Stored post image: object=%s bytes=%d", objectName, len(data))
	return &StoredImage{URL: url, Key: objectName}, nil
}

// fitImage decodes the image and scales it down to the max dimension when it
// exceeds it. Images already within bounds are returned unchanged.
func (s *MediaService) fitImage(data []byte, ext string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, model.ErrInvalidImageType
	}

	bounds := img.Bounds()
	if bounds.Dx() <= s.maxDimension && bounds.Dy() <= s.maxDimension {
		return data, nil
	}

	resized := imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		format = imaging.JPEG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return nil, fmt.Errorf("encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}
