// Package media готовит предпросмотр фотографии, приложенной к сообщению.
// Фотография живет только в памяти и никуда не загружается.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/shenikar/disaster_portal/internal/models"
)

const (
	// MaxPhotoSize - ограничение формы: PNG, JPG до 10MB
	MaxPhotoSize = 10 << 20
	PreviewWidth = 480
)

var (
	ErrPhotoTooLarge = errors.New("photo exceeds the maximum allowed size")
	ErrNotImage      = errors.New("file is not an image")
)

// PreviewReader строит предпросмотр из уже прочитанных байтов файла
type PreviewReader struct {
	name string
	data []byte
}

func NewPreviewReader(name string, data []byte) *PreviewReader {
	return &PreviewReader{name: name, data: data}
}

// ReadAll читает файл формы с ограничением размера
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxPhotoSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	if len(data) > MaxPhotoSize {
		return nil, ErrPhotoTooLarge
	}
	return data, nil
}

func (r *PreviewReader) ReadPhoto(ctx context.Context) (*models.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return BuildPreview(r.name, r.data)
}

// BuildPreview проверяет тип файла и уменьшает изображение до JPEG data URL
func BuildPreview(name string, data []byte) (*models.Photo, error) {
	if len(data) > MaxPhotoSize {
		return nil, ErrPhotoTooLarge
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	if img.Bounds().Dx() > PreviewWidth {
		img = imaging.Resize(img, PreviewWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &models.Photo{
		Name:        name,
		ContentType: mt.String(),
		Size:        int64(len(data)),
		PreviewURL:  "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}
