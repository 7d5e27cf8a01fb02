package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 90, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestBuildPreview_DownscalesLargeImage(t *testing.T) {
	data := pngBytes(t, 1200, 600)

	photo, err := BuildPreview("flood.png", data)

	require.NoError(t, err)
	assert.Equal(t, "flood.png", photo.Name)
	assert.Equal(t, "image/png", photo.ContentType)
	assert.Equal(t, int64(len(data)), photo.Size)
	require.True(t, strings.HasPrefix(photo.PreviewURL, "data:image/jpeg;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(photo.PreviewURL, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	preview, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, PreviewWidth, preview.Bounds().Dx())
	assert.Equal(t, 240, preview.Bounds().Dy())
}

func TestBuildPreview_KeepsSmallImage(t *testing.T) {
	photo, err := BuildPreview("small.png", pngBytes(t, 100, 50))

	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(photo.PreviewURL, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	preview, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 100, preview.Bounds().Dx())
}

func TestBuildPreview_RejectsNonImage(t *testing.T) {
	_, err := BuildPreview("notes.txt", []byte("water rising fast"))

	require.ErrorIs(t, err, ErrNotImage)
}

func TestReadAll_RejectsOversizedFile(t *testing.T) {
	_, err := ReadAll(bytes.NewReader(make([]byte, MaxPhotoSize+1)))

	require.ErrorIs(t, err, ErrPhotoTooLarge)
}

func TestPreviewReader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPreviewReader("x.png", pngBytes(t, 10, 10)).ReadPhoto(ctx)

	require.ErrorIs(t, err, context.Canceled)
}
