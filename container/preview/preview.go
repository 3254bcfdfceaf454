// Package preview decodes extracted texture blobs into images. It only covers
// formats with a Go decoder (PNG, JPEG, GIF, BMP); DDS and TGA payloads are
// reported as unsupported.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	_ "golang.org/x/image/bmp" // BMP decoder

	"github.com/joshuapare/epckit/pkg/types"
)

// ErrUnsupportedFormat indicates the blob is not a decodable image.
var ErrUnsupportedFormat = errors.New("preview: unsupported image format")

// Info summarizes a decodable blob without keeping the raster.
type Info struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (i Info) String() string {
	return fmt.Sprintf("%s %dx%d", i.Format, i.Width, i.Height)
}

// Decode decodes b into an image. Failures are *types.Error values of kind
// ErrKindCodec wrapping ErrUnsupportedFormat; they never affect the session.
func Decode(b []byte) (image.Image, string, error) {
	img, name, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, "", codecError(err)
	}
	return img, name, nil
}

// Describe reads only the image header.
func Describe(b []byte) (Info, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return Info{}, codecError(err)
	}
	return Info{Format: name, Width: cfg.Width, Height: cfg.Height}, nil
}

func codecError(err error) error {
	return types.Errorf(types.ErrKindCodec, types.NoOffset,
		fmt.Errorf("%w: %w", ErrUnsupportedFormat, err), "decode image")
}
