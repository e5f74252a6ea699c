// Package encoder derives the fixed matrix of responsive thumbnail artifacts
// from raw image bytes. It is pure: no filesystem, no network, every output in
// its own buffer so callers may write them out concurrently.
package encoder

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/avif"
	webpenc "github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	_ "golang.org/x/image/webp" // register webp decoding for source images

	"vaulttube/internal/domain/dto"
	"vaulttube/pkg/errors"
)

type SizeSpec struct {
	Name  string
	Width int
}

// Height derives the 16:9 height for the size's width.
func (s SizeSpec) Height() int {
	return int(math.Round(float64(s.Width) * 9.0 / 16.0))
}

type FormatSpec struct {
	Name    string
	Quality int
}

// The variant matrix is fixed: three widths, two formats, six artifacts.
var (
	Sizes = []SizeSpec{
		{Name: "small", Width: 400},
		{Name: "medium", Width: 800},
		{Name: "large", Width: 1200},
	}
	Formats = []FormatSpec{
		{Name: "webp", Quality: 85},
		{Name: "avif", Quality: 80},
	}
)

// Encode decodes src once and produces one encoded buffer per (size, format).
// An unreadable source fails the whole call. A codec failure on a single
// artifact is remembered but does not stop the remaining artifacts; the partial
// map is returned alongside the error.
func Encode(src []byte, sizes []SizeSpec, formats []FormatSpec) (map[dto.VariantKey][]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, errors.ErrDecode(err)
	}

	artifacts := make(map[dto.VariantKey][]byte, len(sizes)*len(formats))
	var firstErr error

	for _, size := range sizes {
		// Center-anchored cover fit: crop, never letterbox
		resized := imaging.Fill(img, size.Width, size.Height(), imaging.Center, imaging.Lanczos)

		for _, format := range formats {
			var buf bytes.Buffer
			if err := encodeOne(&buf, resized, format); err != nil {
				if firstErr == nil {
					firstErr = errors.ErrEncode(fmt.Sprintf("Could not encode %s %s", size.Name, format.Name), err)
				}
				continue
			}
			artifacts[dto.VariantKey{Size: size.Name, Format: format.Name}] = buf.Bytes()
		}
	}

	return artifacts, firstErr
}

func encodeOne(buf *bytes.Buffer, img *image.NRGBA, format FormatSpec) error {
	switch format.Name {
	case "webp":
		opts, err := webpenc.NewLossyEncoderOptions(webpenc.PresetDefault, float32(format.Quality))
		if err != nil {
			return err
		}
		return webp.Encode(buf, img, opts)
	case "avif":
		return avif.Encode(buf, img, avif.Options{Quality: format.Quality})
	default:
		return fmt.Errorf("unknown variant format %q", format.Name)
	}
}
