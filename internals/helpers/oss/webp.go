package oss

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	webpMaxW    = 1600
	webpMaxH    = 1600
	webpQuality = 82
)

// EncodeWebP decodes a JPEG/PNG payload, downscales it to fit the bounding
// box and re-encodes as lossy WebP. Unsupported formats return an error and
// the caller stores the original bytes.
func EncodeWebP(raw []byte, filename string) ([]byte, error) {
	img, err := decodeImage(raw, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, webpMaxW, webpMaxH)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeImage(raw []byte, filename string) (image.Image, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(raw))
	case ".png":
		return png.Decode(bytes.NewReader(raw))
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	return img, err
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	ratio := float64(maxW) / float64(w)
	if r := float64(maxH) / float64(h); r < ratio {
		ratio = r
	}
	nw, nh := int(float64(w)*ratio), int(float64(h)*ratio)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
