// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging detects uploaded file types and generates downscaled JPEG
// variants of raster images. Variants wider than the source are skipped to
// avoid upscaling.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"net/http"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// MaxPixels caps the decoded size to prevent memory bombs.
// 10000x10000 = 100 million pixels, ~400 MB decoded in RGBA.
const MaxPixels = 100_000_000

// Variant describes a single downscaled size.
type Variant struct {
	Name    string // e.g. "thumb", "md"
	Width   int    // target width in pixels
	Quality int    // JPEG quality 1-100
}

// DefaultVariants are generated for every uploaded raster image.
var DefaultVariants = []Variant{
	{Name: "thumb", Width: 400, Quality: 80},
	{Name: "md", Width: 1024, Quality: 82},
}

// ProcessedImage holds one generated variant ready for upload.
type ProcessedImage struct {
	Name        string
	Width       int
	Height      int
	Data        []byte
	ContentType string // always "image/jpeg"
}

// allowedTypes are the MIME types accepted for upload.
var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/bmp":       ".bmp",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

// scalable are the types GenerateVariants can decode. GIF is excluded to
// preserve animation; SVG is vector.
var scalable = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/bmp":  true,
}

// DetectType sniffs the content type of data, recognizing SVG by its file
// name since sniffing reports it as XML or text.
func DetectType(data []byte, filename string) string {
	ct := http.DetectContentType(data)
	if strings.HasSuffix(strings.ToLower(filename), ".svg") &&
		(strings.Contains(ct, "xml") || strings.Contains(ct, "text/plain")) {
		return "image/svg+xml"
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return ct
}

// Allowed reports whether contentType may be uploaded.
func Allowed(contentType string) bool {
	_, ok := allowedTypes[contentType]
	return ok
}

// Scalable reports whether GenerateVariants can process contentType.
func Scalable(contentType string) bool {
	return scalable[contentType]
}

// Extension returns the file extension for filename, or one derived from
// contentType when the name has none.
func Extension(filename, contentType string) string {
	if ext := filepath.Ext(filename); ext != "" {
		return strings.ToLower(ext)
	}
	return allowedTypes[contentType]
}

// GenerateVariants creates a JPEG variant of the source image for each
// entry in variants that is narrower than the source.
func GenerateVariants(original []byte, variants []Variant) ([]ProcessedImage, error) {
	if len(variants) == 0 {
		variants = DefaultVariants
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode config: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("imaging: image too large: %dx%d exceeds %d pixels", cfg.Width, cfg.Height, MaxPixels)
	}

	var src image.Image
	var results []ProcessedImage
	for _, v := range variants {
		if cfg.Width <= v.Width {
			continue
		}
		if src == nil {
			if src, _, err = image.Decode(bytes.NewReader(original)); err != nil {
				return nil, fmt.Errorf("imaging: decode: %w", err)
			}
		}

		bounds := src.Bounds()
		height := int(float64(bounds.Dy()) * float64(v.Width) / float64(bounds.Dx()))
		if height < 1 {
			height = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, v.Width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: v.Quality}); err != nil {
			return nil, fmt.Errorf("imaging: encode %s: %w", v.Name, err)
		}
		results = append(results, ProcessedImage{
			Name:        v.Name,
			Width:       v.Width,
			Height:      height,
			Data:        buf.Bytes(),
			ContentType: "image/jpeg",
		})
	}
	return results, nil
}
