package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// Options control rendering of a QR code image.
type Options struct {
	// Size is the output width and height in pixels.
	Size int
	// Margin is the quiet zone around the code, in modules.
	Margin int
	// Dark and Light replace the default black/white module colors.
	Dark  color.Color
	Light color.Color
}

// DefaultOptions matches the brand styling of the QR page: 300px,
// two-module quiet zone, green modules on black.
func DefaultOptions() Options {
	return Options{
		Size:   300,
		Margin: 2,
		Dark:   color.RGBA{R: 0x17, G: 0xFB, B: 0x15, A: 0xFF},
		Light:  color.Black,
	}
}

// DataURL encodes content as a QR code and returns it as a base64 PNG data
// URL suitable for an <img src>.
func DataURL(content string, opts Options) (string, error) {
	img, err := Image(content, opts)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode qr png: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Image encodes content as a QR code image at the requested size.
func Image(content string, opts Options) (image.Image, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encode qr content: %w", err)
	}

	// Scale so that code plus quiet zone fills the requested size, then
	// center the code on a margin-colored canvas.
	modules := code.Bounds().Dx()
	inner := opts.Size
	if opts.Margin > 0 && modules > 0 {
		pixelsPerModule := opts.Size / (modules + 2*opts.Margin)
		if pixelsPerModule < 1 {
			pixelsPerModule = 1
		}
		inner = modules * pixelsPerModule
	}

	scaled, err := barcode.Scale(code, inner, inner)
	if err != nil {
		return nil, fmt.Errorf("scale qr code: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Light), image.Point{}, draw.Src)

	offset := (opts.Size - inner) / 2
	target := image.Rect(offset, offset, offset+inner, offset+inner)
	drawRecolored(canvas, target, scaled, opts)

	return canvas, nil
}

// drawRecolored copies the scaled code onto the canvas, mapping its
// black/white modules to the configured dark/light colors.
func drawRecolored(dst *image.RGBA, target image.Rectangle, src image.Image, opts Options) {
	srcBounds := src.Bounds()
	for y := 0; y < target.Dy(); y++ {
		for x := 0; x < target.Dx(); x++ {
			r, g, b, _ := src.At(srcBounds.Min.X+x, srcBounds.Min.Y+y).RGBA()
			if r == 0 && g == 0 && b == 0 {
				dst.Set(target.Min.X+x, target.Min.Y+y, opts.Dark)
			} else {
				dst.Set(target.Min.X+x, target.Min.Y+y, opts.Light)
			}
		}
	}
}
