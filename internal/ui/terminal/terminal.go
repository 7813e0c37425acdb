// Package terminal draws the optional banner image on terminals that speak
// an inline image protocol.
package terminal

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/nfnt/resize"
)

// Protocol is an inline image protocol a terminal understands
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolKitty
	ProtocolITerm
	ProtocolSixel
)

// Banner images are scaled to fit this box, in pixels
const (
	BannerMaxWidth  = 200
	BannerMaxHeight = 200
)

// bannerKittyID lets Kitty replace the banner in place on a redraw
const bannerKittyID uint32 = 2024

func (p Protocol) String() string {
	switch p {
	case ProtocolKitty:
		return "Kitty"
	case ProtocolITerm:
		return "iTerm2"
	case ProtocolSixel:
		return "Sixel"
	default:
		return "None"
	}
}

// DetectProtocol asks the terminal what it supports, preferring Kitty over iTerm2 over Sixel
func DetectProtocol() Protocol {
	switch {
	case rasterm.IsKittyCapable():
		return ProtocolKitty
	case rasterm.IsItermCapable():
		return ProtocolITerm
	}
	if ok, _ := rasterm.IsSixelCapable(); ok {
		return ProtocolSixel
	}
	return ProtocolNone
}

// LoadImage decodes the image at path and shrinks it into a maxW x maxH box.
// Images already inside the box keep their size.
func LoadImage(path string, maxW, maxH uint) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return resize.Thumbnail(maxW, maxH, img, resize.Lanczos3), nil
}

// RenderBanner loads the banner at path and returns the escape sequence that
// draws it. It returns "" when there is no banner or no protocol.
func RenderBanner(path string, p Protocol) (string, error) {
	if path == "" || p == ProtocolNone {
		return "", nil
	}
	img, err := LoadImage(path, BannerMaxWidth, BannerMaxHeight)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	switch p {
	case ProtocolKitty:
		err = rasterm.KittyWriteImage(&buf, img, rasterm.KittyImgOpts{ImageId: bannerKittyID})
	case ProtocolITerm:
		err = rasterm.ItermWriteImage(&buf, img)
	case ProtocolSixel:
		err = rasterm.SixelWriteImage(&buf, toPaletted(img))
	default:
		return "", fmt.Errorf("unsupported image protocol %d", int(p))
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode banner for %s: %w", p, err)
	}
	return buf.String(), nil
}

// toPaletted maps img onto the Plan 9 palette, which Sixel needs
func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	out := image.NewPaletted(b, palette.Plan9)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}
