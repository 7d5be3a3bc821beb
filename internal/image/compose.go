package imagepkg

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrDegenerateLogo = errors.New("resized logo has no pixels")
	ErrOutOfBounds    = errors.New("logo does not fit inside the background")
	ErrEmptyImage     = errors.New("empty image")
)

// Layout holds the proportions used to size and place the logo.
type Layout struct {
	LogoScale    float64 // logo width as a fraction of background width
	PaddingScale float64 // top/right padding as a fraction of background width
	Quality      int     // JPEG quality of the saved result
}

func DefaultLayout() Layout {
	return Layout{LogoScale: 0.15, PaddingScale: 0.05, Quality: 95}
}

// Placement is where the resized logo ends up on the background.
type Placement struct {
	Size   image.Point
	Offset image.Point
}

func (p Placement) Rect() image.Rectangle {
	return image.Rectangle{Min: p.Offset, Max: p.Offset.Add(p.Size)}
}

// ComputePlacement sizes the logo to LogoScale of the background width,
// keeping its aspect ratio, and anchors it to the top right corner.
// Pixel counts are truncated, never rounded.
func ComputePlacement(bg, logo image.Point, layout Layout) (Placement, error) {
	if logo.X <= 0 || logo.Y <= 0 {
		return Placement{}, fmt.Errorf("logo is %dx%d: %w", logo.X, logo.Y, ErrDivisionByZero)
	}

	w := int(float64(bg.X) * layout.LogoScale)
	aspect := float64(logo.X) / float64(logo.Y)
	h := int(float64(w) / aspect)
	if w <= 0 || h <= 0 {
		return Placement{}, fmt.Errorf("logo %dx%d scaled to %dx%d: %w", logo.X, logo.Y, w, h, ErrDegenerateLogo)
	}

	pad := int(float64(bg.X) * layout.PaddingScale)
	p := Placement{
		Size:   image.Pt(w, h),
		Offset: image.Pt(bg.X-w-pad, pad),
	}

	if !p.Rect().In(image.Rectangle{Max: bg}) {
		return Placement{}, fmt.Errorf("logo rect %v, background %dx%d: %w", p.Rect(), bg.X, bg.Y, ErrOutOfBounds)
	}
	return p, nil
}

// Compose pastes a Lanczos-resized copy of logo onto a copy of bg, using
// the logo's alpha channel as mask. The background is flattened first so the
// mask blends against its stored colors, also where bg is transparent.
// Neither input is modified.
func Compose(bg, logo image.Image, layout Layout) (*image.NRGBA, Placement, error) {
	if bg == nil || logo == nil {
		return nil, Placement{}, ErrEmptyImage
	}
	bgSize := bg.Bounds().Size()
	if bgSize.X <= 0 || bgSize.Y <= 0 {
		return nil, Placement{}, fmt.Errorf("background is %dx%d: %w", bgSize.X, bgSize.Y, ErrEmptyImage)
	}

	p, err := ComputePlacement(bgSize, logo.Bounds().Size(), layout)
	if err != nil {
		return nil, Placement{}, err
	}

	canvas := Flatten(bg)
	resized := imaging.Resize(logo, p.Size.X, p.Size.Y, imaging.Lanczos)
	return imaging.Overlay(canvas, resized, p.Offset, 1.0), p, nil
}

// Flatten drops the alpha channel: colors are kept as stored and every
// pixel becomes fully opaque. Nothing is blended against a matte.
func Flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
