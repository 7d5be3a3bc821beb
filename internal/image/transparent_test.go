package imagepkg

import (
	"image"
	"image/color"
	"testing"
)

func TestRemoveBackground(t *testing.T) {
	cases := []struct {
		name      string
		in        color.NRGBA
		wantAlpha uint8
	}{
		{name: "pure white", in: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, wantAlpha: 0},
		{name: "jpeg noise", in: color.NRGBA{R: 240, G: 245, B: 250, A: 255}, wantAlpha: 0},
		{name: "exactly at threshold", in: color.NRGBA{R: 225, G: 255, B: 255, A: 255}, wantAlpha: 255},
		{name: "logo ink", in: color.NRGBA{R: 20, G: 60, B: 200, A: 255}, wantAlpha: 255},
		{name: "already translucent", in: color.NRGBA{R: 0, G: 0, B: 0, A: 100}, wantAlpha: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
			img.SetNRGBA(0, 0, tc.in)

			out := RemoveBackground(img, White(), DefaultKeyThreshold)
			got := out.NRGBAAt(0, 0)
			if got.A != tc.wantAlpha {
				t.Fatalf("alpha = %d, want %d", got.A, tc.wantAlpha)
			}
			if got.R != tc.in.R || got.G != tc.in.G || got.B != tc.in.B {
				t.Fatalf("color changed: %v -> %v", tc.in, got)
			}
			if img.NRGBAAt(0, 0) != tc.in {
				t.Fatalf("input was mutated")
			}
		})
	}
}

func TestWhiteCannotBeReassigned(t *testing.T) {
	key := White()
	key.R = 0

	if got := White(); got != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("White() = %v after modifying a returned copy", got)
	}
}
