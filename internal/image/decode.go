package imagepkg

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	// imaging registers jpeg, png, gif, bmp and tiff; webp comes from x/image.
	_ "golang.org/x/image/webp"
)

// Open decodes the image file at path.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// Decode reads an image in any registered format from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
