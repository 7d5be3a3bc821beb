package imagepkg

import "fmt"

// AddLogo stamps the logo at logoPath onto the background at bgPath and
// saves the flattened result as a JPEG at outPath.
func AddLogo(bgPath, logoPath, outPath string, layout Layout) (Placement, error) {
	bg, err := Open(bgPath)
	if err != nil {
		return Placement{}, err
	}
	logo, err := Open(logoPath)
	if err != nil {
		return Placement{}, err
	}

	out, p, err := Compose(bg, logo, layout)
	if err != nil {
		return Placement{}, fmt.Errorf("compose: %w", err)
	}

	if err := Save(outPath, Flatten(out), layout.Quality); err != nil {
		return Placement{}, err
	}
	return p, nil
}
