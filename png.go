package assetgen

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG encodes img losslessly to path. Like SaveOBJ there is no partial
// write cleanup; callers needing atomic output should write to a temporary
// path and rename.
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrIO, path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("%w: encoding %s: %v", ErrIO, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrIO, path, err)
	}
	return nil
}

// LoadPNG decodes a PNG file, used by the preview command to show
// previously generated textures.
func LoadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrIO, path, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
