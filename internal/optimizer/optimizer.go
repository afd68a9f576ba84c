package optimizer

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// DefaultMaxDimension bounds the longest side of an optimized image when the
// caller does not pick one.
const DefaultMaxDimension = 1024

const jpegQuality = 85

// Optimize loads the image at path and re-encodes it as JPEG, scaled down to
// fit within a maxDim square. Images already within bounds are re-encoded at
// their original size; nothing is ever upscaled.
func Optimize(path string, maxDim int) ([]byte, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	resized := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
