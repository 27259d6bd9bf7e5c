// Package imagefit scales pixel dimensions to fit a bounding box while
// preserving aspect ratio.
package imagefit

import "math"

// Fit shrinks width x height to fit within maxWidth x maxHeight, keeping the
// aspect ratio. Dimensions already inside the box pass through unchanged.
// The height check runs again after the width correction because flooring
// the corrected height can still leave it one row over the limit.
func Fit(width, height, maxWidth, maxHeight int) (int, int) {
	if height > maxHeight {
		corr := float64(maxHeight) / float64(height)
		width, height = int(math.Floor(corr*float64(width))), maxHeight
	}
	if width > maxWidth {
		corr := float64(maxWidth) / float64(width)
		width, height = maxWidth, int(math.Floor(corr*float64(height)))
	}
	if height > maxHeight {
		corr := float64(maxHeight) / float64(height)
		width, height = int(math.Floor(corr*float64(width))), maxHeight
	}
	return width, height
}
