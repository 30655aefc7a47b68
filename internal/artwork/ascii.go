package artwork

import (
	"math"
	"strings"
)

// ramp orders glyphs from sparsest to densest; luminance indexes into it
// proportionally over the 0-255 range.
const ramp = " .:-=+*#%@"

// alphaFloor is the alpha below which a pixel renders as blank.
const alphaFloor = 40

// asciiArt downsamples a bitmap into at most 60 columns and 40 rows of
// ramp glyphs. Rows advance at half the horizontal step because glyphs
// are roughly twice as tall as they are wide.
func asciiArt(bm *bitmap) string {
	targetCols := min(60, bm.width)
	if targetCols <= 0 || bm.height <= 0 {
		return ""
	}
	stepX := float64(bm.width) / float64(targetCols)
	stepY := math.Max(1.0, stepX*0.5)
	rows := min(40, max(1, int(float64(bm.height)/stepY)))

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		y := min(bm.height-1, int(float64(row)*stepY))
		for col := 0; col < targetCols; col++ {
			x := min(bm.width-1, int(float64(col)*stepX))
			r, g, b, a := bm.at(x, y)
			if a < alphaFloor {
				sb.WriteByte(' ')
				continue
			}
			luminance := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
			sb.WriteByte(ramp[int(luminance/255*float64(len(ramp)-1))])
		}
	}
	return sb.String()
}
