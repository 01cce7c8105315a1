package pong

import (
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Score glyph metrics on the 700x600 layout court.
const (
	digitHeight = 44
	digitWidth  = 24
	digitStroke = 6
	digitGap    = 8
)

// Segments of a seven-segment digit.
const (
	segTop = 1 << iota
	segTopRight
	segBottomRight
	segBottom
	segBottomLeft
	segTopLeft
	segMiddle
)

var digitSegments = [10]int{
	segTop | segTopRight | segBottomRight | segBottom | segBottomLeft | segTopLeft,
	segTopRight | segBottomRight,
	segTop | segTopRight | segMiddle | segBottomLeft | segBottom,
	segTop | segTopRight | segMiddle | segBottomRight | segBottom,
	segTopLeft | segMiddle | segTopRight | segBottomRight,
	segTop | segTopLeft | segMiddle | segBottomRight | segBottom,
	segTop | segTopLeft | segMiddle | segBottomLeft | segBottomRight | segBottom,
	segTop | segTopRight | segBottomRight,
	segTop | segTopRight | segBottomRight | segBottom | segBottomLeft | segTopLeft | segMiddle,
	segTop | segTopRight | segBottomRight | segBottom | segTopLeft | segMiddle,
}

// ScoreBoxes lays out score as seven-segment digits made of flat
// rectangles. x is the left edge of the first digit; the digits sit on
// ScoreBaseline.
func ScoreBoxes(f Field, x float64, score int) []core.Box {
	sx := f.Width / layoutWidth
	sy := f.Height / layoutHeight

	w := digitWidth * sx
	h := digitHeight * sy
	tx := digitStroke * sx
	ty := digitStroke * sy
	top := ScoreBaseline(f) - h

	var boxes []core.Box
	for _, r := range strconv.Itoa(score) {
		d := int(r - '0')
		if d < 0 || d > 9 {
			continue
		}
		segs := digitSegments[d]
		half := h / 2

		add := func(seg int, b core.Box) {
			if segs&seg != 0 {
				boxes = append(boxes, b)
			}
		}
		add(segTop, core.Box{X: x, Y: top, W: w, H: ty})
		add(segTopRight, core.Box{X: x + w - tx, Y: top, W: tx, H: half})
		add(segBottomRight, core.Box{X: x + w - tx, Y: top + half, W: tx, H: half})
		add(segBottom, core.Box{X: x, Y: top + h - ty, W: w, H: ty})
		add(segBottomLeft, core.Box{X: x, Y: top + half, W: tx, H: half})
		add(segTopLeft, core.Box{X: x, Y: top, W: tx, H: half})
		add(segMiddle, core.Box{X: x, Y: top + half - ty/2, W: w, H: ty})

		x += w + digitGap*sx
	}
	return boxes
}
