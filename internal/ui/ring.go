package ui

import (
	"math"
	"strings"
)

// The ring is drawn on a character grid with a 2:1 horizontal stretch so it
// reads as a circle in a terminal cell raster. Fill advances clockwise from
// twelve o'clock, mirroring the browser front end's SVG stroke-dashoffset
// animation.
const (
	ringFilledRune = '█'
	ringTrackRune  = '░'
)

// ringMask rasterizes the progress ring. The result has 2*radius+1 rows and
// 4*radius+1 columns; cells are the filled rune, the track rune, or a space.
func ringMask(radius int, progress float64) [][]rune {
	if radius < 2 {
		radius = 2
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	height := 2*radius + 1
	width := 4*radius + 1
	cx := float64(width-1) / 2
	cy := float64(radius)

	rows := make([][]rune, height)
	for y := range rows {
		row := make([]rune, width)
		for x := range row {
			dx := (float64(x) - cx) / 2
			dy := float64(y) - cy
			if math.Abs(math.Hypot(dx, dy)-float64(radius)) > 0.5 {
				row[x] = ' '
				continue
			}

			// Angle fraction measured clockwise from twelve o'clock.
			frac := math.Atan2(dx, -dy) / (2 * math.Pi)
			if frac < 0 {
				frac++
			}
			if progress > 0 && frac <= progress+1e-9 {
				row[x] = ringFilledRune
			} else {
				row[x] = ringTrackRune
			}
		}
		rows[y] = row
	}
	return rows
}

// renderRing draws the progress ring with the clock text centered inside.
// darken greys the text out, used during rest intervals.
func renderRing(radius int, progress float64, text string, darken bool, st Styles) string {
	rows := ringMask(radius, progress)
	mid := len(rows) / 2

	textRunes := []rune(text)
	textStart, textEnd := -1, -1
	if len(textRunes) > 0 && len(textRunes) <= len(rows[mid])-4 {
		textStart = (len(rows[mid]) - len(textRunes)) / 2
		textEnd = textStart + len(textRunes)
		copy(rows[mid][textStart:textEnd], textRunes)
	}

	clock := st.Clock
	if darken {
		clock = st.ClockDark
	}

	var b strings.Builder
	for y, row := range rows {
		for x, r := range row {
			switch {
			case y == mid && x >= textStart && x < textEnd:
				b.WriteString(clock.Render(string(r)))
			case r == ringFilledRune:
				b.WriteString(st.RingFilled.Render(string(r)))
			case r == ringTrackRune:
				b.WriteString(st.RingTrack.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		if y < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
