package ui

import (
	"strings"
	"testing"
)

func countRunes(rows [][]rune, r rune) int {
	n := 0
	for _, row := range rows {
		for _, c := range row {
			if c == r {
				n++
			}
		}
	}
	return n
}

func TestRingMask_Dimensions(t *testing.T) {
	radius := 6
	rows := ringMask(radius, 0)
	if len(rows) != 2*radius+1 {
		t.Fatalf("rows = %d, want %d", len(rows), 2*radius+1)
	}
	for i, row := range rows {
		if len(row) != 4*radius+1 {
			t.Fatalf("row %d width = %d, want %d", i, len(row), 4*radius+1)
		}
	}
}

func TestRingMask_ProgressExtremes(t *testing.T) {
	empty := ringMask(8, 0)
	if n := countRunes(empty, ringFilledRune); n != 0 {
		t.Fatalf("progress 0: %d filled cells, want 0", n)
	}
	if n := countRunes(empty, ringTrackRune); n == 0 {
		t.Fatalf("progress 0: no track cells, want a visible ring")
	}

	full := ringMask(8, 1)
	if n := countRunes(full, ringTrackRune); n != 0 {
		t.Fatalf("progress 1: %d track cells, want 0", n)
	}
	if n := countRunes(full, ringFilledRune); n == 0 {
		t.Fatalf("progress 1: no filled cells, want a visible ring")
	}
}

func TestRingMask_HalfFillsClockwiseFromTop(t *testing.T) {
	radius := 8
	rows := ringMask(radius, 0.5)
	mid := len(rows) / 2

	// Three o'clock (right edge of the middle row) is a quarter turn in.
	if rows[mid][len(rows[mid])-1] != ringFilledRune {
		t.Fatalf("3 o'clock cell = %q, want filled at progress 0.5", rows[mid][len(rows[mid])-1])
	}
	// Nine o'clock is three quarters in and must still be track.
	if rows[mid][0] != ringTrackRune {
		t.Fatalf("9 o'clock cell = %q, want track at progress 0.5", rows[mid][0])
	}
}

func TestRingMask_ClampsProgress(t *testing.T) {
	over := ringMask(5, 1.7)
	if n := countRunes(over, ringTrackRune); n != 0 {
		t.Fatalf("progress > 1: %d track cells, want 0", n)
	}
	under := ringMask(5, -0.3)
	if n := countRunes(under, ringFilledRune); n != 0 {
		t.Fatalf("progress < 0: %d filled cells, want 0", n)
	}
}

func TestRenderRing_CentersClockText(t *testing.T) {
	out := renderRing(8, 0.25, "00:01:30", false, Theme{}.Styles())
	lines := strings.Split(out, "\n")
	if len(lines) != 17 {
		t.Fatalf("rendered %d lines, want 17", len(lines))
	}
	if !strings.Contains(out, "0") || !strings.Contains(out, ":") {
		t.Fatalf("rendered ring does not contain the clock text: %q", out)
	}
}

func TestRenderRing_OmitsOversizedText(t *testing.T) {
	// Text wider than the ring interior is dropped rather than clipped.
	out := renderRing(2, 0, strings.Repeat("9", 40), false, Theme{}.Styles())
	if strings.Contains(out, "9") {
		t.Fatalf("oversized text was rendered into the ring")
	}
}
