package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/theme"
)

// monsterMask is the pixel-art creature revealed by the cumulative
// score. Each '#' is one pixel; one point lights one pixel, in reading
// order.
var monsterMask = []string{
	"..#.....#..",
	"...#...#...",
	"..#######..",
	".##.###.##.",
	"###########",
	"#.#######.#",
	"#.#.....#.#",
	"...##.##...",
}

// PixelGridTotal is the number of pixels in the creature mask.
var PixelGridTotal = countMaskPixels()

func countMaskPixels() int {
	n := 0
	for _, row := range monsterMask {
		n += strings.Count(row, "#")
	}
	return n
}

// PixelGrid renders the creature with the first score pixels lit.
// Scores beyond the mask size saturate the grid.
func PixelGrid(score int) string {
	if score < 0 {
		score = 0
	}

	on := lipgloss.NewStyle().Foreground(theme.PixelOn)
	off := lipgloss.NewStyle().Foreground(theme.Border)

	lit := 0
	var b strings.Builder
	for i, row := range monsterMask {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c != '#' {
				b.WriteString("  ")
				continue
			}
			if lit < score {
				b.WriteString(on.Render("██"))
				lit++
			} else {
				b.WriteString(off.Render("░░"))
			}
		}
	}
	return b.String()
}
