package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smolin/blockade/internal/core"
)

// palette assigns terminal colors to the tags the game draws with: the
// standard eight for HUD text, the bright half for the block field, and
// 256-color indexes for Orange and Gray, which have no 16-color slot.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// styles is built once from the palette; SSH sessions render concurrently,
// so the map is never written after init.
var styles = func() map[core.Color]lipgloss.Style {
	m := make(map[core.Color]lipgloss.Style, len(palette))
	for tag, c := range palette {
		m[tag] = lipgloss.NewStyle().Foreground(c)
	}
	return m
}()

// RenderScreen converts a Screen buffer into a styled string. Runs of
// same-colored cells share one escape sequence, and default-colored runs are
// written bare, to keep frames small.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		current := s.GetCell(0, y).Color
		flush := func() {
			if len(run) == 0 {
				return
			}
			if style, ok := styles[current]; ok {
				sb.WriteString(style.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				flush()
				current = cell.Color
			}
			run = append(run, cell.Rune)
		}
		flush()
	}
	return sb.String()
}
