package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gearlogo/internal/core"
	"github.com/vovakirdan/gearlogo/internal/layout"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorFrame:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorGear:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorRack:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorEpicyclic: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorTravel:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// DrawScene outlines every element at its initial position, plus the white
// gear's travel path. Elements with a warning are drawn in the warning color.
func DrawScene(s *core.Sketch, scene layout.Scene, warnings []layout.Warning) {
	warned := make(map[layout.ElementID]bool, len(warnings))
	for _, w := range warnings {
		warned[w.Element] = true
	}
	color := func(id layout.ElementID, c core.Color) core.Color {
		if warned[id] {
			return core.ColorWarning
		}
		return c
	}

	s.DrawBox(scene.Canvas, core.ColorFrame)

	if white, ok := scene.Get(layout.GearWhite); ok {
		s.DrawLine(white.Position, white.Position.Add(white.Travel), '·', core.ColorTravel)
	}

	for _, p := range scene.Elements {
		switch p.ID {
		case layout.RackWhite:
			// Shares the black rack's outline.
		case layout.RackBlack:
			c := core.ColorRack
			if warned[layout.RackWhite] || warned[layout.RackBlack] {
				c = core.ColorWarning
			}
			s.DrawBox(p.Bounds(), c)
		case layout.GearBlack, layout.GearWhite:
			s.DrawCircle(p.Position, p.Size.X/2, 'o', color(p.ID, core.ColorGear))
		case layout.Epicyclic:
			s.DrawCircle(p.Position, p.Size.X/2, '*', color(p.ID, core.ColorEpicyclic))
		}
	}

}

// RenderSketch converts a sketch to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderSketch(s *core.Sketch) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
