package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubesim/cubesim"
)

// Each facelet renders as its letter on a block of its color.
var faceletStyles = map[cubesim.Color]lipgloss.Style{
	cubesim.White:  lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
	cubesim.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
	cubesim.Green:  lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")),
	cubesim.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("15")),
	cubesim.Red:    lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("0")),
	cubesim.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
}

func renderFacelet(col cubesim.Color) string {
	return faceletStyles[col].Render(" " + col.String())
}

func renderFaceRow(c *cubesim.Cube, f cubesim.Face, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(renderFacelet(c.FaceletAt(f, row, col)))
	}
	return b.String()
}

// RenderNet draws the cube as an unfolded net: Up on top, the four side
// faces in a Left-Front-Right-Back band, Down at the bottom.
func RenderNet(c *cubesim.Cube) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 7)

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(renderFaceRow(c, cubesim.Up, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		band := make([]string, 0, 4)
		for _, f := range []cubesim.Face{cubesim.Left, cubesim.Front, cubesim.Right, cubesim.Back} {
			band = append(band, renderFaceRow(c, f, row))
		}
		b.WriteString(strings.Join(band, " "))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(renderFaceRow(c, cubesim.Down, row))
		b.WriteString("\n")
	}

	return b.String()
}
