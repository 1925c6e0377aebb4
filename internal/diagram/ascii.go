package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// InteractionData holds everything the renderers need for one diagram
type InteractionData struct {
	Name string

	// Section (cm)
	Width  float64
	Height float64
	Cover  float64
	Nx     int
	Ny     int

	// Capacity points in sweep order (pure compression ... pure tension)
	Moments []float64 // t-m
	Forces  []float64 // t

	// Summary scalars
	Po       float64 // t
	MoApprox float64 // t-m
}

// DrawColumnSection creates an ASCII sketch of the column cross section
// with the bar grid
func DrawColumnSection(data InteractionData) string {
	var sb strings.Builder

	widthChars := 28
	heightChars := 16

	coverRows := int(data.Cover / data.Height * float64(heightChars))
	if coverRows < 1 {
		coverRows = 1
	}
	coverCols := int(data.Cover / data.Width * float64(widthChars))
	if coverCols < 2 {
		coverCols = 2
	}

	barRow := func(n int) string {
		inner := widthChars - 2*coverCols
		row := []rune(strings.Repeat(" ", widthChars))
		if n == 1 {
			row[widthChars/2] = '●'
		} else {
			for k := 0; k < n; k++ {
				pos := coverCols + k*inner/(n-1)
				row[pos] = '●'
			}
		}
		return string(row)
	}

	// Map each bar row onto a text line
	rowLines := make(map[int]int) // text line -> bar count
	rowLines[coverRows] = data.Nx
	rowLines[heightChars-coverRows] = data.Nx
	for i := 1; i <= data.Ny-2; i++ {
		line := coverRows + i*(heightChars-2*coverRows)/(data.Ny-1)
		if _, taken := rowLines[line]; !taken {
			rowLines[line] = 2
		}
	}

	sb.WriteString("\n")
	sb.WriteString("  COLUMN SECTION\n")
	sb.WriteString("  ──────────────\n")
	for i := 0; i <= heightChars; i++ {
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case i == heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		default:
			fill := strings.Repeat(" ", widthChars)
			if n, ok := rowLines[i]; ok {
				fill = barRow(n)
			}
			sb.WriteString(fmt.Sprintf("  │%s│", fill))
		}
		if i == 0 {
			sb.WriteString("  ◄─ compression face")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  b = %.0f cm, h = %.0f cm, cover = %.1f cm\n", data.Width, data.Height, data.Cover))
	sb.WriteString(fmt.Sprintf("  ● = reinforcement (%d per face row, %d rows)\n", data.Nx, data.Ny))

	return sb.String()
}

// DrawInteractionChart plots the capacity sequence with asciigraph. The
// sweep is ordered from pure compression to pure tension, so plotting the
// two series over the point index traces the envelope end to end.
func DrawInteractionChart(data InteractionData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  INTERACTION DIAGRAM SWEEP\n")
	sb.WriteString("  ─────────────────────────\n\n")

	sb.WriteString(asciigraph.Plot(data.Forces,
		asciigraph.Height(12),
		asciigraph.Width(58),
		asciigraph.Precision(0),
		asciigraph.Caption("Pn (t) — pure compression to pure tension"),
	))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(data.Moments,
		asciigraph.Height(10),
		asciigraph.Width(58),
		asciigraph.Precision(1),
		asciigraph.Caption("Mn (t-m) across the same sweep"),
	))
	sb.WriteString("\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
