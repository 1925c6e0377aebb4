package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testData() InteractionData {
	return InteractionData{
		Name:     "C-1",
		Width:    30,
		Height:   50,
		Cover:    4,
		Nx:       3,
		Ny:       3,
		Moments:  []float64{0, 1.7, 20.5, 33.7, 12.1, 0},
		Forces:   []float64{447.3, 444.6, 250.0, 91.6, -19.2, -95.8},
		Po:       447.3,
		MoApprox: 33.7,
	}
}

func TestDrawColumnSection(t *testing.T) {
	out := DrawColumnSection(testData())

	assert.Contains(t, out, "COLUMN SECTION")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "compression face")
	assert.Contains(t, out, "b = 30 cm")
}

func TestDrawColumnSectionSingleBarRow(t *testing.T) {
	data := testData()
	data.Nx = 1
	data.Ny = 2

	out := DrawColumnSection(data)
	assert.Contains(t, out, "●")
}

func TestDrawInteractionChart(t *testing.T) {
	out := DrawInteractionChart(testData())

	assert.Contains(t, out, "Pn (t)")
	assert.Contains(t, out, "Mn (t-m)")
	assert.Greater(t, strings.Count(out, "\n"), 20)
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("SUMMARY", []string{"Po = 447.3 t", "Mo ≈ 33.7 t-m"})

	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "Po = 447.3 t")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╚")
}
