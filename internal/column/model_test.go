package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference section used across the tests: 30x50 cm column, 8 bars of
// 2.85 cm² (3 per face row, 3 rows), f'c 280 and fy 4200 kgf/cm²
func testSection() *Section {
	return &Section{
		Fc:      280,
		Fy:      4200,
		B:       30,
		H:       50,
		Cover:   4,
		BarArea: 2.85,
		Nx:      3,
		Ny:      3,
	}
}

func TestBuildModelLayerLayout(t *testing.T) {
	sec := testSection()

	model, err := sec.BuildModel()
	require.NoError(t, err)

	require.Len(t, model.Layers, 3)

	// Top and bottom rows carry nx bars, the middle row one bar per side
	assert.InDelta(t, 4.0, model.Layers[0].DepthFromTop, 1e-12)
	assert.InDelta(t, 3*2.85, model.Layers[0].Area, 1e-12)
	assert.InDelta(t, 25.0, model.Layers[1].DepthFromTop, 1e-12)
	assert.InDelta(t, 2*2.85, model.Layers[1].Area, 1e-12)
	assert.InDelta(t, 46.0, model.Layers[2].DepthFromTop, 1e-12)
	assert.InDelta(t, 3*2.85, model.Layers[2].Area, 1e-12)

	assert.InDelta(t, 1500.0, model.Ag, 1e-12)
	assert.InDelta(t, 22.8, model.Ast, 1e-12)
	assert.InDelta(t, 0.85, model.Beta1, 1e-12)
}

func TestBuildModelSideLayerCount(t *testing.T) {
	sec := testSection()
	sec.Ny = 5

	model, err := sec.BuildModel()
	require.NoError(t, err)

	require.Len(t, model.Layers, 5)

	spacing := (sec.H - 2*sec.Cover) / 4
	for i := 1; i <= 3; i++ {
		layer := model.Layers[i]
		assert.InDelta(t, sec.Cover+float64(i)*spacing, layer.DepthFromTop, 1e-12)
		assert.InDelta(t, 2*sec.BarArea, layer.Area, 1e-12)
	}
}

func TestBuildModelNoSideLayers(t *testing.T) {
	sec := testSection()
	sec.Ny = 2

	model, err := sec.BuildModel()
	require.NoError(t, err)

	require.Len(t, model.Layers, 2)
	assert.InDelta(t, sec.Cover, model.Layers[0].DepthFromTop, 1e-12)
	assert.InDelta(t, sec.H-sec.Cover, model.Layers[1].DepthFromTop, 1e-12)
	assert.InDelta(t, 2*3*2.85, model.Ast, 1e-12)
}

func TestValidateRejectsInvalidSections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Section)
	}{
		{"zero fc", func(s *Section) { s.Fc = 0 }},
		{"negative fy", func(s *Section) { s.Fy = -4200 }},
		{"zero width", func(s *Section) { s.B = 0 }},
		{"zero depth", func(s *Section) { s.H = 0 }},
		{"zero cover", func(s *Section) { s.Cover = 0 }},
		{"zero bar area", func(s *Section) { s.BarArea = 0 }},
		{"cover at half depth", func(s *Section) { s.Cover = 25 }},
		{"cover beyond half depth", func(s *Section) { s.Cover = 30 }},
		{"nx below one", func(s *Section) { s.Nx = 0 }},
		{"ny below two", func(s *Section) { s.Ny = 1 }},
		{"NaN strength", func(s *Section) { s.Fc = math.NaN() }},
		{"infinite depth", func(s *Section) { s.H = math.Inf(1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sec := testSection()
			tc.mutate(sec)

			err := sec.Validate()
			require.Error(t, err)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidateAcceptsReferenceSection(t *testing.T) {
	require.NoError(t, testSection().Validate())
}

func TestBuildModelRejectsInvalidSection(t *testing.T) {
	sec := testSection()
	sec.Ny = 0

	_, err := sec.BuildModel()
	require.Error(t, err)
}
