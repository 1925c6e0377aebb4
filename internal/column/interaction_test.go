package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func computeTestDiagram(t *testing.T) *Diagram {
	t.Helper()
	d, err := testSection().ComputeDiagram()
	require.NoError(t, err)
	return d
}

func TestComputeDiagramPointOrder(t *testing.T) {
	d := computeTestDiagram(t)

	// Pure compression, 20 swept states, pure tension
	require.Len(t, d.Points, len(NeutralAxisRatios)+2)
	assert.Zero(t, d.Points[0].M)
	assert.Zero(t, d.Points[len(d.Points)-1].M)
	assert.Equal(t, d.Po, d.Points[0].P)
}

func TestPureCompressionCapacity(t *testing.T) {
	d := computeTestDiagram(t)

	// Po = 0.85 f'c (Ag - Ast) + fy Ast, reported in t
	ast := 22.8
	expected := (0.85*280*(1500-ast) + 4200*ast) / 1000
	assert.InDelta(t, expected, d.Po, 1e-9)
	assert.InDelta(t, 447.3336, d.Po, 1e-4)
}

func TestPureTensionCapacity(t *testing.T) {
	d := computeTestDiagram(t)

	last := d.Points[len(d.Points)-1]
	assert.InDelta(t, -4200*22.8/1000, last.P, 1e-9)
	assert.InDelta(t, -95.76, last.P, 1e-9)
	assert.Zero(t, last.M)
}

func TestAxialForceNonIncreasing(t *testing.T) {
	d := computeTestDiagram(t)

	for i := 1; i < len(d.Points); i++ {
		assert.LessOrEqual(t, d.Points[i].P, d.Points[i-1].P+1e-9,
			"point %d: Pn increased across the sweep", i)
	}
}

func TestSolvePointStressBlockCap(t *testing.T) {
	sec := testSection()
	model, err := sec.BuildModel()
	require.NoError(t, err)

	// c = 2h gives β1·c = 85 cm > h; the block must be capped at h = 50
	pt, err := sec.SolvePoint(2*sec.H, model)
	require.NoError(t, err)

	// Cc = 0.85·280·30·50 = 357000 kgf with zero lever arm; steel layers at
	// c = 100: top yields (+4200), middle clamps to +4200, bottom stays
	// elastic at 3240 kgf/cm²
	assert.InDelta(t, 444.552, pt.P, 1e-9)
	assert.InDelta(t, 1.72368, pt.M, 1e-9)
}

func TestSolvePointCompressionClamp(t *testing.T) {
	sec := testSection()
	model, err := sec.BuildModel()
	require.NoError(t, err)

	// Far neutral axis: every layer is clamped to +fy and the symmetric
	// steel moments cancel
	pt, err := sec.SolvePoint(10*sec.H, model)
	require.NoError(t, err)

	assert.InDelta(t, (0.85*280*30*50+4200*22.8)/1000, pt.P, 1e-9)
	assert.InDelta(t, 0, pt.M, 1e-9)
}

func TestSolvePointTensionClamp(t *testing.T) {
	sec := testSection()
	model, err := sec.BuildModel()
	require.NoError(t, err)

	// Shallow neutral axis: every layer is clamped to -fy, so the total
	// steel force equals the pure tension capacity
	pt, err := sec.SolvePoint(0.5, model)
	require.NoError(t, err)

	cc := 0.85 * 280 * 30 * (0.85 * 0.5)
	assert.InDelta(t, (cc-4200*22.8)/1000, pt.P, 1e-9)
	assert.Greater(t, pt.P, -95.76)
}

func TestSolvePointRejectsNonPositiveDepth(t *testing.T) {
	sec := testSection()
	model, err := sec.BuildModel()
	require.NoError(t, err)

	_, err = sec.SolvePoint(0, model)
	require.Error(t, err)

	_, err = sec.SolvePoint(-1, model)
	require.Error(t, err)
}

func TestMoApproxIsMaxSweptMoment(t *testing.T) {
	d := computeTestDiagram(t)

	maxM := 0.0
	for _, pt := range d.Points {
		if pt.M > maxM {
			maxM = pt.M
		}
	}
	assert.Equal(t, maxM, d.MoApprox)
	assert.Greater(t, d.MoApprox, 0.0)
}

func TestComputeDiagramIdempotent(t *testing.T) {
	sec := testSection()

	first, err := sec.ComputeDiagram()
	require.NoError(t, err)
	second, err := sec.ComputeDiagram()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCapacityAtInterpolation(t *testing.T) {
	d := computeTestDiagram(t)

	// At the pure compression end the envelope carries no moment
	m, err := d.CapacityAt(d.Po)
	require.NoError(t, err)
	assert.Zero(t, m)

	// Near zero axial load the section still carries bending
	m, err = d.CapacityAt(0)
	require.NoError(t, err)
	assert.Greater(t, m, 0.0)
	assert.LessOrEqual(t, m, d.MoApprox)

	// Outside the envelope range
	_, err = d.CapacityAt(d.Po + 1)
	require.Error(t, err)
	_, err = d.CapacityAt(-200)
	require.Error(t, err)
}

func TestContains(t *testing.T) {
	d := computeTestDiagram(t)

	assert.True(t, d.Contains(100, 1))
	assert.True(t, d.Contains(100, -1))
	assert.False(t, d.Contains(100, 1000))
	assert.False(t, d.Contains(d.Po+50, 0))
	assert.True(t, d.Contains(d.Po, 0))
}
