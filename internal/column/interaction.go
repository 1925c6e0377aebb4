package column

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gorcc/internal/aci"
)

// Internal forces are computed in kgf and kgf·cm and reported in t and t-m
const (
	forceScale  = 1000.0   // kgf per t
	momentScale = 100000.0 // kgf·cm per t-m
)

// NeutralAxisRatios is the fixed descending ladder of c/h ratios swept to
// trace the interaction envelope. Larger ratios sit near pure compression,
// smaller ones near pure tension, so the emitted points need no sorting.
var NeutralAxisRatios = []float64{
	2.0, 1.5, 1.2, 1.1, 1.0,
	0.9, 0.8, 0.7, 0.6, 0.55,
	0.5, 0.45, 0.4, 0.35, 0.3,
	0.25, 0.2, 0.15, 0.1, 0.05,
}

// CapacityPoint is one nominal capacity state on the interaction envelope
type CapacityPoint struct {
	M float64 `json:"m"` // Nominal moment Mn (t-m)
	P float64 `json:"p"` // Nominal axial force Pn (t), positive = compression
}

// Diagram is the ordered nominal P-M interaction envelope:
// pure compression first, then the neutral-axis sweep, pure tension last
type Diagram struct {
	Points   []CapacityPoint `json:"points"`
	Po       float64         `json:"po"`        // Pure compression capacity (t)
	MoApprox float64         `json:"mo_approx"` // Largest swept moment (t-m), not a true peak solve
}

// ComputeDiagram builds the section model and sweeps the neutral-axis
// ladder to produce the nominal interaction diagram. It is a pure function
// of the section definition; identical inputs yield identical output.
func (s *Section) ComputeDiagram() (*Diagram, error) {
	model, err := s.BuildModel()
	if err != nil {
		return nil, err
	}

	diagram := &Diagram{
		Points: make([]CapacityPoint, 0, len(NeutralAxisRatios)+2),
	}

	// Pure compression: concrete on the net area plus all steel at yield
	po := 0.85*s.Fc*(model.Ag-model.Ast) + s.Fy*model.Ast
	diagram.Po = po / forceScale
	diagram.Points = append(diagram.Points, CapacityPoint{M: 0, P: diagram.Po})

	moments := make([]float64, 0, len(NeutralAxisRatios))
	for _, r := range NeutralAxisRatios {
		pt, err := s.SolvePoint(r*s.H, model)
		if err != nil {
			return nil, err
		}
		diagram.Points = append(diagram.Points, pt)
		moments = append(moments, pt.M)
	}
	diagram.MoApprox = floats.Max(moments)

	// Pure tension: steel alone at yield, concrete cracked through
	pt := -s.Fy * model.Ast
	diagram.Points = append(diagram.Points, CapacityPoint{M: 0, P: pt / forceScale})

	return diagram, nil
}

// SolvePoint resolves force equilibrium for a fixed neutral-axis depth c
// (cm, from the extreme compression fiber) into one capacity point.
// Moments are taken about the geometric mid-depth of the section.
func (s *Section) SolvePoint(c float64, model *SectionModel) (CapacityPoint, error) {
	if c <= 0 {
		return CapacityPoint{}, fmt.Errorf("neutral-axis depth must be positive, got %.4f", c)
	}

	// Equivalent stress block, capped at the section depth
	a := model.Beta1 * c
	if a > s.H {
		a = s.H
	}

	// Concrete block force and its moment about mid-depth
	cc := 0.85 * s.Fc * s.B * a
	pn := cc
	mn := cc * (s.H/2 - a/2)

	for _, layer := range model.Layers {
		// Linear strain compatibility: εcu at the top fiber, zero at c
		strain := aci.EpsilonCU * (c - layer.DepthFromTop) / c

		// Elastic-perfectly-plastic steel, positive = compression
		fs := strain * aci.Es
		fs = math.Min(fs, s.Fy)
		fs = math.Max(fs, -s.Fy)

		force := fs * layer.Area
		pn += force
		mn += force * (s.H/2 - layer.DepthFromTop)
	}

	return CapacityPoint{M: mn / momentScale, P: pn / forceScale}, nil
}

// CapacityAt interpolates the envelope moment capacity at an axial load p
// (t). The emitted point sequence is non-increasing in P, so the envelope
// is walked as a polyline from Po down to Pt.
func (d *Diagram) CapacityAt(p float64) (float64, error) {
	if len(d.Points) < 2 {
		return 0, fmt.Errorf("diagram has no envelope")
	}
	first := d.Points[0]
	last := d.Points[len(d.Points)-1]
	if p > first.P || p < last.P {
		return 0, fmt.Errorf("axial load %.2f t is outside the envelope range [%.2f, %.2f]", p, last.P, first.P)
	}

	for i := 0; i < len(d.Points)-1; i++ {
		hi, lo := d.Points[i], d.Points[i+1]
		if p > hi.P || p < lo.P {
			continue
		}
		if hi.P == lo.P {
			return math.Max(hi.M, lo.M), nil
		}
		t := (hi.P - p) / (hi.P - lo.P)
		return hi.M + t*(lo.M-hi.M), nil
	}
	return last.M, nil
}

// Contains reports whether a factored (Pu, Mu) pair lies within the nominal
// envelope. The section is symmetric, so the moment sign is immaterial.
func (d *Diagram) Contains(pu, mu float64) bool {
	capacity, err := d.CapacityAt(pu)
	if err != nil {
		return false
	}
	return math.Abs(mu) <= capacity
}
