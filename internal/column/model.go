package column

import (
	"fmt"

	"github.com/alexiusacademia/gorcc/internal/aci"
)

// SectionModel is the discrete layer model derived from the bar grid
type SectionModel struct {
	Layers []RebarLayer // Ordered top to bottom
	Ag     float64      // Gross concrete area (cm²)
	Ast    float64      // Total steel area (cm²)
	Beta1  float64      // Stress block factor for the section concrete
}

// BuildModel converts the bar grid into reinforcement layers and computes
// the gross section properties.
//
// The grid places nx bars on each of the top and bottom faces and, for
// ny > 2, one bar on each side face per intermediate row. Intermediate rows
// sit at cover + i·spacing with spacing = (h - 2·cover)/(ny - 1); this
// spacing rule is part of the section definition and is kept as-is.
func (s *Section) BuildModel() (*SectionModel, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	model := &SectionModel{
		Ag:    s.B * s.H,
		Beta1: aci.Beta1(s.Fc),
	}

	// Top and bottom rows carry the full nx bar count
	model.Layers = append(model.Layers, RebarLayer{
		DepthFromTop: s.Cover,
		Area:         float64(s.Nx) * s.BarArea,
	})

	if s.Ny > 2 {
		spacing := (s.H - 2*s.Cover) / float64(s.Ny-1)
		if spacing <= 0 {
			return nil, &GeometryError{msg: fmt.Sprintf("side-layer spacing %.2f cm is not positive; cover too large for h", spacing)}
		}
		for i := 1; i <= s.Ny-2; i++ {
			model.Layers = append(model.Layers, RebarLayer{
				DepthFromTop: s.Cover + float64(i)*spacing,
				Area:         2 * s.BarArea, // one bar on each side face
			})
		}
	}

	model.Layers = append(model.Layers, RebarLayer{
		DepthFromTop: s.H - s.Cover,
		Area:         float64(s.Nx) * s.BarArea,
	})

	for _, layer := range model.Layers {
		model.Ast += layer.Area
	}

	return model, nil
}
