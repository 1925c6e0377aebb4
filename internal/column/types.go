package column

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Section represents a rectangular tied-column cross section with a
// rectangular bar grid. The local axes are:
// - Depth is measured from the extreme compression fiber (top) downward
// - Bending is about the strong axis (moment arm along H)
type Section struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Material properties (kgf/cm²)
	Fc float64 `json:"fc"` // Concrete compressive strength
	Fy float64 `json:"fy"` // Steel yield strength

	// Geometry (cm)
	B     float64 `json:"b"`     // Section width
	H     float64 `json:"h"`     // Total depth
	Cover float64 `json:"cover"` // Clear cover to bar centroid

	// Bar grid
	BarArea float64 `json:"bar_area"` // Area of a single bar (cm²)
	Nx      int     `json:"nx"`       // Bars along each of the top and bottom faces
	Ny      int     `json:"ny"`       // Bar rows along the depth (top and bottom included)
}

// RebarLayer represents the reinforcement lumped at one depth
type RebarLayer struct {
	DepthFromTop float64 // cm, from the extreme compression fiber
	Area         float64 // cm², total steel at this depth
}

// Validate checks the section definition against the builder invariants
func (s *Section) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"f'c", s.Fc},
		{"fy", s.Fy},
		{"b", s.B},
		{"h", s.H},
		{"cover", s.Cover},
		{"bar area", s.BarArea},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{msg: fmt.Sprintf("%s must be a finite number", f.name)}
		}
		if f.value <= 0 {
			return &ValidationError{msg: fmt.Sprintf("%s must be positive", f.name)}
		}
	}
	if s.H <= 2*s.Cover {
		return &ValidationError{msg: fmt.Sprintf("h (%.2f cm) must exceed twice the cover (%.2f cm)", s.H, s.Cover)}
	}
	if s.Nx < 1 {
		return &ValidationError{msg: "nx must be at least 1"}
	}
	if s.Ny < 2 {
		return &ValidationError{msg: "ny must be at least 2 (top and bottom rows)"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// GeometryError signals a geometrically degenerate reinforcement layout,
// e.g. a side-layer spacing that is not strictly positive
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string {
	return e.msg
}

// LoadFromFile loads a column section definition from a JSON file
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var sec Section
	if err := json.Unmarshal(data, &sec); err != nil {
		return nil, err
	}

	if err := sec.Validate(); err != nil {
		return nil, err
	}

	return &sec, nil
}
