package section

import "fmt"

// Section is a beam cross-section defined by the vertices of a simple
// polygon in a local coordinate system:
// - Y-axis points upward (bending is about the horizontal centroidal axis)
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Modulus of elasticity, optional. When set it is used for E unless
	// overridden on the command line.
	E float64 `json:"e,omitempty"`

	// Vertices in counter-clockwise order (clockwise is accepted, the sign
	// of the area is normalized). Holes are not supported.
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 // bounding box width
	Height float64 // bounding box height
	Area   float64 // gross area

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Second moments of area about the centroidal axes
	Ixx float64 // about the horizontal axis, used for bending
	Iyy float64 // about the vertical axis

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if s.E < 0 {
		return &ValidationError{"E must not be negative"}
	}
	area, _, _ := s.calculateAreaAndCentroid()
	if area == 0 {
		return &ValidationError{"section vertices enclose no area"}
	}
	for i, v := range s.Vertices {
		if v != s.Vertices[(i+1)%len(s.Vertices)] {
			continue
		}
		return &ValidationError{msg: fmt.Sprintf("vertex %d repeats the next vertex", i+1)}
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
