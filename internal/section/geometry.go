package section

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/alexiusacademia/gocbeam/internal/beam"
)

// Rectangle returns a b x h rectangular section with its bottom-left corner
// at the origin.
func Rectangle(b, h float64) *Section {
	return &Section{
		Name: fmt.Sprintf("Rectangle %gx%g", b, h),
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: b, Y: 0},
			{X: b, Y: h},
			{X: 0, Y: h},
		},
	}
}

// RectangleInertia returns b·h³/12 rounded to beam.Precision.
func RectangleInertia(b, h float64) float64 {
	return beam.Round(b * h * h * h / 12)
}

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var section Section
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, err
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}

// MomentOfInertia returns the centroidal second moment of area about the
// horizontal axis, rounded to beam.Precision.
func (s *Section) MomentOfInertia() float64 {
	return beam.Round(s.CalculateProperties().Ixx)
}

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *Properties {
	props := &Properties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = s.calculateAreaAndCentroid()

	// Second moments about the origin, shifted to the centroid
	ix, iy := s.calculateSecondMoments()
	props.Ixx = ix - props.Area*props.CentroidY*props.CentroidY
	props.Iyy = iy - props.Area*props.CentroidX*props.CentroidX

	return props
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// calculateSecondMoments returns Ix and Iy about the origin. The sign of
// the vertex order is normalized so both are positive.
func (s *Section) calculateSecondMoments() (ix, iy float64) {
	n := len(s.Vertices)
	var signedArea float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := s.Vertices[i].X, s.Vertices[i].Y
		xj, yj := s.Vertices[j].X, s.Vertices[j].Y
		cross := xi*yj - xj*yi
		signedArea += cross
		ix += cross * (yi*yi + yi*yj + yj*yj)
		iy += cross * (xi*xi + xi*xj + xj*xj)
	}

	ix /= 12
	iy /= 12
	if signedArea < 0 {
		ix, iy = -ix, -iy
	}
	return ix, iy
}
