package dragon

import (
	"errors"
	"math"
)

const (
	// FitMargin is the fraction of each half-viewport the curve may fill.
	FitMargin = 0.95 * 0.5

	// MinExtent is the smallest per-axis deviation from the centroid used
	// when computing the fit scale. A curve with no extent on an axis (the
	// unfolded segment has none in Y) is clamped to it so the scale stays
	// finite; the clamped axis never binds unless both axes are degenerate.
	MinExtent = 1e-9
)

var (
	// ErrEmptyCurve is returned by FitToScreen when there are no vertices.
	ErrEmptyCurve = errors.New("dragon: fit of empty curve")

	// ErrEmptyViewport is returned by FitToScreen when the viewport has no
	// area.
	ErrEmptyViewport = errors.New("dragon: fit to empty viewport")
)

// FitToScreen returns the transform that centers vertices in a viewport of
// the given size and scales them uniformly so that their extent around the
// centroid stays inside 95% of the viewport on both axes:
//
//	Translate(width/2, height/2) * Scale(s) * Translate(-centroid)
func FitToScreen(vertices []Vec2, width, height float64) (Affine, error) {
	if len(vertices) == 0 {
		return Identity, ErrEmptyCurve
	}
	if !(width > 0) || !(height > 0) {
		return Identity, ErrEmptyViewport
	}

	center := Centroid(vertices)

	var maxX, maxY float64
	for _, v := range vertices {
		d := v.Sub(center)
		maxX = math.Max(maxX, math.Abs(d.X))
		maxY = math.Max(maxY, math.Abs(d.Y))
	}
	maxX = math.Max(maxX, MinExtent)
	maxY = math.Max(maxY, MinExtent)

	xBound := width * FitMargin
	yBound := height * FitMargin
	s := math.Min(xBound/maxX, yBound/maxY)

	toOrigin := Translate(-center.X, -center.Y)
	toCenter := Translate(width/2, height/2)
	return Mul(toCenter, Mul(Scale(s), toOrigin)), nil
}

// Centroid returns the arithmetic mean of vertices, or the origin if there
// are none.
func Centroid(vertices []Vec2) Vec2 {
	if len(vertices) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(vertices)))
}

// Bounds returns the axis-aligned bounding box of vertices.
func Bounds(vertices []Vec2) Rect {
	if len(vertices) == 0 {
		return Rect{}
	}
	minX, minY := vertices[0].X, vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range vertices[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
