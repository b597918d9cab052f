package dragon

import "fmt"

// curveOrigin and curveEnd form the unfolded base segment.
var (
	curveOrigin = Vec2{0, 0}
	curveEnd    = Vec2{1, 0}
)

// Curve generates dragon curve vertices into a buffer it owns. The buffer
// is cleared and refilled on every Generate call, so steady-state frames
// allocate nothing.
//
// A Curve is not safe for concurrent use.
type Curve struct {
	vertices []Vec2
}

// NewCurve returns a Curve holding the unfolded base segment.
func NewCurve() *Curve {
	return &Curve{vertices: []Vec2{curveOrigin, curveEnd}}
}

// Generate folds the base segment folds times with the given fold angle (in
// radians) and returns the resulting vertices. Negative folds are treated
// as zero. The returned slice is owned by c and is only valid until the
// next call to Generate.
func (c *Curve) Generate(folds int, angle float64) []Vec2 {
	if folds < 0 {
		folds = 0
	}
	n := VertexCount(folds)
	if cap(c.vertices) < n {
		c.vertices = make([]Vec2, 0, n)
	}
	c.vertices = append(c.vertices[:0], curveOrigin, curveEnd)
	for range folds {
		c.double(angle)
	}
	return c.vertices
}

// Vertices returns the vertices produced by the last Generate call.
func (c *Curve) Vertices() []Vec2 {
	return c.vertices
}

// double applies one fold: the path is rotated by angle around its last
// vertex and the image of every vertex except the pivot is appended in
// reverse order. A path of n vertices becomes one of 2n-1.
func (c *Curve) double(angle float64) {
	n := len(c.vertices)
	if n == 0 {
		panic("dragon: fold of an empty curve")
	}
	if globalDebug && n%2 == 0 && n != 2 {
		panic(fmt.Sprintf("dragon debug: fold of curve with %d vertices", n))
	}

	pivot := c.vertices[n-1]
	m := RotateAbout(pivot, angle)

	for i := n - 2; i >= 0; i-- {
		c.vertices = append(c.vertices, m.Apply(c.vertices[i]))
	}
}

// Generate returns the vertices of the dragon curve folded folds times with
// the given angle in a freshly allocated slice.
func Generate(folds int, angle float64) []Vec2 {
	v := NewCurve().Generate(folds, angle)
	out := make([]Vec2, len(v))
	copy(out, v)
	return out
}

// VertexCount returns the number of vertices a curve with the given number
// of folds has: 2^folds + 1.
func VertexCount(folds int) int {
	if folds < 0 {
		folds = 0
	}
	return 1<<folds + 1
}
