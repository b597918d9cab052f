package dragon

// LineWidth is the stroke width of every curve segment, in canvas units.
const LineWidth = 2.0

// Canvas is the drawing surface a Scene renders into. Implementations exist
// for Ebitengine screens, tcell terminals and in-memory images.
type Canvas interface {
	// Size reports the viewport size in canvas units.
	Size() (width, height float64)

	// Clear fills the whole canvas with c.
	Clear(c Color)

	// DrawLine strokes the segment (x0, y0)-(x1, y1).
	DrawLine(x0, y0, x1, y1, width float64, c Color)

	// DrawText draws s with its top-left corner at (x, y). Canvases that
	// cannot render text ignore the call.
	DrawText(x, y float64, s string, c Color)
}

// Segment is one edge of the curve in screen space.
type Segment struct {
	From, To Vec2
	Color    Color
}

// BuildSegments transforms each consecutive vertex pair with m and appends
// the resulting segments to dst[:0]. Edge i is colored by its position
// i/(len(vertices)-1) along the path.
func BuildSegments(dst []Segment, vertices []Vec2, m Affine) []Segment {
	dst = dst[:0]
	if len(vertices) < 2 {
		return dst
	}
	prev := m.Apply(vertices[0])
	for i := 1; i < len(vertices); i++ {
		next := m.Apply(vertices[i])
		dst = append(dst, Segment{
			From:  prev,
			To:    next,
			Color: SegmentColor(i-1, len(vertices)),
		})
		prev = next
	}
	return dst
}

// DrawSegments strokes every segment onto c with LineWidth.
func DrawSegments(c Canvas, segments []Segment) {
	for _, seg := range segments {
		c.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y, LineWidth, seg.Color)
	}
}
