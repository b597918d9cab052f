package dragon

import colorful "github.com/lucasb-eyer/go-colorful"

const (
	segmentSaturation = 0.5
	segmentLightness  = 0.5
)

// HSL converts a hue in [0, 1) plus saturation and lightness in [0, 1] to
// an opaque Color.
func HSL(h, s, l float64) Color {
	c := colorful.Hsl(h*360, s, l).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// SegmentColor returns the color of edge i on a path of vertexCount
// vertices. The hue runs from 0 at the first edge towards 1 at the end.
func SegmentColor(i, vertexCount int) Color {
	if vertexCount < 2 {
		return HSL(0, segmentSaturation, segmentLightness)
	}
	t := float64(i) / float64(vertexCount-1)
	return HSL(t, segmentSaturation, segmentLightness)
}
