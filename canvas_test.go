package dragon

import (
	"math"
	"testing"
)

type recordedLine struct {
	x0, y0, x1, y1, width float64
	color                 Color
}

type recordedText struct {
	x, y  float64
	text  string
	color Color
}

// recordingCanvas is a Canvas that remembers every call.
type recordingCanvas struct {
	w, h   float64
	clears []Color
	lines  []recordedLine
	texts  []recordedText
}

func newRecordingCanvas(w, h float64) *recordingCanvas {
	return &recordingCanvas{w: w, h: h}
}

func (c *recordingCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *recordingCanvas) Clear(col Color) {
	c.clears = append(c.clears, col)
	c.lines = c.lines[:0]
	c.texts = c.texts[:0]
}

func (c *recordingCanvas) DrawLine(x0, y0, x1, y1, width float64, col Color) {
	c.lines = append(c.lines, recordedLine{x0, y0, x1, y1, width, col})
}

func (c *recordingCanvas) DrawText(x, y float64, s string, col Color) {
	c.texts = append(c.texts, recordedText{x, y, s, col})
}

func TestBuildSegmentsCount(t *testing.T) {
	for _, folds := range []int{0, 1, 5} {
		vertices := Generate(folds, 1)
		segs := BuildSegments(nil, vertices, Identity)
		if len(segs) != len(vertices)-1 {
			t.Errorf("folds=%d: %d segments, want %d", folds, len(segs), len(vertices)-1)
		}
	}
	if segs := BuildSegments(nil, []Vec2{{1, 1}}, Identity); len(segs) != 0 {
		t.Errorf("single vertex gave %d segments", len(segs))
	}
}

func TestBuildSegmentsConnected(t *testing.T) {
	vertices := Generate(6, math.Pi/2)
	m, err := FitToScreen(vertices, 640, 480)
	if err != nil {
		t.Fatal(err)
	}
	segs := BuildSegments(nil, vertices, m)
	assertVec(t, "start", segs[0].From, m.Apply(vertices[0]))
	assertVec(t, "end", segs[len(segs)-1].To, m.Apply(vertices[len(vertices)-1]))
	for i := 1; i < len(segs); i++ {
		if segs[i].From != segs[i-1].To {
			t.Fatalf("segment %d starts at %v, previous ends at %v", i, segs[i].From, segs[i-1].To)
		}
	}
}

func TestBuildSegmentsColors(t *testing.T) {
	vertices := Generate(3, 1)
	segs := BuildSegments(nil, vertices, Identity)
	for i, seg := range segs {
		assertColor(t, "segment", seg.Color, HSL(float64(i)/float64(len(vertices)-1), 0.5, 0.5))
	}
}

func TestBuildSegmentsReusesBuffer(t *testing.T) {
	buf := make([]Segment, 0, 64)
	segs := BuildSegments(buf, Generate(4, 1), Identity)
	if &segs[0] != &buf[:1][0] {
		t.Error("expected segments to be written into dst")
	}
}

func TestDrawSegments(t *testing.T) {
	c := newRecordingCanvas(100, 100)
	segs := []Segment{
		{From: Vec2{1, 2}, To: Vec2{3, 4}, Color: ColorWhite},
		{From: Vec2{3, 4}, To: Vec2{5, 6}, Color: ColorBlack},
	}
	DrawSegments(c, segs)
	if len(c.lines) != 2 {
		t.Fatalf("%d lines drawn, want 2", len(c.lines))
	}
	want := recordedLine{1, 2, 3, 4, LineWidth, ColorWhite}
	if c.lines[0] != want {
		t.Errorf("line 0 = %+v, want %+v", c.lines[0], want)
	}
	if c.lines[1].width != 2.0 {
		t.Errorf("width = %v, want 2", c.lines[1].width)
	}
}
