package geom2d

import (
	"math"
	"slices"
	"testing"
)

const rectIter = 100

func TestRectangleArea_ZeroValue(t *testing.T) {
	var area RectangleArea
	if got := area.Bounds(); got != (Bounds{}) {
		t.Errorf("Bounds() = %v, want (0, 0, 0, 0)", got)
	}
	if n, _ := CountPoints(&area); n != 0 {
		t.Errorf("CountPoints() = %d, want 0", n)
	}
	if !area.OnBoundaries(0, 0) {
		t.Error("the origin corner of the degenerate box should be on the boundary")
	}
	if area.OnBoundaries(1, 0) || area.OnBoundaries(0, -1) {
		t.Error("points away from the degenerate box should not be on the boundary")
	}
}

func TestRectangleArea_ExtremeBounds(t *testing.T) {
	area := NewRectangleArea(math.MinInt, math.MaxInt, math.MinInt, math.MaxInt)
	want := Bounds{math.MinInt, math.MaxInt, math.MinInt, math.MaxInt}
	if got := area.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if n, _ := CountPoints(area); n != 0 {
		t.Errorf("CountPoints() = %d, want 0 for negative width", n)
	}

	area = NewRectangleArea(0, 0, 1, 1)
	area.SetBounds(math.MinInt, math.MaxInt, math.MinInt, math.MaxInt)
	if got := area.Bounds(); got != want {
		t.Errorf("Bounds() after SetBounds = %v, want %v", got, want)
	}
}

func TestRectangleArea_PointsNearMaxInt(t *testing.T) {
	area := NewRectangleArea(math.MaxInt-1, math.MaxInt-1, 4, 4)
	want := []Point{
		PtOf(math.MaxInt-1, math.MaxInt-1), PtOf(math.MaxInt, math.MaxInt-1),
		PtOf(math.MaxInt-1, math.MaxInt), PtOf(math.MaxInt, math.MaxInt),
	}
	if got := slices.Collect(area.Points()); !slices.Equal(got, want) {
		t.Errorf("Points() = %v, want %v", got, want)
	}
}

func TestRectangleArea_OnBoundariesNearIntLimits(t *testing.T) {
	tests := []struct {
		name string
		area *RectangleArea
		x, y int
		want bool
	}{
		{"top edge past MaxInt", NewRectangleArea(math.MaxInt-1, 0, 4, 4), math.MaxInt, 0, true},
		{"left edge", NewRectangleArea(math.MaxInt-1, 0, 4, 4), math.MaxInt - 1, 2, true},
		{"interior column", NewRectangleArea(math.MaxInt-1, 0, 4, 4), math.MaxInt, 2, false},
		{"far side does not wrap", NewRectangleArea(math.MaxInt-1, 0, 4, 4), math.MinInt + 2, 0, false},
		{"bottom edge from MinInt", NewRectangleArea(0, math.MinInt, 4, 4), 2, math.MinInt + 4, true},
		{"right edge from MinInt", NewRectangleArea(math.MinInt, 0, math.MaxInt, 4), -1, 3, true},
		{"opposite limit", NewRectangleArea(math.MinInt, 0, 4, 4), math.MaxInt, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.area.OnBoundaries(tt.x, tt.y); got != tt.want {
				t.Errorf("%v.OnBoundaries(%d, %d) = %v, want %v", tt.area, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectangleArea_Scale(t *testing.T) {
	area := NewRectangleArea(0, 0, 1, 1)
	r := area.Bounds()
	for i := 0; i < rectIter; i++ {
		j := float64(i) / rectIter
		area.Scale(j)
		got := area.Bounds()
		want := Bounds{
			X:      int(float64(r.X) * j),
			Y:      int(float64(r.Y) * j),
			Width:  int(float64(r.Width) * j),
			Height: int(float64(r.Height) * j),
		}
		if got != want {
			t.Fatalf("[i = %d] Scale(%v) bounds = %v, want %v", i, j, got, want)
		}
	}
}

func TestRectangleArea_ScaleNotCumulative(t *testing.T) {
	area := NewRectangleArea(10, 20, 100, 50)
	area.Scale(0.5)
	area.Scale(0.5)
	if got, want := area.Bounds(), (Bounds{5, 10, 50, 25}); got != want {
		t.Errorf("Bounds() after Scale(0.5) twice = %v, want %v", got, want)
	}
	area.Scale(3)
	if got, want := area.Bounds(), (Bounds{30, 60, 300, 150}); got != want {
		t.Errorf("Bounds() after Scale(3) = %v, want %v", got, want)
	}
	area.Scale(1)
	if got, want := area.Bounds(), (Bounds{10, 20, 100, 50}); got != want {
		t.Errorf("Bounds() after Scale(1) = %v, want %v", got, want)
	}
}

func TestRectangleArea_SetBoundsResetsScale(t *testing.T) {
	area := NewRectangleArea(0, 0, 10, 10)
	area.Scale(2)
	area.SetBounds(1, 1, 4, 4)
	if got, want := area.Bounds(), (Bounds{1, 1, 4, 4}); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	area.Scale(0.5)
	if got, want := area.Bounds(), (Bounds{0, 0, 2, 2}); got != want {
		t.Errorf("Bounds() after Scale(0.5) = %v, want %v", got, want)
	}
}

func TestRectangleArea_Points(t *testing.T) {
	area := NewRectangleArea(0, 0, rectIter, rectIter)
	points, err := CollectPoints(area)
	if err != nil {
		t.Fatalf("CollectPoints() error = %v", err)
	}
	if len(points) != rectIter*rectIter {
		t.Fatalf("len(points) = %d, want %d", len(points), rectIter*rectIter)
	}
	for i, p := range points {
		want := PtOf(i%rectIter, i/rectIter)
		if p != want {
			t.Fatalf("points[%d] = %v, want %v", i, p, want)
		}
	}
}

func TestRectangleArea_PointsOffset(t *testing.T) {
	area := NewRectangleArea(-1, 3, 3, 2)
	want := []Point{
		Pt(-1, 3), Pt(0, 3), Pt(1, 3),
		Pt(-1, 4), Pt(0, 4), Pt(1, 4),
	}
	got := slices.Collect(area.Points())
	if !slices.Equal(got, want) {
		t.Errorf("Points() = %v, want %v", got, want)
	}
}

func TestRectangleArea_PointsFollowScale(t *testing.T) {
	area := NewRectangleArea(0, 0, 10, 10)
	seq := area.Points()
	area.Scale(0.5)
	n := 0
	for range seq {
		n++
	}
	if n != 25 {
		t.Errorf("sequence after Scale(0.5) yielded %d points, want 25", n)
	}
}

func TestRectangleArea_PointsEarlyStop(t *testing.T) {
	area := NewRectangleArea(0, 0, 10, 10)
	var got []Point
	for p := range area.Points() {
		got = append(got, p)
		if len(got) == 3 {
			break
		}
	}
	if want := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}; !slices.Equal(got, want) {
		t.Errorf("first points = %v, want %v", got, want)
	}
}

func TestRectangleArea_OnBoundaries(t *testing.T) {
	area := NewRectangleArea(0, 0, rectIter, rectIter)
	for i := 1; i < rectIter; i++ {
		if !area.OnBoundaries(i, 0) {
			t.Fatalf("(%d, 0) should be on the boundary", i)
		}
		if !area.OnBoundaries(i, rectIter) {
			t.Fatalf("(%d, %d) should be on the boundary", i, rectIter)
		}
		if !area.OnBoundaries(rectIter, i) {
			t.Fatalf("(%d, %d) should be on the boundary", rectIter, i)
		}
		if !area.OnBoundaries(0, i) {
			t.Fatalf("(0, %d) should be on the boundary", i)
		}
		if area.OnBoundaries(i, i) {
			t.Fatalf("(%d, %d) should not be on the boundary", i, i)
		}
	}
	corners := [][2]int{{0, 0}, {rectIter, 0}, {0, rectIter}, {rectIter, rectIter}}
	for _, c := range corners {
		if !area.OnBoundaries(c[0], c[1]) {
			t.Errorf("corner %v should be on the boundary", c)
		}
	}
	outside := [][2]int{{-1, 0}, {rectIter + 1, 5}, {5, -1}, {5, rectIter + 1}}
	for _, c := range outside {
		if area.OnBoundaries(c[0], c[1]) {
			t.Errorf("%v should not be on the boundary", c)
		}
	}
}

func TestRectangleArea_String(t *testing.T) {
	if got := NewRectangleArea(1, 2, 3, 4).String(); got != "RectangleArea(1, 2, 3, 4)" {
		t.Errorf("String() = %q", got)
	}
}
