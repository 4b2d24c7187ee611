package vmath

import "testing"

func collect(x0, y0, x1, y1 int) []Point {
	return LinePoints(x0, y0, x1, y1)
}

func TestLineTracerExactSequence(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []Point
	}{
		{
			name: "shallow right",
			x1:   3, y1: 1,
			want: []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}},
		},
		{
			name: "steep down",
			x1:   1, y1: 3,
			want: []Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}},
		},
		{
			name: "shallow left reversed",
			x0:   3, y0: 1,
			want: []Point{{3, 1}, {2, 1}, {1, 0}, {0, 0}},
		},
		{
			name: "horizontal",
			x1:   3,
			want: []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			name: "vertical up",
			x0:   2, y0: 5, x1: 2, y1: 2,
			want: []Point{{2, 5}, {2, 4}, {2, 3}, {2, 2}},
		},
		{
			name: "diagonal",
			x1:   3, y1: 3,
			want: []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("point %d: got %v, want %v", i, got, tt.want)
				}
			}
		})
	}
}

func TestLineTracerDegenerateSegment(t *testing.T) {
	got := collect(7, -3, 7, -3)
	if len(got) != 1 || got[0] != (Point{7, -3}) {
		t.Fatalf("degenerate segment produced %v, want single point (7,-3)", got)
	}
}

func TestLineTracerDeterministic(t *testing.T) {
	a := collect(-5, 12, 40, -9)
	b := collect(-5, 12, 40, -9)
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// Every produced path must start and end on the given endpoints and step at
// most one cell per axis between consecutive points (8-connectivity).
func TestLineTracerConnectivitySweep(t *testing.T) {
	for x0 := -7; x0 <= 7; x0 += 2 {
		for y0 := -7; y0 <= 7; y0 += 3 {
			for x1 := -7; x1 <= 7; x1 += 3 {
				for y1 := -7; y1 <= 7; y1 += 2 {
					path := collect(x0, y0, x1, y1)
					if len(path) == 0 {
						t.Fatalf("(%d,%d)->(%d,%d): empty path", x0, y0, x1, y1)
					}
					if path[0] != (Point{x0, y0}) {
						t.Fatalf("(%d,%d)->(%d,%d): starts at %v", x0, y0, x1, y1, path[0])
					}
					if path[len(path)-1] != (Point{x1, y1}) {
						t.Fatalf("(%d,%d)->(%d,%d): ends at %v", x0, y0, x1, y1, path[len(path)-1])
					}
					for i := 1; i < len(path); i++ {
						dx := path[i].X - path[i-1].X
						dy := path[i].Y - path[i-1].Y
						if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
							t.Fatalf("(%d,%d)->(%d,%d): bad step %v -> %v",
								x0, y0, x1, y1, path[i-1], path[i])
						}
					}
				}
			}
		}
	}
}
