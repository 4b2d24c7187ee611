package vmath

// LineTracer is a zero-allocation iterator over the integer grid points of a
// straight segment, using Bresenham error accumulation. The produced path is
// 8-connected, includes both endpoints, and is deterministic for identical
// endpoints.
type LineTracer struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	dx, dy int
	err    int

	started bool
	done    bool
}

// NewLineTracer creates an iterator from (x0, y0) to (x1, y1).
func NewLineTracer(x0, y0, x1, y1 int) LineTracer {
	t := LineTracer{
		currX: x0, currY: y0,
		targetX: x1, targetY: y1,
		stepX: 1, stepY: 1,
	}

	t.dx = x1 - x0
	if t.dx < 0 {
		t.stepX = -1
		t.dx = -t.dx
	}
	t.dy = y1 - y0
	if t.dy > 0 {
		t.dy = -t.dy
	} else {
		t.stepY = -1
	}
	t.err = t.dx + t.dy

	return t
}

// Next advances the tracer to the next grid point.
// Returns true if a valid point is available via Pos().
func (t *LineTracer) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	e2 := 2 * t.err
	if e2 >= t.dy {
		t.err += t.dy
		t.currX += t.stepX
	}
	if e2 <= t.dx {
		t.err += t.dx
		t.currY += t.stepY
	}
	return true
}

// Pos returns the current grid point.
func (t *LineTracer) Pos() (int, int) {
	return t.currX, t.currY
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// LinePoints collects the full traced path into a slice. Convenience for
// callers that need the whole path at once (beam hit resolution).
func LinePoints(x0, y0, x1, y1 int) []Point {
	// Segment length in grid steps is max(|dx|, |dy|) + 1
	adx, ady := x1-x0, y1-y0
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	n := adx
	if ady > n {
		n = ady
	}

	points := make([]Point, 0, n+1)
	t := NewLineTracer(x0, y0, x1, y1)
	for t.Next() {
		x, y := t.Pos()
		points = append(points, Point{X: x, Y: y})
	}
	return points
}
