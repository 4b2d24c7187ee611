package canvas

// ShapeKind discriminates recorded shapes.
type ShapeKind uint8

const (
	KindRect ShapeKind = iota
	KindLine
	KindText
)

// Shape is a recorded drawing operation.
type Shape struct {
	Kind           ShapeKind
	X, Y           int
	W, H           int
	X1, Y1         int
	Text           string
	Color          Color
	MovedX, MovedY int
}

// Recorder is an in-memory Canvas used by tests. It tracks live shapes and
// counts deletes per handle so double-release bugs are observable.
type Recorder struct {
	nextHandle Handle
	Shapes     map[Handle]*Shape
	Deletes    map[Handle]int
	Cleared    int
}

// NewRecorder creates an empty recording canvas.
func NewRecorder() *Recorder {
	return &Recorder{
		nextHandle: 1,
		Shapes:     make(map[Handle]*Shape),
		Deletes:    make(map[Handle]int),
	}
}

func (r *Recorder) add(s *Shape) Handle {
	h := r.nextHandle
	r.nextHandle++
	r.Shapes[h] = s
	return h
}

func (r *Recorder) CreateRect(x, y, w, h int, c Color) Handle {
	return r.add(&Shape{Kind: KindRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) CreateLine(x0, y0, x1, y1 int, c Color) Handle {
	return r.add(&Shape{Kind: KindLine, X: x0, Y: y0, X1: x1, Y1: y1, Color: c})
}

func (r *Recorder) CreateText(x, y int, text string, c Color) Handle {
	return r.add(&Shape{Kind: KindText, X: x, Y: y, Text: text, Color: c})
}

func (r *Recorder) Move(h Handle, dx, dy int) {
	if s, ok := r.Shapes[h]; ok {
		s.MovedX += dx
		s.MovedY += dy
	}
}

func (r *Recorder) Delete(h Handle) {
	if h == 0 {
		return
	}
	r.Deletes[h]++
	delete(r.Shapes, h)
}

func (r *Recorder) Clear() {
	r.Cleared++
	for h := range r.Shapes {
		delete(r.Shapes, h)
	}
}

// Live returns the number of shapes currently on the canvas.
func (r *Recorder) Live() int {
	return len(r.Shapes)
}
