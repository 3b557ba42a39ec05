package scene

// World is an insertion-ordered collection of figures. It owns no camera
// or projection state; rendering walks it from the outside.
type World struct {
	figures []*Figure
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// AddFigure appends a figure to the world
func (w *World) AddFigure(f *Figure) {
	w.figures = append(w.figures, f)
}

// Figures returns the figures in insertion order
func (w *World) Figures() []*Figure {
	return w.figures
}

// FigureCount returns the number of figures in the world
func (w *World) FigureCount() int {
	return len(w.figures)
}
