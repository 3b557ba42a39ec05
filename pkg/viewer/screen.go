package viewer

// Zoom limits for interactive zooming
const (
	MinZoom = 0.2
	MaxZoom = 5.0
)

// Screen maps normalized device coordinates onto a pixel viewport. Zoom
// scales isotropically relative to the vertical extent, so a normalized Y
// of 1 lands on the top edge at zoom 1 regardless of the aspect ratio.
type Screen struct {
	Width  int
	Height int
	Zoom   float64
}

// NewScreen creates a screen with the given pixel dimensions and zoom 1
func NewScreen(width, height int) *Screen {
	return &Screen{Width: width, Height: height, Zoom: 1}
}

// Aspect returns the width/height ratio of the viewport
func (s *Screen) Aspect() float64 {
	return float64(s.Width) / float64(s.Height)
}

// ToPixels maps a normalized projection to pixel coordinates. Pixel Y grows
// downward while normalized Y grows upward, so the Y axis is flipped.
func (s *Screen) ToPixels(p Projection) (float64, float64) {
	scale := float64(s.Height) / 2 * s.Zoom
	x := float64(s.Width)/2 + p.X*scale
	y := float64(s.Height)/2 - p.Y*scale
	return x, y
}

// FromPixels is the inverse of ToPixels, mapping pixel coordinates back to
// normalized device coordinates
func (s *Screen) FromPixels(x, y float64) (float64, float64) {
	scale := float64(s.Height) / 2 * s.Zoom
	nx := (x - float64(s.Width)/2) / scale
	ny := (float64(s.Height)/2 - y) / scale
	return nx, ny
}

// ZoomBy multiplies the zoom by factor, clamped to [MinZoom, MaxZoom]
func (s *Screen) ZoomBy(factor float64) {
	s.Zoom *= factor
	if s.Zoom < MinZoom {
		s.Zoom = MinZoom
	}
	if s.Zoom > MaxZoom {
		s.Zoom = MaxZoom
	}
}

// SetSize updates the viewport dimensions, keeping the current zoom
func (s *Screen) SetSize(width, height int) {
	if width > 0 {
		s.Width = width
	}
	if height > 0 {
		s.Height = height
	}
}
