package viewer

import "image/color"

// Surface is the 2D drawing target of the renderer. Implementations are
// expected to clip primitives to their own bounds; the renderer hands them
// pixel coordinates that may lie outside the viewport.
type Surface interface {
	// Clear fills the whole surface with a single color
	Clear(col color.RGBA)

	// Line draws a one pixel line between two points
	Line(x1, y1, x2, y2 float64, col color.RGBA)

	// FillPolygon fills the polygon described by the coordinate pairs
	FillPolygon(xs, ys []float64, col color.RGBA)

	// FillCircle fills a circle of radius r centered on (cx, cy)
	FillCircle(cx, cy, r float64, col color.RGBA)

	// Text draws a single line of text with its baseline at (x, y)
	Text(x, y float64, s string, col color.RGBA)
}
