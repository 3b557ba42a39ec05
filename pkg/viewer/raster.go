package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageSurface is a software Surface backed by an image.RGBA. All
// primitives clip per pixel, so callers may pass coordinates outside the
// image bounds.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface creates a surface with the given pixel dimensions
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Image returns the backing image for display
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Resize replaces the backing image when the viewport changes size
func (s *ImageSurface) Resize(width, height int) {
	if b := s.img.Bounds(); b.Dx() == width && b.Dy() == height {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Clear fills the whole surface with a single color
func (s *ImageSurface) Clear(col color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// Line draws a line using Bresenham's algorithm, checking bounds per pixel
func (s *ImageSurface) Line(fx1, fy1, fx2, fy2 float64, col color.RGBA) {
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))
	x2, y2 := int(math.Round(fx2)), int(math.Round(fy2))
	bounds := s.img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			s.img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillPolygon fills a polygon using an even-odd scanline algorithm
func (s *ImageSurface) FillPolygon(xs, ys []float64, col color.RGBA) {
	n := len(xs)
	if n < 3 || len(ys) != n {
		return
	}

	minY, maxY := ys[0], ys[0]
	for _, y := range ys {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	bounds := s.img.Bounds()
	yStart := int(math.Max(0, math.Ceil(minY)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Floor(maxY)))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// Collect the X coordinates where the scanline crosses an edge.
		intersections := make([]float64, 0, n)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			y1, y2 := ys[i], ys[j]
			if y1 == y2 {
				continue
			}
			// Half-open interval so shared vertices are counted once.
			if (fy >= y1 && fy < y2) || (fy >= y2 && fy < y1) {
				t := (fy - y1) / (y2 - y1)
				intersections = append(intersections, xs[i]+t*(xs[j]-xs[i]))
			}
		}

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Max(0, math.Ceil(intersections[i])))
			xEnd := int(math.Min(float64(bounds.Max.X-1), math.Floor(intersections[i+1])))
			for x := xStart; x <= xEnd; x++ {
				s.img.SetRGBA(x, y, col)
			}
		}
	}
}

// FillCircle fills a circle by drawing horizontal spans
func (s *ImageSurface) FillCircle(cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	bounds := s.img.Bounds()

	yStart := int(math.Max(0, math.Ceil(cy-r)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Floor(cy+r)))

	for y := yStart; y <= yEnd; y++ {
		dy := float64(y) - cy
		half := math.Sqrt(r*r - dy*dy)
		xStart := int(math.Max(0, math.Ceil(cx-half)))
		xEnd := int(math.Min(float64(bounds.Max.X-1), math.Floor(cx+half)))
		for x := xStart; x <= xEnd; x++ {
			s.img.SetRGBA(x, y, col)
		}
	}
}

// Text draws a line of text with the fixed 7x13 bitmap font
func (s *ImageSurface) Text(x, y float64, text string, col color.RGBA) {
	drawer := &font.Drawer{
		Dst:  s.img,
		Src:  &image.Uniform{C: col},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	drawer.DrawString(text)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
