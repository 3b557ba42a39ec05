package viewer

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/philipparndt/gowire/pkg/scene"
)

// Renderer walks a world and draws it onto a Surface through a camera and
// screen mapping. It holds only styling; all scene state lives outside.
type Renderer struct {
	Background   color.RGBA
	EdgeColor    color.RGBA
	NearColor    color.RGBA // vertex markers close to the camera
	FarColor     color.RGBA // vertex markers at the far end of the figure
	VertexRadius float64
	ShowFaces    bool
	ShowHelp     bool
	ShowReadout  bool
}

// NewRenderer creates a renderer with the default dark theme
func NewRenderer() *Renderer {
	return &Renderer{
		Background:   color.RGBA{R: 18, G: 18, B: 24, A: 255},
		EdgeColor:    color.RGBA{R: 220, G: 220, B: 220, A: 255},
		NearColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		FarColor:     color.RGBA{R: 90, G: 90, B: 110, A: 255},
		VertexRadius: 3,
		ShowFaces:    true,
	}
}

// projected caches one figure vertex for a frame: nil entries failed
// projection and are treated as not visible.
type projected struct {
	norm Projection
	px   float64
	py   float64
}

// Render draws the world. A nil surface is a precondition failure and the
// only error this method returns; everything else (invisible vertices,
// out-of-range indices, degenerate numbers) is skipped silently per
// primitive.
func (r *Renderer) Render(surface Surface, world *scene.World, cam *Camera, screen *Screen) error {
	if surface == nil {
		return fmt.Errorf("renderer: no drawing surface")
	}

	surface.Clear(r.Background)
	aspect := screen.Aspect()

	for _, figure := range world.Figures() {
		vertices := figure.Vertices()

		// Project every vertex exactly once per frame.
		cache := make([]*projected, len(vertices))
		for i, v := range vertices {
			if p, ok := cam.ProjectNorm(v, aspect); ok {
				px, py := screen.ToPixels(p)
				cache[i] = &projected{norm: p, px: px, py: py}
			}
		}

		if r.ShowFaces {
			r.drawFaces(surface, figure, cache)
		}
		r.drawEdges(surface, figure, cache)
		r.drawVertices(surface, cache)
	}

	if r.ShowHelp {
		r.drawHelp(surface)
	}
	if r.ShowReadout {
		r.drawReadout(surface, cam, screen)
	}

	return nil
}

// drawFaces paints faces back to front by their average visible depth.
// Faces with any invisible or out-of-range vertex are dropped for the
// frame; the painter's ordering is an approximation, good enough for
// convex figures.
func (r *Renderer) drawFaces(surface Surface, figure *scene.Figure, cache []*projected) {
	type paintableFace struct {
		index int
		depth float64
	}

	var faces []paintableFace
	for i, face := range figure.Faces() {
		if len(face) < 3 {
			continue
		}

		visible := true
		sum := 0.0
		count := 0
		for _, idx := range face {
			if idx < 0 || idx >= len(cache) {
				visible = false
				break
			}
			if cache[idx] == nil {
				visible = false
				continue
			}
			sum += cache[idx].norm.Depth
			count++
		}
		if !visible || count == 0 {
			continue
		}

		faces = append(faces, paintableFace{index: i, depth: sum / float64(count)})
	}

	sort.Slice(faces, func(a, b int) bool {
		return faces[a].depth > faces[b].depth
	})

	for _, pf := range faces {
		face := figure.Faces()[pf.index]
		xs := make([]float64, len(face))
		ys := make([]float64, len(face))
		for j, idx := range face {
			xs[j] = cache[idx].px
			ys[j] = cache[idx].py
		}
		surface.FillPolygon(xs, ys, figure.FaceColor(pf.index))
	}
}

// drawEdges draws a line for every edge whose endpoints both projected.
// Dangling or out-of-range edges are skipped, not reported.
func (r *Renderer) drawEdges(surface Surface, figure *scene.Figure, cache []*projected) {
	for _, edge := range figure.Edges() {
		a, b := edge[0], edge[1]
		if a < 0 || a >= len(cache) || b < 0 || b >= len(cache) {
			continue
		}
		if cache[a] == nil || cache[b] == nil {
			continue
		}
		surface.Line(cache[a].px, cache[a].py, cache[b].px, cache[b].py, r.EdgeColor)
	}
}

// drawVertices draws a marker per visible vertex, shaded from NearColor to
// FarColor across the figure's own depth range. A single visible vertex
// has a degenerate range and gets the near style.
func (r *Renderer) drawVertices(surface Surface, cache []*projected) {
	minDepth, maxDepth := 0.0, 0.0
	found := false
	for _, p := range cache {
		if p == nil {
			continue
		}
		if !found {
			minDepth, maxDepth = p.norm.Depth, p.norm.Depth
			found = true
			continue
		}
		if p.norm.Depth < minDepth {
			minDepth = p.norm.Depth
		}
		if p.norm.Depth > maxDepth {
			maxDepth = p.norm.Depth
		}
	}
	if !found {
		return
	}

	depthRange := maxDepth - minDepth
	for _, p := range cache {
		if p == nil {
			continue
		}
		t := 0.0
		if depthRange > 0 {
			t = (p.norm.Depth - minDepth) / depthRange
		}
		surface.FillCircle(p.px, p.py, r.VertexRadius, lerpColor(r.NearColor, r.FarColor, t))
	}
}

var helpLines = []string{
	"drag: rotate figure   shift+drag: move figure",
	"wheel: zoom   arrows: turn camera   wasd: move camera",
	"tab: next figure   f: faces   h: help   r: reset",
}

func (r *Renderer) drawHelp(surface Surface) {
	for i, line := range helpLines {
		surface.Text(10, float64(20+i*16), line, r.EdgeColor)
	}
}

func (r *Renderer) drawReadout(surface Surface, cam *Camera, screen *Screen) {
	readout := fmt.Sprintf("cam (%.1f, %.1f, %.1f)  yaw %.2f  pitch %.2f  zoom %.2f",
		cam.Position.X, cam.Position.Y, cam.Position.Z, cam.Yaw, cam.Pitch, screen.Zoom)
	surface.Text(10, float64(screen.Height-10), readout, r.EdgeColor)
}

// lerpColor interpolates per channel between two colors
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}
