package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/scene"
	"github.com/philipparndt/gowire/pkg/viewer"
)

const (
	yawSpeed      = 0.01 // radians per dragged pixel
	moveSpeed     = 1.0  // world units per dragged pixel
	zoomStep      = 1.1
	cameraTurn    = 0.05 // radians per arrow key press
	cameraStride  = 10.0 // world units per WASD press
	minViewWidth  = 400
	minViewHeight = 400
)

// viewerWidget is the interactive 3D view. It owns the render pipeline
// state and repaints synchronously after every input event.
type viewerWidget struct {
	widget.BaseWidget
	app *App

	world    *scene.World
	camera   *viewer.Camera
	screen   *viewer.Screen
	surface  *viewer.ImageSurface
	renderer *viewer.Renderer
	image    *canvas.Image

	activeFigure int
	shiftDown    bool

	// snapshot taken at scene load, used by resetView
	homePositions []geometry.Vector3
	homeCamera    viewer.Camera
	homeZoom      float64
}

func newViewerWidget(app *App) *viewerWidget {
	w := &viewerWidget{
		app:      app,
		renderer: viewer.NewRenderer(),
	}
	w.renderer.ShowReadout = true
	w.ExtendBaseWidget(w)
	return w
}

// setScene replaces the pipeline state after a load or reload
func (w *viewerWidget) setScene(world *scene.World, camera *viewer.Camera, screen *viewer.Screen) {
	w.world = world
	w.camera = camera
	w.screen = screen
	w.surface = viewer.NewImageSurface(screen.Width, screen.Height)
	w.image = canvas.NewImageFromImage(w.surface.Image())
	w.image.ScaleMode = canvas.ImageScaleFastest

	w.activeFigure = 0
	w.homePositions = w.homePositions[:0]
	for _, figure := range world.Figures() {
		w.homePositions = append(w.homePositions, figure.Position())
	}
	w.homeCamera = *camera
	w.homeZoom = screen.Zoom

	w.redraw()
	w.Refresh()
}

// redraw renders the world into the software surface and refreshes the
// canvas image
func (w *viewerWidget) redraw() {
	if w.surface == nil {
		return
	}
	if err := w.renderer.Render(w.surface, w.world, w.camera, w.screen); err != nil {
		fmt.Printf("Render error: %v\n", err)
		return
	}
	w.image.Image = w.surface.Image()
	w.image.Refresh()
}

// active returns the figure input is directed at, or nil for an empty world
func (w *viewerWidget) active() *scene.Figure {
	figures := w.world.Figures()
	if len(figures) == 0 {
		return nil
	}
	return figures[w.activeFigure%len(figures)]
}

// Dragged rotates the active figure, or translates it while shift is held
func (w *viewerWidget) Dragged(event *fyne.DragEvent) {
	figure := w.active()
	if figure == nil {
		return
	}

	dx := float64(event.Dragged.DX)
	dy := float64(event.Dragged.DY)

	if w.shiftDown {
		// Screen up is negative dy; world up is positive Y.
		figure.Move(dx*moveSpeed, -dy*moveSpeed, 0)
	} else {
		figure.Rotate(dx*yawSpeed, dy*yawSpeed)
	}
	w.redraw()
}

// DragEnd is required by fyne.Draggable
func (w *viewerWidget) DragEnd() {}

// Scrolled zooms the view
func (w *viewerWidget) Scrolled(event *fyne.ScrollEvent) {
	if event.Scrolled.DY > 0 {
		w.screen.ZoomBy(zoomStep)
	} else if event.Scrolled.DY < 0 {
		w.screen.ZoomBy(1 / zoomStep)
	}
	w.redraw()
}

// Tapped grabs keyboard focus back after panel interaction
func (w *viewerWidget) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(w); c != nil {
		c.Focus(w)
	}
}

func (w *viewerWidget) FocusGained() {}
func (w *viewerWidget) FocusLost()   { w.shiftDown = false }

// AcceptsTab keeps Tab as the figure cycling key instead of focus traversal
func (w *viewerWidget) AcceptsTab() bool { return true }

// KeyDown tracks modifier state
func (w *viewerWidget) KeyDown(event *fyne.KeyEvent) {
	if event.Name == desktop.KeyShiftLeft || event.Name == desktop.KeyShiftRight {
		w.shiftDown = true
	}
}

// KeyUp tracks modifier state
func (w *viewerWidget) KeyUp(event *fyne.KeyEvent) {
	if event.Name == desktop.KeyShiftLeft || event.Name == desktop.KeyShiftRight {
		w.shiftDown = false
	}
}

// TypedKey handles camera rotation and figure cycling
func (w *viewerWidget) TypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyLeft:
		w.camera.RotateYaw(-cameraTurn)
	case fyne.KeyRight:
		w.camera.RotateYaw(cameraTurn)
	case fyne.KeyUp:
		w.camera.RotatePitch(-cameraTurn)
	case fyne.KeyDown:
		w.camera.RotatePitch(cameraTurn)
	case fyne.KeyTab:
		if count := w.world.FigureCount(); count > 0 {
			w.activeFigure = (w.activeFigure + 1) % count
		}
		if w.app.panel != nil {
			w.app.panel.update()
		}
	case fyne.KeyEscape:
		return
	default:
		return
	}
	w.redraw()
}

// TypedRune handles movement and display toggles
func (w *viewerWidget) TypedRune(r rune) {
	switch r {
	case 'w', 'W':
		w.camera.MoveForward(cameraStride)
	case 's', 'S':
		w.camera.MoveForward(-cameraStride)
	case 'a', 'A':
		w.camera.MoveSideways(-cameraStride)
	case 'd', 'D':
		w.camera.MoveSideways(cameraStride)
	case 'f', 'F':
		w.renderer.ShowFaces = !w.renderer.ShowFaces
	case 'h', 'H':
		w.renderer.ShowHelp = !w.renderer.ShowHelp
	case 'r', 'R':
		w.resetView()
	default:
		return
	}
	w.redraw()
}

// resetView restores the camera, zoom and every figure to the state the
// scene was loaded with
func (w *viewerWidget) resetView() {
	*w.camera = w.homeCamera
	w.screen.Zoom = w.homeZoom
	w.activeFigure = 0

	for i, figure := range w.world.Figures() {
		figure.Rotate(-figure.Yaw(), -figure.Pitch())
		if i < len(w.homePositions) {
			delta := w.homePositions[i].Sub(figure.Position())
			figure.Move(delta.X, delta.Y, delta.Z)
		}
	}
}

// CreateRenderer creates the fyne renderer for the widget
func (w *viewerWidget) CreateRenderer() fyne.WidgetRenderer {
	return &viewerWidgetRenderer{view: w}
}

type viewerWidgetRenderer struct {
	view *viewerWidget
}

func (r *viewerWidgetRenderer) Layout(size fyne.Size) {
	view := r.view
	if view.surface == nil {
		return
	}

	width, height := int(size.Width), int(size.Height)
	view.screen.SetSize(width, height)
	view.surface.Resize(width, height)
	view.image.Resize(size)
	view.redraw()
}

func (r *viewerWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minViewWidth, minViewHeight)
}

func (r *viewerWidgetRenderer) Refresh() {
	if r.view.image != nil {
		canvas.Refresh(r.view)
	}
}

func (r *viewerWidgetRenderer) Objects() []fyne.CanvasObject {
	if r.view.image == nil {
		return nil
	}
	return []fyne.CanvasObject{r.view.image}
}

func (r *viewerWidgetRenderer) Destroy() {}
