package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gowire/pkg/analysis"
	"github.com/philipparndt/gowire/version"
)

// infoPanel is the right-hand side panel with scene statistics and the
// view controls
type infoPanel struct {
	app       *App
	container *container.Scroll

	statsLabel  *widget.Label
	activeLabel *widget.Label
}

func newInfoPanel(app *App) *infoPanel {
	p := &infoPanel{
		app:         app,
		statsLabel:  widget.NewLabel(""),
		activeLabel: widget.NewLabel(""),
	}

	title := widget.NewLabel("Scene Information:")
	title.TextStyle = fyne.TextStyle{Bold: true}

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the active figure\n" +
			"• Shift+Drag to move it\n" +
			"• Scroll to zoom in/out\n" +
			"• Tab cycles the active figure\n" +
			"• Arrow keys turn the camera\n" +
			"• W/A/S/D moves the camera\n" +
			"• F toggles faces, H toggles help\n" +
			"• R resets the view",
	)
	instructions.Wrapping = fyne.TextWrapWord

	facesCheck := widget.NewCheck("Show Faces", func(checked bool) {
		app.view.renderer.ShowFaces = checked
		app.view.redraw()
	})
	facesCheck.SetChecked(app.view.renderer.ShowFaces)

	resetButton := widget.NewButton("Reset View", func() {
		app.view.resetView()
		app.view.redraw()
		p.update()
	})

	versionLabel := widget.NewLabel(fmt.Sprintf("v%s", version.GetVersion()))

	content := container.NewVBox(
		title,
		widget.NewSeparator(),
		p.statsLabel,
		widget.NewSeparator(),
		p.activeLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		facesCheck,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		resetButton,
		versionLabel,
	)

	p.container = container.NewVScroll(content)
	p.container.SetMinSize(fyne.NewSize(300, 0))

	return p
}

// update refreshes the statistics after a scene load or reset
func (p *infoPanel) update() {
	result := analysis.AnalyzeWorld(p.app.scene.World)
	p.statsLabel.SetText(result.Summary())

	if figure := p.app.view.active(); figure != nil {
		p.activeLabel.SetText(fmt.Sprintf("Active figure: %s", figure.Name))
	} else {
		p.activeLabel.SetText("Active figure: none")
	}
}
