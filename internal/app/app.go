package app

import (
	"fmt"
	"math"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/philipparndt/gowire/pkg/scene"
	"github.com/philipparndt/gowire/pkg/viewer"
	"github.com/philipparndt/gowire/pkg/watcher"
)

// Config carries the startup options from the command line. Zero values
// mean "use the scene file or built-in default".
type Config struct {
	ScenePath string
	Width     int
	Height    int
	FOV       float64 // degrees
	Near      float64
	Far       float64
	NoWatch   bool
}

// App owns the window and the pipeline state: one world, one camera, one
// screen mapping and the software surface everything is rendered into.
// All mutation happens on the fyne event thread.
type App struct {
	window fyne.Window
	view   *viewerWidget
	panel  *infoPanel

	config  Config
	scene   *scene.Scene
	watcher *watcher.FileWatcher
}

// Run starts the viewer application
func Run(config Config) error {
	loaded, err := loadScene(config)
	if err != nil {
		return err
	}

	a := fyneapp.New()
	window := a.NewWindow("gowire - wireframe viewer")

	app := &App{
		window: window,
		config: config,
		scene:  loaded,
	}

	app.view = newViewerWidget(app)
	app.panel = newInfoPanel(app)
	app.applyScene(loaded)

	if config.ScenePath != "" && !config.NoWatch {
		if err := app.setupSceneWatcher(); err != nil {
			fmt.Printf("Warning: failed to set up scene watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.watcher.Close()
		}
	}

	window.SetContent(container.NewBorder(nil, nil, nil, app.panel.container, app.view))
	window.Resize(fyne.NewSize(float32(app.view.screen.Width+300), float32(app.view.screen.Height)))
	window.Canvas().Focus(app.view)
	window.ShowAndRun()

	return nil
}

// loadScene reads the scene file or falls back to the built-in cube scene,
// then applies the command line overrides
func loadScene(config Config) (*scene.Scene, error) {
	var loaded *scene.Scene
	if config.ScenePath != "" {
		s, err := scene.Load(config.ScenePath)
		if err != nil {
			return nil, err
		}
		loaded = s
		fmt.Printf("Loaded scene: %s (%d figures)\n", config.ScenePath, s.World.FigureCount())
	} else {
		loaded = scene.DefaultScene()
	}

	if config.Width > 0 {
		loaded.Screen.Width = config.Width
	}
	if config.Height > 0 {
		loaded.Screen.Height = config.Height
	}
	if config.FOV > 0 {
		loaded.Camera.FOV = config.FOV
	}
	if config.Near > 0 {
		loaded.Camera.Near = config.Near
	}
	if config.Far > 0 {
		loaded.Camera.Far = config.Far
	}

	return loaded, nil
}

// applyScene swaps the pipeline state for a freshly loaded scene and
// re-renders
func (app *App) applyScene(loaded *scene.Scene) {
	app.scene = loaded

	camera := viewer.NewCamera(loaded.Camera.Position)
	camera.Yaw = loaded.Camera.Yaw * math.Pi / 180
	camera.Pitch = loaded.Camera.Pitch * math.Pi / 180
	camera.FOV = loaded.Camera.FOV * math.Pi / 180
	camera.Near = loaded.Camera.Near
	camera.Far = loaded.Camera.Far

	screen := viewer.NewScreen(loaded.Screen.Width, loaded.Screen.Height)
	screen.Zoom = loaded.Screen.Zoom

	app.view.setScene(loaded.World, camera, screen)
	app.panel.update()
}

// setupSceneWatcher reloads the scene file whenever it changes on disk
func (app *App) setupSceneWatcher() error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	err = fw.Watch(app.config.ScenePath, func(changed string) {
		fmt.Printf("\nScene file changed: %s\n", changed)

		loaded, err := loadScene(app.config)
		if err != nil {
			fmt.Printf("Error reloading scene: %v\n", err)
			return
		}

		// The callback runs on the watcher goroutine; hand the state swap
		// to the fyne event thread.
		fyne.Do(func() {
			app.applyScene(loaded)
			fmt.Println("Scene reloaded")
		})
	})
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch scene file: %w", err)
	}

	fw.Start()
	app.watcher = fw
	fmt.Printf("Watching scene file for changes: %s\n", app.config.ScenePath)

	return nil
}
