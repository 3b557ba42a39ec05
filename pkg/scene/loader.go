package scene

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gowire/pkg/geometry"
)

// CameraConfig carries the camera setup from a scene file. Angles are in
// degrees in the file and converted by the consumer.
type CameraConfig struct {
	Position geometry.Vector3 `yaml:"position"`
	Yaw      float64          `yaml:"yaw"`
	Pitch    float64          `yaml:"pitch"`
	FOV      float64          `yaml:"fov"`
	Near     float64          `yaml:"near"`
	Far      float64          `yaml:"far"`
}

// ScreenConfig carries the viewport setup from a scene file
type ScreenConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Zoom   float64 `yaml:"zoom"`
}

// Scene bundles a loaded world with its camera and screen configuration
type Scene struct {
	World  *World
	Camera CameraConfig
	Screen ScreenConfig
}

type rgba struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

func (c rgba) toColor() color.RGBA {
	a := c.A
	if a == 0 {
		a = 255
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

type figureConfig struct {
	Type     string           `yaml:"type"`
	Name     string           `yaml:"name"`
	Size     float64          `yaml:"size"`
	Position geometry.Vector3 `yaml:"position"`
	Color    rgba             `yaml:"color"`

	// literal mesh figures
	Vertices []geometry.Vector3 `yaml:"vertices"`
	Edges    [][2]int           `yaml:"edges"`
	Faces    [][]int            `yaml:"faces"`
	Colors   []rgba             `yaml:"colors"`
}

type sceneFile struct {
	Camera  *CameraConfig  `yaml:"camera"`
	Screen  *ScreenConfig  `yaml:"screen"`
	Figures []figureConfig `yaml:"figures"`
}

// DefaultScene returns the built-in scene used when no file is given: one
// 120 unit cube 400 units in front of a camera at the origin
func DefaultScene() *Scene {
	world := NewWorld()
	world.AddFigure(NewCube(120, geometry.NewVector3(0, 0, 400), color.RGBA{R: 220, G: 120, B: 60, A: 255}))

	return &Scene{
		World: world,
		Camera: CameraConfig{
			FOV:  60,
			Near: 0.1,
			Far:  1e6,
		},
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			Zoom:   1,
		},
	}
}

// Load reads a YAML scene file
func Load(filename string) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scene description. Missing camera or
// screen sections fall back to the defaults from DefaultScene.
func Parse(data []byte) (*Scene, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	result := DefaultScene()
	result.World = NewWorld()

	if file.Camera != nil {
		result.Camera = *file.Camera
	}
	if file.Screen != nil {
		result.Screen = *file.Screen
		if result.Screen.Zoom == 0 {
			result.Screen.Zoom = 1
		}
	}

	if err := validateCamera(result.Camera); err != nil {
		return nil, err
	}
	if err := validateScreen(result.Screen); err != nil {
		return nil, err
	}

	for i, cfg := range file.Figures {
		figure, err := buildFigure(cfg)
		if err != nil {
			return nil, fmt.Errorf("figure %d: %w", i, err)
		}
		result.World.AddFigure(figure)
	}

	if result.World.FigureCount() == 0 {
		return nil, fmt.Errorf("scene file contains no figures")
	}

	return result, nil
}

func buildFigure(cfg figureConfig) (*Figure, error) {
	switch cfg.Type {
	case "cube", "":
		if cfg.Size <= 0 {
			return nil, fmt.Errorf("cube needs a positive size, got %v", cfg.Size)
		}
		cube := NewCube(cfg.Size, cfg.Position, cfg.Color.toColor())
		if cfg.Name != "" {
			cube.Name = cfg.Name
		}
		return cube, nil

	case "mesh":
		if len(cfg.Vertices) == 0 {
			return nil, fmt.Errorf("mesh figure needs vertices")
		}
		mesh := Mesh{
			Vertices: cfg.Vertices,
			Edges:    cfg.Edges,
			Faces:    cfg.Faces,
		}
		for _, c := range cfg.Colors {
			mesh.FaceColors = append(mesh.FaceColors, c.toColor())
		}
		figure := NewFigure(mesh, geometry.Vector3{}, cfg.Position)
		figure.Name = cfg.Name
		return figure, nil

	default:
		return nil, fmt.Errorf("unknown figure type %q", cfg.Type)
	}
}

func validateCamera(c CameraConfig) error {
	if c.Near <= 0 || c.Far <= 0 {
		return fmt.Errorf("camera near and far must be positive, got near=%v far=%v", c.Near, c.Far)
	}
	if c.Near >= c.Far {
		return fmt.Errorf("camera near (%v) must be smaller than far (%v)", c.Near, c.Far)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("camera fov must be between 0 and 180 degrees, got %v", c.FOV)
	}
	if !c.Position.IsFinite() {
		return fmt.Errorf("camera position must be finite")
	}
	if math.IsNaN(c.Yaw) || math.IsNaN(c.Pitch) {
		return fmt.Errorf("camera orientation must be finite")
	}
	return nil
}

func validateScreen(s ScreenConfig) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Zoom <= 0 {
		return fmt.Errorf("screen zoom must be positive, got %v", s.Zoom)
	}
	return nil
}
