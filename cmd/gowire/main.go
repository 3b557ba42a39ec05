package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowire/internal/app"
	"github.com/philipparndt/gowire/version"
)

var config app.Config

var rootCmd = &cobra.Command{
	Use:   "gowire [scene-file]",
	Short: "Interactive wireframe viewer for 3D scenes",
	Long: `gowire renders YAML scene files as shaded wireframes with a software
perspective pipeline. Without a scene file it opens a built-in demo scene.

Drag rotates the active figure, shift-drag moves it, the mouse wheel zooms
and the arrow keys and WASD steer the camera.`,
	Version: version.GetVersion(),
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			config.ScenePath = args[0]
		}
		if err := app.Run(config); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().IntVar(&config.Width, "width", 0, "viewport width in pixels")
	rootCmd.Flags().IntVar(&config.Height, "height", 0, "viewport height in pixels")
	rootCmd.Flags().Float64Var(&config.FOV, "fov", 0, "vertical field of view in degrees")
	rootCmd.Flags().Float64Var(&config.Near, "near", 0, "near plane distance")
	rootCmd.Flags().Float64Var(&config.Far, "far", 0, "far plane distance")
	rootCmd.Flags().BoolVar(&config.NoWatch, "no-watch", false, "disable scene file auto-reload")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
