package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowire/pkg/analysis"
	"github.com/philipparndt/gowire/pkg/scene"
)

var infoCmd = &cobra.Command{
	Use:   "info [scene-file]",
	Short: "Display information about a scene file",
	Long:  "Show figure counts, dimensions and edge statistics without opening a window.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	loaded, err := scene.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeWorld(loaded.World)

	fmt.Println("Scene Information")
	fmt.Println("=================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println(result.Summary())

	fmt.Println("\nBounding Box:")
	min, max := result.BoundingBox.Min, result.BoundingBox.Max
	fmt.Printf("  Min: (%.2f, %.2f, %.2f)\n", min.X, min.Y, min.Z)
	fmt.Printf("  Max: (%.2f, %.2f, %.2f)\n", max.X, max.Y, max.Z)
	fmt.Printf("  Diagonal: %.2f units\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Camera:")
	fmt.Printf("  Position: (%.2f, %.2f, %.2f)\n",
		loaded.Camera.Position.X, loaded.Camera.Position.Y, loaded.Camera.Position.Z)
	fmt.Printf("  FOV: %.1f degrees, near %.2f, far %.2f\n",
		loaded.Camera.FOV, loaded.Camera.Near, loaded.Camera.Far)
}
