package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/scene"
)

// Result contains aggregate statistics over all figures in a world
type Result struct {
	FigureCount int
	VertexCount int
	EdgeCount   int
	FaceCount   int

	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3

	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeWorld walks every figure and collects counts, the world bounding
// box and edge length statistics. Edges with out-of-range indices are
// ignored, matching the renderer's behavior.
func AnalyzeWorld(world *scene.World) *Result {
	result := &Result{
		BoundingBox:   geometry.NewBoundingBox(),
		MinEdgeLength: math.MaxFloat64,
	}

	totalLength := 0.0
	measured := 0

	for _, figure := range world.Figures() {
		vertices := figure.Vertices()

		result.FigureCount++
		result.VertexCount += len(vertices)
		result.EdgeCount += len(figure.Edges())
		result.FaceCount += len(figure.Faces())

		for _, v := range vertices {
			result.BoundingBox.Extend(v)
		}

		for _, edge := range figure.Edges() {
			a, b := edge[0], edge[1]
			if a < 0 || a >= len(vertices) || b < 0 || b >= len(vertices) {
				continue
			}
			length := vertices[a].Distance(vertices[b])

			totalLength += length
			measured++
			if length < result.MinEdgeLength {
				result.MinEdgeLength = length
			}
			if length > result.MaxEdgeLength {
				result.MaxEdgeLength = length
			}
		}
	}

	if measured > 0 {
		result.AvgEdgeLength = totalLength / float64(measured)
	} else {
		result.MinEdgeLength = 0
	}
	if result.VertexCount > 0 {
		result.Dimensions = result.BoundingBox.Size()
	}

	return result
}

// Summary formats the result as a short multi-line report
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"Figures: %d\nVertices: %d\nEdges: %d\nFaces: %d\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f\n\nEdge length:\n  min: %.2f\n  avg: %.2f\n  max: %.2f",
		r.FigureCount,
		r.VertexCount,
		r.EdgeCount,
		r.FaceCount,
		r.Dimensions.X,
		r.Dimensions.Y,
		r.Dimensions.Z,
		r.MinEdgeLength,
		r.AvgEdgeLength,
		r.MaxEdgeLength,
	)
}
