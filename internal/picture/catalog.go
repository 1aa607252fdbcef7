package picture

import "image/color"

// RegionSpec is one fillable area of a picture. Its position in the catalog
// is its hit-test priority: earlier regions win where shapes overlap.
type RegionSpec struct {
	Name  string
	Shape Shape
	// Reference is the color the region has in the sample image.
	Reference color.RGBA
}

var (
	black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	pink    = color.RGBA{R: 255, G: 192, B: 203, A: 255}
)

// OutlineColor is used for region outlines and decorations.
var OutlineColor = black

var catalog = map[Picture][]RegionSpec{
	Human: {
		// The head overlaps the top of the body and must be tested first.
		{Name: "head", Shape: Circle{CenterX: 100, CenterY: 80, Radius: 20}, Reference: yellow},
		{Name: "body", Shape: Rect{X: 80, Y: 100, Width: 40, Height: 60}, Reference: blue},
		{Name: "left_arm", Shape: Rect{X: 60, Y: 110, Width: 20, Height: 40}, Reference: red},
		{Name: "right_arm", Shape: Rect{X: 120, Y: 110, Width: 20, Height: 40}, Reference: red},
		{Name: "left_leg", Shape: Rect{X: 85, Y: 160, Width: 15, Height: 40}, Reference: green},
		{Name: "right_leg", Shape: Rect{X: 100, Y: 160, Width: 15, Height: 40}, Reference: green},
	},
	Flower: {
		{Name: "petal_top", Shape: Circle{CenterX: 100, CenterY: 70, Radius: 20}, Reference: pink},
		{Name: "petal_right", Shape: Circle{CenterX: 120, CenterY: 90, Radius: 20}, Reference: yellow},
		{Name: "petal_bottom", Shape: Circle{CenterX: 100, CenterY: 110, Radius: 20}, Reference: magenta},
		{Name: "petal_left", Shape: Circle{CenterX: 80, CenterY: 90, Radius: 20}, Reference: cyan},
		{Name: "stem", Shape: Rect{X: 95, Y: 130, Width: 10, Height: 50}, Reference: green},
		{Name: "leaf1", Shape: Circle{CenterX: 110, CenterY: 140, Radius: 12}, Reference: green},
		{Name: "leaf2", Shape: Circle{CenterX: 85, CenterY: 150, Radius: 12}, Reference: green},
	},
}

// Decorations are drawn with the outlines but can't be filled. Their centres
// scale with the picture; the radius is in display pixels.
var decorations = map[Picture][]Circle{
	Human: {
		{CenterX: 95, CenterY: 75, Radius: 3},
		{CenterX: 105, CenterY: 75, Radius: 3},
	},
}

// RegionsFor returns the ordered regions of p. The caller owns the returned slice.
func RegionsFor(p Picture) []RegionSpec {
	regions := catalog[p]
	out := make([]RegionSpec, len(regions))
	copy(out, regions)
	return out
}

// DecorationsFor returns the fixed decorations of p (may be empty).
func DecorationsFor(p Picture) []Circle {
	decos := decorations[p]
	out := make([]Circle, len(decos))
	copy(out, decos)
	return out
}
