package picture

// Point is a position in canvas pixels (or reference units before scaling).
type Point struct {
	X, Y float64
}

// Shape is either a Circle or a Rect. The set is closed: only this package
// can add variants.
type Shape interface {
	// Scale maps the shape from the reference frame onto a canvas.
	Scale(scaleX, scaleY float64) Shape
	// Contains reports whether p lies inside the shape, boundary included.
	Contains(p Point) bool
	shape()
}

type Circle struct {
	CenterX, CenterY, Radius float64
}

// Scale scales the centre per axis. The radius follows scaleX only, so a
// circle stays round (and keeps matching the reference image) on canvases
// that are not square.
func (c Circle) Scale(scaleX, scaleY float64) Shape {
	return Circle{CenterX: c.CenterX * scaleX, CenterY: c.CenterY * scaleY, Radius: c.Radius * scaleX}
}

func (c Circle) Contains(p Point) bool {
	dx := p.X - c.CenterX
	dy := p.Y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func (Circle) shape() {}

type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Scale(scaleX, scaleY float64) Shape {
	return Rect{X: r.X * scaleX, Y: r.Y * scaleY, Width: r.Width * scaleX, Height: r.Height * scaleY}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

func (Rect) shape() {}
