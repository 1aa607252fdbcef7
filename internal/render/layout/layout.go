package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenterIn returns a rectangle of size (widthPx,heightPx) centred in rect.
// Odd leftovers go to the right and bottom.
func CenterIn(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// AnchorTopRight returns a rectangle of size (widthPx,heightPx) placed marginPx
// from the top-right corner of rect.
func AnchorTopRight(rect image.Rectangle, widthPx, heightPx, marginPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	maxX := rect.Max.X - marginPx
	minY := rect.Min.Y + marginPx
	return image.Rect(maxX-widthPx, minY, maxX, minY+heightPx)
}

// Column stacks count squares of sizePx, spacingPx apart, from the top-left of rect.
func Column(rect image.Rectangle, count, sizePx, spacingPx int) []image.Rectangle {
	rect = Normalize(rect)
	if count <= 0 {
		return nil
	}
	out := make([]image.Rectangle, count)
	for i := range out {
		y := rect.Min.Y + i*(sizePx+spacingPx)
		out[i] = image.Rect(rect.Min.X, y, rect.Min.X+sizePx, y+sizePx)
	}
	return out
}

// ContainsInclusive reports whether (x, y) lies in rect with the Max edges
// included, unlike image.Point.In.
func ContainsInclusive(rect image.Rectangle, x, y float64) bool {
	return x >= float64(rect.Min.X) && x <= float64(rect.Max.X) &&
		y >= float64(rect.Min.Y) && y <= float64(rect.Max.Y)
}
