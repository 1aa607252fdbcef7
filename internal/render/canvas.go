package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is the offscreen logical surface screens draw into. It implements
// Drawer and is shared by every renderer.
type Canvas struct {
	img   *image.RGBA
	faces *faceCache
}

func NewCanvas(width, height int, logger Logger) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height)), faces: newFaceCache(logger)}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillBackground(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	// Inclusive of the far edges, like Rect containment.
	r := image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X+1, rect.Max.Y+1).Intersect(c.img.Bounds())
	draw.Draw(c.img, r, &image.Uniform{C: col}, image.Point{}, draw.Over)
}

func (c *Canvas) StrokeRect(rect image.Rectangle, col color.Color, width int) {
	if width <= 0 {
		width = 1
	}
	minX, minY, maxX, maxY := rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y
	c.FillRect(image.Rect(minX, minY, maxX, minY+width-1), col)
	c.FillRect(image.Rect(minX, maxY-width+1, maxX, maxY), col)
	c.FillRect(image.Rect(minX, minY, minX+width-1, maxY), col)
	c.FillRect(image.Rect(maxX-width+1, minY, maxX, maxY), col)
}

func (c *Canvas) FillCircle(cx, cy, radius float64, col color.Color) {
	c.circle(cx, cy, radius, -1, col)
}

// StrokeCircle paints the ring of pixels within width of the circle's edge.
func (c *Canvas) StrokeCircle(cx, cy, radius float64, col color.Color, width int) {
	if width <= 0 {
		width = 1
	}
	c.circle(cx, cy, radius, radius-float64(width), col)
}

// circle paints every pixel whose centre lies within radius of (cx, cy) and
// strictly outside inner (inner < 0 fills the whole disc).
func (c *Canvas) circle(cx, cy, radius, inner float64, col color.Color) {
	if radius < 0 {
		return
	}
	src := color.RGBAModel.Convert(col).(color.RGBA)
	bounds := c.img.Bounds()
	minX := max(int(math.Floor(cx-radius)), bounds.Min.X)
	maxX := min(int(math.Ceil(cx+radius)), bounds.Max.X-1)
	minY := max(int(math.Floor(cy-radius)), bounds.Min.Y)
	maxY := min(int(math.Ceil(cy+radius)), bounds.Max.Y-1)
	outer2 := radius * radius
	inner2 := inner * inner
	for y := minY; y <= maxY; y++ {
		dy := float64(y) - cy
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - cx
			d2 := dx*dx + dy*dy
			if d2 > outer2 || (inner >= 0 && d2 < inner2) {
				continue
			}
			c.img.SetRGBA(x, y, src)
		}
	}
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	face := c.faces.face(style.Size)
	m := face.Metrics()
	return TextMetrics{
		Width:      font.MeasureString(face, text).Ceil(),
		Height:     m.Ascent.Ceil() + m.Descent.Ceil(),
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		LineHeight: m.Height.Ceil(),
	}
}

func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	metrics := c.MeasureText(text, style)
	switch style.Align {
	case TextAlignCenter:
		x -= metrics.Width / 2
	case TextAlignRight:
		x -= metrics.Width
	}
	fg := style.Color
	if fg == nil {
		fg = color.Black
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: fg},
		Face: c.faces.face(style.Size),
		Dot:  fixed.P(x, y+metrics.Ascent),
	}
	drawer.DrawString(text)
	return metrics
}

func (c *Canvas) DrawTextCentered(text string, style TextStyle) {
	w, h := c.Size()
	metrics := c.MeasureText(text, style)
	style.Align = TextAlignCenter
	c.DrawText(text, w/2, (h-metrics.Height)/2, style)
}

func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode) {
	if img == nil || rect.Empty() {
		return
	}
	dst := fitRect(img.Bounds(), rect, mode)
	// Scale into a temporary RGBA and composite with alpha
	temp := image.NewRGBA(dst)
	xdraw.NearestNeighbor.Scale(temp, temp.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	draw.Draw(c.img, dst.Intersect(rect), temp, dst.Intersect(rect).Min, draw.Over)
}

// fitRect places src inside rect according to mode, centred.
func fitRect(src, rect image.Rectangle, mode ScaleMode) image.Rectangle {
	if mode == ScaleModeStretch || src.Dx() == 0 || src.Dy() == 0 {
		return rect
	}
	sx := float64(rect.Dx()) / float64(src.Dx())
	sy := float64(rect.Dy()) / float64(src.Dy())
	scale := math.Min(sx, sy)
	if mode == ScaleModeFill {
		scale = math.Max(sx, sy)
	}
	w := int(math.Round(float64(src.Dx()) * scale))
	h := int(math.Round(float64(src.Dy()) * scale))
	x := rect.Min.X + (rect.Dx()-w)/2
	y := rect.Min.Y + (rect.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}
