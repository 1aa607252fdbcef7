// Package palette defines the colors a region can be filled with.
package palette

import (
	"fmt"
	"image/color"
)

// Entry is a palette color with its display name.
type Entry struct {
	Name  string
	Color color.RGBA
}

var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Orange  = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Purple  = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	Brown   = color.RGBA{R: 165, G: 42, B: 42, A: 255}
	Pink    = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	// Gray is the display background behind the canvas.
	Gray = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

var entries = []Entry{
	{Name: "black", Color: Black},
	{Name: "red", Color: Red},
	{Name: "green", Color: Green},
	{Name: "blue", Color: Blue},
	{Name: "yellow", Color: Yellow},
	{Name: "cyan", Color: Cyan},
	{Name: "magenta", Color: Magenta},
	{Name: "orange", Color: Orange},
	{Name: "purple", Color: Purple},
	{Name: "brown", Color: Brown},
	{Name: "pink", Color: Pink},
	{Name: "white", Color: White},
}

// DefaultIndex is selected at startup and after switching pictures.
const DefaultIndex = 0

func Len() int { return len(entries) }

// Entries returns a copy of the palette in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// At returns the entry at idx, falling back to the default entry when idx is
// out of range.
func At(idx int) Entry {
	if idx < 0 || idx >= len(entries) {
		return entries[DefaultIndex]
	}
	return entries[idx]
}

// NameOf returns the palette name for c, or its hex form when c is not in the palette.
func NameOf(c color.RGBA) string {
	for _, e := range entries {
		if e.Color == c {
			return e.Name
		}
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
