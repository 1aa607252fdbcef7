// Package picture holds the fixed line drawings that can be colored and the
// geometry used to find which named region sits under a point.
package picture

import (
	"fmt"
	"strings"
)

// ReferenceSize is the side of the square frame every region is authored in.
const ReferenceSize = 200

type Picture int

const (
	Human Picture = iota
	Flower
)

// All lists the pictures in the order "next picture" cycles through them.
var All = []Picture{Human, Flower}

func (p Picture) String() string {
	switch p {
	case Human:
		return "human"
	case Flower:
		return "flower"
	default:
		return fmt.Sprintf("picture(%d)", int(p))
	}
}

// DisplayName is the label shown in the HUD.
func (p Picture) DisplayName() string {
	switch p {
	case Human:
		return "Human"
	case Flower:
		return "Flower"
	default:
		return p.String()
	}
}

// Next returns the picture after p, wrapping around at the end of All.
func (p Picture) Next() Picture {
	for i, candidate := range All {
		if candidate == p {
			return All[(i+1)%len(All)]
		}
	}
	return All[0]
}

// Parse resolves a picture by its String name (case-insensitive).
func Parse(name string) (Picture, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range All {
		if p.String() == name {
			return p, nil
		}
	}
	return Human, fmt.Errorf("unknown picture %q", name)
}
