package picture

import "image/color"

// Progress compares a fill map against the reference colors of a picture.
type Progress struct {
	Matched int // regions filled with their reference color
	Filled  int // regions filled with any color
	Total   int
}

// Complete reports whether every region carries its reference color.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Matched == p.Total
}

// Percent is the share of matched regions in [0, 100].
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Matched) / float64(p.Total) * 100
}

// Score counts how many regions of p are filled and how many match the
// reference. Keys that are not regions of p are ignored.
func Score(p Picture, fills map[string]color.RGBA) Progress {
	regions := catalog[p]
	progress := Progress{Total: len(regions)}
	for _, region := range regions {
		fill, ok := fills[region.Name]
		if !ok {
			continue
		}
		progress.Filled++
		if fill == region.Reference {
			progress.Matched++
		}
	}
	return progress
}
