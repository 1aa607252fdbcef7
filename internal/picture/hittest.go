package picture

// HitTest returns the name of the first region of p, in catalog order, whose
// shape scaled by (scaleX, scaleY) contains pt.
func HitTest(p Picture, pt Point, scaleX, scaleY float64) (string, bool) {
	for _, region := range catalog[p] {
		if region.Shape.Scale(scaleX, scaleY).Contains(pt) {
			return region.Name, true
		}
	}
	return "", false
}
