package imgdraw

// Polyline is an ordered sequence of points approximating one CurvePath,
// ready for drawing. A drawable polyline has at least 2 points.
type Polyline []Point

// BoundingBox returns the axis-aligned bounding box of the polyline.
// The zero Rect is returned for an empty polyline.
func (pl Polyline) BoundingBox() Rect {
	if len(pl) == 0 {
		return Rect{}
	}
	bb := NewRect(pl[0], pl[0])
	for _, p := range pl[1:] {
		bb = bb.ExpandToInclude(p)
	}
	return bb
}

// Scale returns a new polyline with every point multiplied by factor and
// shifted by offset. The receiver is not modified.
func (pl Polyline) Scale(factor float64, offset Point) Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[i] = p.Mul(factor).Add(offset)
	}
	return out
}

// ScaleAll rescales every polyline into output coordinates: each point
// (x, y) maps to (x*factor + offset.X, y*factor + offset.Y). Pure, total
// function; input polylines are left untouched and relative order is
// preserved.
func ScaleAll(polylines []Polyline, factor float64, offset Point) []Polyline {
	out := make([]Polyline, len(polylines))
	for i, pl := range polylines {
		out[i] = pl.Scale(factor, offset)
	}
	return out
}
