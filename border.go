package imgdraw

// Border filtering drops polylines that are artifacts of the image's own
// rectangular boundary rather than drawn content. The heuristic is
// best-effort: a genuine border-hugging stroke that spans the image will be
// misclassified, which is accepted lossy behavior.

// IsBorderCandidate reports whether the polyline is geometrically
// consistent with tracing the image's own edge. imgW and imgH are the
// image dimensions in the polyline's (pre-scale) coordinate system.
//
// A polyline is a candidate if its bounding box spans at least
// dimensionRatio of the image extent on one axis, and hugs at least two of
// the four image edges within pixelTolerance.
func IsBorderCandidate(pl Polyline, imgW, imgH float64, dimensionRatio, pixelTolerance float64) bool {
	if len(pl) == 0 {
		return false
	}
	bb := pl.BoundingBox()

	spansWidth := bb.Width() >= imgW*dimensionRatio
	spansHeight := bb.Height() >= imgH*dimensionRatio
	if !spansWidth && !spansHeight {
		return false
	}

	edges := 0
	if bb.Min.X <= pixelTolerance {
		edges++
	}
	if bb.Max.X >= imgW-pixelTolerance {
		edges++
	}
	if bb.Min.Y <= pixelTolerance {
		edges++
	}
	if bb.Max.Y >= imgH-pixelTolerance {
		edges++
	}
	return edges >= 2
}

// FilterBorders removes every border candidate from the list, preserving
// the relative order of the survivors. Removing all polylines is a valid
// outcome: an image that is literally just a border yields an empty list.
func FilterBorders(polylines []Polyline, imgW, imgH float64, dimensionRatio, pixelTolerance float64) []Polyline {
	out := make([]Polyline, 0, len(polylines))
	for i, pl := range polylines {
		if IsBorderCandidate(pl, imgW, imgH, dimensionRatio, pixelTolerance) {
			logger().Warn("border filter: dropping border path",
				"path", i, "bbox", pl.BoundingBox())
			continue
		}
		out = append(out, pl)
	}
	return out
}
