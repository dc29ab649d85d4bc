package scene

import (
	"optics-bench/pkg/geometry"
)

// PlacedLabel is the result of a placement request. Position is the final
// label centre in canvas pixels; when Displaced is set the renderer draws
// a dotted leader line from Anchor back to Position.
type PlacedLabel struct {
	Anchor    geometry.Point2D
	Position  geometry.Point2D
	Displaced bool
}

// Placer finds non-overlapping positions for text labels within one frame.
// It is an arena: construct a fresh one at the start of each frame and
// discard it at the end; the no-overlap guarantee only holds within a
// frame.
type Placer struct {
	placed []geometry.Rect
}

// NewPlacer returns an empty frame-scoped placer.
func NewPlacer() *Placer {
	return &Placer{}
}

// candidateOffsets are probed in order, as multiples of the label size:
// anchor first, then single-step vertical, horizontal, double vertical,
// and the diagonals.
var candidateOffsets = [][2]float64{
	{0, 0},
	{0, -1}, {0, 1},
	{-1, 0}, {1, 0},
	{0, -2}, {0, 2},
	{-1, -1}, {1, -1},
	{-1, 1}, {1, 1},
}

// Place finds a position for a label of the given size centred near the
// anchor. The first candidate offset whose box does not overlap any
// previously placed box wins; if every candidate collides the label falls
// back to the anchor position, accepting overlap rather than failing.
func (p *Placer) Place(anchorX, anchorY, width, height float64) PlacedLabel {
	anchor := geometry.Point2D{X: anchorX, Y: anchorY}

	for i, off := range candidateOffsets {
		cx := anchorX + off[0]*width
		cy := anchorY + off[1]*height
		box := geometry.NewRect(cx-width/2, cy-height/2, cx+width/2, cy+height/2)

		if p.collides(box) {
			continue
		}
		p.placed = append(p.placed, box)
		return PlacedLabel{
			Anchor:    anchor,
			Position:  geometry.Point2D{X: cx, Y: cy},
			Displaced: i != 0,
		}
	}

	// Every candidate collides; keep the anchor position.
	box := geometry.NewRect(anchorX-width/2, anchorY-height/2, anchorX+width/2, anchorY+height/2)
	p.placed = append(p.placed, box)
	return PlacedLabel{Anchor: anchor, Position: anchor}
}

func (p *Placer) collides(box geometry.Rect) bool {
	for _, other := range p.placed {
		if box.Intersects(other) {
			return true
		}
	}
	return false
}
