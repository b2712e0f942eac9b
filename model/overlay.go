package model

// ComputeOverlay builds the placement preview for shape anchored with its
// top-left cell at (anchorY, anchorX). Occupied cells that land outside the
// grid on any of the four edges are dropped; they never wrap, whatever the
// boundary mode used for stepping. The mask is always built from scratch.
func ComputeOverlay(anchorY, anchorX int, shape *Shape, size int) *Mask {
	mask := NewMask(size)
	if shape == nil {
		return mask
	}
	for dy := range shape.rows {
		for dx := range shape.cols {
			if shape.cells[dy][dx] {
				mask.mark(anchorY+dy, anchorX+dx)
			}
		}
	}
	return mask
}
