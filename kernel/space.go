package kernel

// Space is a three-axis extent of independent work items.
type Space struct {
	X, Y, Z int
}

func (sp Space) Size() int { return sp.X * sp.Y * sp.Z }

// Flat linearizes (x,y,z) with z fastest, matching the contiguous layout of
// batched instances.
func (sp Space) Flat(x, y, z int) int { return z + sp.Z*(y+sp.Y*x) }

// Coords inverts Flat.
func (sp Space) Coords(flat int) (x, y, z int) {
	z = flat % sp.Z
	flat /= sp.Z
	y = flat % sp.Y
	x = flat / sp.Y
	return
}
