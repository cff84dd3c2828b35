package docmodel

// NodeBox is an absolute box — left, top, width, height — relative to the
// top-left of a hypothetical infinite page, as opposed to a page-local box.
type NodeBox struct {
	Left, Top, Width, Height float64
}

// Right is Left+Width.
func (b NodeBox) Right() float64 { return b.Left + b.Width }

// Bottom is Top+Height.
func (b NodeBox) Bottom() float64 { return b.Top + b.Height }

// Translate returns a copy of b shifted by (dx, dy).
func (b NodeBox) Translate(dx, dy float64) NodeBox {
	return NodeBox{Left: b.Left + dx, Top: b.Top + dy, Width: b.Width, Height: b.Height}
}

// WithTop returns a copy of b with Top replaced.
func (b NodeBox) WithTop(top float64) NodeBox {
	b.Top = top
	return b
}
