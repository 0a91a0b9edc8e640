package layout

// Unconstrained marks an axis that carries no constraint. Size hints use it
// both ways: "no constraint given" on input and "no opinion" on output.
const Unconstrained = -1.0

// Orientation is a set of axis flags.
type Orientation uint8

const (
	Horizontal Orientation = 1 << iota
	Vertical
)

// Has reports whether every axis in o2 is set in o.
func (o Orientation) Has(o2 Orientation) bool {
	return o&o2 == o2
}

// SizeHint selects which of an item's size hints is queried.
type SizeHint int

const (
	MinimumSize SizeHint = iota
	PreferredSize
	MaximumSize
)

// Size represents dimensions (width and height).
type Size struct {
	Width  float64
	Height float64
}

// UnconstrainedSize returns a size with no constraint on either axis.
func UnconstrainedSize() Size {
	return Size{Unconstrained, Unconstrained}
}

// ExpandedTo returns the per-axis maximum of s and other.
func (s Size) ExpandedTo(other Size) Size {
	if other.Width > s.Width {
		s.Width = other.Width
	}
	if other.Height > s.Height {
		s.Height = other.Height
	}
	return s
}
