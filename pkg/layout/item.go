package layout

import "fyne.io/fyne/v2"

// DynamicSizer is implemented by canvas objects whose preferred size on one
// axis depends on the space offered on the other, like wrapping content.
// ConstraintOrientation reports which axes are dynamic: Vertical means the
// height depends on the width, Horizontal means the width depends on the
// height.
type DynamicSizer interface {
	ConstraintOrientation() Orientation
	HeightForWidth(width float64) float64
	WidthForHeight(height float64) float64
}

// Item associates a child canvas object with the layout metadata a container
// needs: visibility retention, constraint orientation and size hints.
type Item interface {
	Object() fyne.CanvasObject
	HasDynamicConstraint() bool
	DynamicConstraintOrientation() Orientation
	SizeHint(which SizeHint, constraint Size) Size
	SetRetainSizeWhenHidden(retain bool)
	RetainSizeWhenHidden() bool
}

// BoxItem is the default Item implementation wrapping a fyne.CanvasObject.
// Objects that implement DynamicSizer opt in to cross-axis dependent sizing;
// everything else is sized by its MinSize.
type BoxItem struct {
	object     fyne.CanvasObject
	retainSize bool
}

func NewBoxItem(object fyne.CanvasObject) *BoxItem {
	return &BoxItem{object: object}
}

func (it *BoxItem) Object() fyne.CanvasObject {
	return it.object
}

func (it *BoxItem) HasDynamicConstraint() bool {
	return it.DynamicConstraintOrientation() != 0
}

func (it *BoxItem) DynamicConstraintOrientation() Orientation {
	if ds, ok := it.object.(DynamicSizer); ok {
		return ds.ConstraintOrientation()
	}
	return 0
}

// SizeHint returns the size hint of the wrapped object. Minimum and
// preferred both map to the object's MinSize, maximum is unconstrained. A
// constraint on one axis is honored only by objects with a matching dynamic
// constraint.
func (it *BoxItem) SizeHint(which SizeHint, constraint Size) Size {
	if which == MaximumSize {
		return UnconstrainedSize()
	}

	if ds, ok := it.object.(DynamicSizer); ok {
		o := ds.ConstraintOrientation()
		if o.Has(Vertical) && constraint.Width >= 0 {
			return Size{constraint.Width, ds.HeightForWidth(constraint.Width)}
		}
		if o.Has(Horizontal) && constraint.Height >= 0 {
			return Size{ds.WidthForHeight(constraint.Height), constraint.Height}
		}
	}

	min := it.object.MinSize()
	return Size{float64(min.Width), float64(min.Height)}
}

func (it *BoxItem) SetRetainSizeWhenHidden(retain bool) {
	it.retainSize = retain
}

func (it *BoxItem) RetainSizeWhenHidden() bool {
	return it.retainSize
}
