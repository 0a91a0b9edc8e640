package layout

// ConstraintType selects which constrained scalar metric is computed.
type ConstraintType int

const (
	WidthForHeight ConstraintType = iota
	HeightForWidth
)

// PreferredSizeHint aggregates the preferred sizes of all items into a
// single hint, so a container hosting them never resizes when the visible
// item changes.
//
// The computation runs in two passes. The first takes the per-axis running
// maximum over items without a dynamic constraint, collecting the pending
// constraint orientations of the rest. The second resolves each pending
// orientation against the first pass's result on the opposite axis, widening
// only. The mutual width/height dependency is resolved one-shot rather than
// iterated; the surrounding layout machinery assumes exactly this shape.
func PreferredSizeHint(items []Item) Size {
	width := float64(Unconstrained)
	height := float64(Unconstrained)

	var pending Orientation
	for _, it := range items {
		if it.HasDynamicConstraint() {
			pending |= it.DynamicConstraintOrientation()
			continue
		}

		hint := it.SizeHint(PreferredSize, UnconstrainedSize())
		if hint.Width >= width {
			width = hint.Width
		}
		if hint.Height >= height {
			height = hint.Height
		}
	}

	if pending.Has(Horizontal) {
		// width depends on height: re-query holding the height fixed
		constraint := Size{Unconstrained, height}
		for _, it := range items {
			if !it.HasDynamicConstraint() || !it.DynamicConstraintOrientation().Has(Horizontal) {
				continue
			}
			if hint := it.SizeHint(PreferredSize, constraint); hint.Width > width {
				width = hint.Width
			}
		}
	}

	if pending.Has(Vertical) {
		constraint := Size{width, Unconstrained}
		for _, it := range items {
			if !it.HasDynamicConstraint() || !it.DynamicConstraintOrientation().Has(Vertical) {
				continue
			}
			if hint := it.SizeHint(PreferredSize, constraint); hint.Height > height {
				height = hint.Height
			}
		}
	}

	return Size{width, height}
}

// ConstrainedMetric returns the largest constrained metric over all items
// for the given cross-axis value: the width required for a height, or the
// height required for a width. Hidden items count too; the result is the
// budget for every page a container may show.
func ConstrainedMetric(kind ConstraintType, items []Item, value float64) float64 {
	result := float64(Unconstrained)

	for _, it := range items {
		var v float64
		if kind == WidthForHeight {
			v = itemWidthForHeight(it, value)
		} else {
			v = itemHeightForWidth(it, value)
		}
		if v > result {
			result = v
		}
	}

	return result
}

// itemHeightForWidth resolves one item's height for a given width, falling
// back to the unconstrained preferred height when the item's size does not
// depend on its width.
func itemHeightForWidth(it Item, width float64) float64 {
	if it.HasDynamicConstraint() && it.DynamicConstraintOrientation().Has(Vertical) {
		return it.SizeHint(PreferredSize, Size{width, Unconstrained}).Height
	}
	return it.SizeHint(PreferredSize, UnconstrainedSize()).Height
}

func itemWidthForHeight(it Item, height float64) float64 {
	if it.HasDynamicConstraint() && it.DynamicConstraintOrientation().Has(Horizontal) {
		return it.SizeHint(PreferredSize, Size{Unconstrained, height}).Width
	}
	return it.SizeHint(PreferredSize, UnconstrainedSize()).Width
}
