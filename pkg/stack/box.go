package stack

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"stackbox/pkg/layout"
)

// Box is a container widget showing exactly one of its pages at a time.
// Switching the current index hides the outgoing page and shows the incoming
// one, animated when an animator is attached and the box is visible on a
// painted canvas. The reported minimum size aggregates the preferred sizes
// of all pages, so switching never forces a resize.
//
// All methods must be called from the UI goroutine; the box has no internal
// locking.
type Box struct {
	widget.BaseWidget

	engine       layout.Engine
	currentIndex int
	animator     Animator
	fallback     Animator
	listeners    []func(int)
	painted      bool
}

// NewBox creates a stack container holding the given pages. The first page,
// if any, becomes current.
func NewBox(objects ...fyne.CanvasObject) *Box {
	b := &Box{engine: layout.NewGridEngine(), currentIndex: -1}
	b.ExtendBaseWidget(b)
	for _, o := range objects {
		b.Append(o)
	}
	return b
}

// newBoxWithEngine lets tests substitute the placement engine.
func newBoxWithEngine(engine layout.Engine) *Box {
	b := &Box{engine: engine, currentIndex: -1}
	b.ExtendBaseWidget(b)
	return b
}

// Count returns the number of pages.
func (b *Box) Count() int {
	return b.engine.Count()
}

// ObjectAt returns the page at index, or nil when out of range.
func (b *Box) ObjectAt(index int) fyne.CanvasObject {
	if it := b.engine.ItemAt(index); it != nil {
		return it.Object()
	}
	return nil
}

// Append adds a page at the end of the stack.
func (b *Box) Append(object fyne.CanvasObject) {
	b.InsertAt(b.engine.Count(), object)
}

// InsertAt adds a page at index; out-of-range indices append.
func (b *Box) InsertAt(index int, object fyne.CanvasObject) {
	if object == nil {
		return
	}
	if index < 0 || index > b.engine.Count() {
		index = b.engine.Count()
	}

	item := layout.NewBoxItem(object)
	b.engine.InsertItem(index, item)
	b.itemInserted(item, index)
	b.Refresh()
}

// RemoveAt removes the page at index; out of range is a no-op.
func (b *Box) RemoveAt(index int) {
	item := b.engine.RemoveItemAt(index)
	if item == nil {
		return
	}
	b.itemRemoved(item, index)
	b.Refresh()
}

// Remove removes the given page object; unknown objects are a no-op.
func (b *Box) Remove(object fyne.CanvasObject) {
	b.RemoveAt(b.engine.IndexOf(object))
}

// CurrentIndex returns the index of the visible page, or -1 when none is.
func (b *Box) CurrentIndex() int {
	return b.currentIndex
}

// CurrentItem returns the visible page, or nil when none is.
func (b *Box) CurrentItem() fyne.CanvasObject {
	return b.ObjectAt(b.currentIndex)
}

// SetCurrentIndex switches the visible page. Out-of-range indices, negative
// ones included, select nothing and hide the current page. Setting the
// current index again is a no-op. With an animator available and the box
// visible on a painted canvas the switch is animated; otherwise visibility
// toggles synchronously. Listeners see every committed change either way.
func (b *Box) SetCurrentIndex(index int) {
	if index < 0 || index >= b.engine.Count() {
		index = -1
	}
	if index == b.currentIndex {
		return
	}

	// at most one transition at a time
	animator := b.EffectiveAnimator()
	if animator != nil {
		animator.Stop()
	}

	if canvas := b.canvas(); canvas != nil && b.Visible() && b.painted && animator != nil {
		// Hidden pages do not receive geometry updates, so hand the
		// incoming page its geometry before the transition shows it.
		b.adjustItemAt(index)

		animator.SetStartIndex(b.currentIndex)
		animator.SetEndIndex(index)
		animator.SetWindow(canvas)
		animator.Start()
	} else {
		if old := b.ObjectAt(b.currentIndex); old != nil {
			old.Hide()
		}
		if next := b.ObjectAt(index); next != nil {
			next.Show()
		}
	}

	b.currentIndex = index
	b.notifyCurrentIndexChanged()
}

// SetCurrentItem switches to the page holding object; unknown objects
// select nothing.
func (b *Box) SetCurrentItem(object fyne.CanvasObject) {
	b.SetCurrentIndex(b.engine.IndexOf(object))
}

// SetAnimator attaches animator, taking ownership: the previous animator is
// stopped before being dropped and the new one is stopped so transitions
// always start from idle. Attaching the animator that is already attached
// is a no-op. A nil animator switches the box back to the default animator,
// or to synchronous page changes when none is installed.
func (b *Box) SetAnimator(animator Animator) {
	if animator == b.animator {
		return
	}

	if b.animator != nil {
		b.animator.Stop()
	}
	if animator != nil {
		animator.Stop()
	}

	b.animator = animator
}

// Animator returns the explicitly attached animator, if any.
func (b *Box) Animator() Animator {
	return b.animator
}

// EffectiveAnimator returns the attached animator, falling back to the
// default-animator hook. Nil when neither exists.
func (b *Box) EffectiveAnimator() Animator {
	if b.animator != nil {
		return b.animator
	}
	if b.fallback == nil && defaultAnimator != nil {
		b.fallback = defaultAnimator(b)
	}
	return b.fallback
}

// OnCurrentIndexChanged registers fn to run after every committed change of
// the current index, receiving the new value.
func (b *Box) OnCurrentIndexChanged(fn func(int)) {
	b.listeners = append(b.listeners, fn)
}

func (b *Box) notifyCurrentIndexChanged() {
	for _, fn := range b.listeners {
		fn(b.currentIndex)
	}
}

// HeightForWidth returns the height the stack needs at the given width: the
// largest requirement among all pages, hidden ones included.
func (b *Box) HeightForWidth(width float64) float64 {
	return layout.ConstrainedMetric(layout.HeightForWidth, b.engine.Items(), width)
}

// WidthForHeight returns the width the stack needs at the given height.
func (b *Box) WidthForHeight(height float64) float64 {
	return layout.ConstrainedMetric(layout.WidthForHeight, b.engine.Items(), height)
}

// PreferredSizeHint returns the preferred size aggregated over all pages.
func (b *Box) PreferredSizeHint() layout.Size {
	return layout.PreferredSizeHint(b.engine.Items())
}

func (b *Box) CreateRenderer() fyne.WidgetRenderer {
	return &boxRenderer{box: b}
}

func (b *Box) canvas() fyne.Canvas {
	app := fyne.CurrentApp()
	if app == nil {
		return nil
	}
	return app.Driver().CanvasForObject(b)
}

// adjustItemAt forces the current content geometry onto the page at index.
func (b *Box) adjustItemAt(index int) {
	obj := b.ObjectAt(index)
	if obj == nil {
		return
	}
	obj.Resize(b.Size())
	obj.Move(fyne.NewPos(0, 0))
}

// itemInserted is the structural hook run after the engine took a new item.
func (b *Box) itemInserted(item layout.Item, index int) {
	// The cell table treats a cell as hidden once its first entry is; keep
	// hidden pages occupying space so the stack does not collapse around
	// the visible one.
	item.SetRetainSizeWhenHidden(true)

	if b.engine.Count() == 1 {
		b.currentIndex = 0
		item.Object().Show()
		b.notifyCurrentIndexChanged()
		return
	}

	item.Object().Hide()

	if index <= b.currentIndex {
		// the visible page kept its identity but moved up one slot
		b.currentIndex++
		b.notifyCurrentIndexChanged()
	}
}

// itemRemoved is the structural hook run after the engine dropped an item.
func (b *Box) itemRemoved(item layout.Item, index int) {
	switch {
	case index == b.currentIndex:
		// Prefer the page that moved into the freed slot, then the new
		// last page. Clear first so the stale index is never observable.
		newIndex := index
		if newIndex >= b.engine.Count() {
			newIndex = b.engine.Count() - 1
		}

		b.currentIndex = -1

		if newIndex >= 0 {
			b.SetCurrentIndex(newIndex)
		} else {
			b.notifyCurrentIndexChanged()
		}
	case index < b.currentIndex:
		// the visible page kept its identity but moved down one slot
		b.currentIndex--
		b.notifyCurrentIndexChanged()
	}

	b.repairEngine()
}

// repairEngine works around placement engines that lose the first cell's
// bookkeeping entry when items sharing the cell are removed. A transpose
// round-trip is geometry-neutral but forces the engine to re-derive its
// cell table.
func (b *Box) repairEngine() {
	if b.engine.Count() > 0 && b.engine.ItemAtCell(0, 0) == nil {
		b.engine.Transpose()
		b.engine.Transpose()
	}
}
