package stack

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackbox/pkg/layout"
)

// recordingAnimator records the calls a box makes on its animator.
type recordingAnimator struct {
	starts, stops int
	doubleStarts  int
	startIndex    int
	endIndex      int
	window        fyne.Canvas
	running       bool
}

func (a *recordingAnimator) Stop() {
	a.stops++
	a.running = false
}

func (a *recordingAnimator) Start() {
	if a.running {
		a.doubleStarts++
	}
	a.starts++
	a.running = true
}

func (a *recordingAnimator) SetStartIndex(index int)      { a.startIndex = index }
func (a *recordingAnimator) SetEndIndex(index int)        { a.endIndex = index }
func (a *recordingAnimator) SetWindow(window fyne.Canvas) { a.window = window }
func (a *recordingAnimator) Running() bool                { return a.running }

func newPage(w, h float32) fyne.CanvasObject {
	rect := canvas.NewRectangle(color.Black)
	rect.SetMinSize(fyne.NewSize(w, h))
	return rect
}

// countChanges wires a change counter into the box and returns the count and
// the last reported index.
func countChanges(b *Box) (*int, *int) {
	count, last := new(int), new(int)
	*last = -2
	b.OnCurrentIndexChanged(func(index int) {
		*count++
		*last = index
	})
	return count, last
}

// requireInvariant checks that at most one page is visible and that it is
// exactly the current one.
func requireInvariant(t *testing.T, b *Box) {
	t.Helper()
	for i := 0; i < b.Count(); i++ {
		obj := b.ObjectAt(i)
		if i == b.CurrentIndex() {
			require.True(t, obj.Visible(), "current page %d must be visible", i)
		} else {
			require.False(t, obj.Visible(), "page %d must be hidden", i)
		}
	}
}

func TestBox_FirstInsertSelects(t *testing.T) {
	test.NewApp()

	b := NewBox()
	count, last := countChanges(b)

	first := newPage(100, 50)
	b.Append(first)

	assert.Equal(t, 0, b.CurrentIndex())
	assert.Equal(t, first, b.CurrentItem())
	assert.True(t, first.Visible())
	assert.Equal(t, 1, *count)
	assert.Equal(t, 0, *last)

	second := newPage(80, 70)
	b.Append(second)

	assert.Equal(t, 0, b.CurrentIndex(), "later inserts must not steal the selection")
	assert.False(t, second.Visible())
	assert.Equal(t, 1, *count, "no notification for a non-selecting insert")
	requireInvariant(t, b)
}

func TestBox_SetCurrentIndex(t *testing.T) {
	test.NewApp()

	b := NewBox(newPage(100, 50), newPage(80, 70), newPage(90, 60))
	count, last := countChanges(b)

	b.SetCurrentIndex(2)
	assert.Equal(t, 2, b.CurrentIndex())
	assert.Equal(t, 1, *count)
	assert.Equal(t, 2, *last)
	requireInvariant(t, b)

	// out of range clamps to no selection
	b.SetCurrentIndex(7)
	assert.Equal(t, -1, b.CurrentIndex())
	assert.Nil(t, b.CurrentItem())
	assert.Equal(t, 2, *count)
	requireInvariant(t, b)

	// negative input while already empty is a no-op
	b.SetCurrentIndex(-3)
	assert.Equal(t, -1, b.CurrentIndex())
	assert.Equal(t, 2, *count)
}

func TestBox_SetCurrentIndex_Idempotent(t *testing.T) {
	test.NewApp()

	b := NewBox(newPage(100, 50), newPage(80, 70))
	anim := &recordingAnimator{}
	b.SetAnimator(anim)
	stopsBefore := anim.stops
	count, _ := countChanges(b)

	b.SetCurrentIndex(b.CurrentIndex())

	assert.Equal(t, 0, *count, "no notification for a no-op switch")
	assert.Equal(t, stopsBefore, anim.stops, "a no-op switch must not touch the animator")
}

func TestBox_SetCurrentItem(t *testing.T) {
	test.NewApp()

	second := newPage(80, 70)
	b := NewBox(newPage(100, 50), second)

	b.SetCurrentItem(second)
	assert.Equal(t, 1, b.CurrentIndex())

	b.SetCurrentItem(newPage(10, 10))
	assert.Equal(t, -1, b.CurrentIndex(), "unknown objects select nothing")
}

func TestBox_RemoveBeforeCurrentShifts(t *testing.T) {
	test.NewApp()

	pages := []fyne.CanvasObject{newPage(10, 10), newPage(20, 20), newPage(30, 30)}
	b := NewBox(pages...)
	b.SetCurrentIndex(2)
	count, last := countChanges(b)

	b.RemoveAt(0)

	assert.Equal(t, 1, b.CurrentIndex())
	assert.Equal(t, pages[2], b.CurrentItem(), "the visible page keeps its identity")
	assert.Equal(t, 1, *count)
	assert.Equal(t, 1, *last)
	requireInvariant(t, b)
}

func TestBox_RemoveAfterCurrent(t *testing.T) {
	test.NewApp()

	b := NewBox(newPage(10, 10), newPage(20, 20), newPage(30, 30))
	count, _ := countChanges(b)

	b.RemoveAt(2)

	assert.Equal(t, 0, b.CurrentIndex())
	assert.Equal(t, 0, *count, "removal after the current page is silent")
	requireInvariant(t, b)
}

func TestBox_RemoveCurrent_SamePosition(t *testing.T) {
	test.NewApp()

	pages := []fyne.CanvasObject{newPage(10, 10), newPage(20, 20), newPage(30, 30)}
	b := NewBox(pages...)
	b.SetCurrentIndex(1)
	count, last := countChanges(b)

	b.RemoveAt(1)

	assert.Equal(t, 1, b.CurrentIndex(), "the page that moved into the slot is selected")
	assert.Equal(t, pages[2], b.CurrentItem())
	assert.Equal(t, 1, *count)
	assert.Equal(t, 1, *last)
	requireInvariant(t, b)
}

func TestBox_RemoveCurrent_Last(t *testing.T) {
	test.NewApp()

	pages := []fyne.CanvasObject{newPage(10, 10), newPage(20, 20)}
	b := NewBox(pages...)
	b.SetCurrentIndex(1)
	count, last := countChanges(b)

	b.RemoveAt(1)

	assert.Equal(t, 0, b.CurrentIndex(), "falls back to the new last page")
	assert.Equal(t, pages[0], b.CurrentItem())
	assert.True(t, pages[0].Visible())
	assert.Equal(t, 1, *count)
	assert.Equal(t, 0, *last)
	requireInvariant(t, b)
}

func TestBox_RemoveCurrent_Empties(t *testing.T) {
	test.NewApp()

	b := NewBox(newPage(10, 10))
	count, last := countChanges(b)

	b.RemoveAt(0)

	assert.Equal(t, -1, b.CurrentIndex())
	assert.Nil(t, b.CurrentItem())
	assert.Equal(t, 1, *count)
	assert.Equal(t, -1, *last)
}

func TestBox_RemoveOutOfRange(t *testing.T) {
	test.NewApp()

	b := NewBox(newPage(10, 10))
	count, _ := countChanges(b)

	b.RemoveAt(-1)
	b.RemoveAt(3)
	b.Remove(newPage(5, 5))

	assert.Equal(t, 1, b.Count())
	assert.Equal(t, 0, *count)
}

func TestBox_InsertBeforeCurrentShifts(t *testing.T) {
	test.NewApp()

	second := newPage(20, 20)
	b := NewBox(newPage(10, 10), second)
	b.SetCurrentIndex(1)
	count, last := countChanges(b)

	inserted := newPage(30, 30)
	b.InsertAt(0, inserted)

	assert.Equal(t, 2, b.CurrentIndex())
	assert.Equal(t, second, b.CurrentItem(), "the visible page keeps its identity")
	assert.False(t, inserted.Visible())
	assert.Equal(t, 1, *count)
	assert.Equal(t, 2, *last)
	requireInvariant(t, b)
}

func TestBox_VisibilityInvariantUnderMutation(t *testing.T) {
	test.NewApp()

	b := NewBox()
	requireInvariant(t, b)

	for i := 0; i < 5; i++ {
		b.Append(newPage(10, 10))
		requireInvariant(t, b)
	}

	script := []func(){
		func() { b.SetCurrentIndex(3) },
		func() { b.RemoveAt(0) },
		func() { b.InsertAt(1, newPage(10, 10)) },
		func() { b.SetCurrentIndex(0) },
		func() { b.RemoveAt(b.CurrentIndex()) },
		func() { b.SetCurrentIndex(-1) },
		func() { b.SetCurrentIndex(2) },
		func() { b.RemoveAt(b.Count() - 1) },
	}
	for i, step := range script {
		step()
		requireInvariant(t, b)
		if idx := b.CurrentIndex(); idx != -1 {
			require.Less(t, idx, b.Count(), "step %d left a dangling index", i)
		}
	}
}

func TestBox_SetAnimatorLifecycle(t *testing.T) {
	test.NewApp()

	b := NewBox(newPage(10, 10), newPage(20, 20))

	first := &recordingAnimator{running: true}
	b.SetAnimator(first)
	assert.Equal(t, 1, first.stops, "a fresh animator is stopped defensively")

	// same instance again is a no-op
	b.SetAnimator(first)
	assert.Equal(t, 1, first.stops)

	first.running = true
	second := &recordingAnimator{}
	b.SetAnimator(second)
	assert.Equal(t, 2, first.stops, "the outgoing animator is stopped before release")
	assert.False(t, first.running)
	assert.Equal(t, 1, second.stops)
	assert.Equal(t, second, b.Animator())

	b.SetAnimator(nil)
	assert.Equal(t, 2, second.stops)
	assert.Nil(t, b.Animator())
	assert.Nil(t, b.EffectiveAnimator())
}

func TestBox_DefaultAnimatorFallback(t *testing.T) {
	test.NewApp()

	fallback := &recordingAnimator{}
	SetDefaultAnimator(func(*Box) Animator { return fallback })
	defer SetDefaultAnimator(nil)

	b := NewBox(newPage(10, 10))

	assert.Nil(t, b.Animator(), "the fallback is not the attached animator")
	assert.Equal(t, Animator(fallback), b.EffectiveAnimator())

	explicit := &recordingAnimator{}
	b.SetAnimator(explicit)
	assert.Equal(t, Animator(explicit), b.EffectiveAnimator(), "an attached animator wins over the fallback")
}

func TestBox_AnimatedSwitch(t *testing.T) {
	test.NewApp()

	pages := []fyne.CanvasObject{newPage(100, 50), newPage(80, 70), newPage(90, 60)}
	b := NewBox(pages...)
	w := test.NewWindow(b)
	defer w.Close()
	b.Resize(fyne.NewSize(300, 200))

	anim := &recordingAnimator{}
	b.SetAnimator(anim)
	stopsBefore := anim.stops
	count, last := countChanges(b)

	b.SetCurrentIndex(1)

	require.Equal(t, 1, anim.starts)
	assert.Equal(t, 0, anim.doubleStarts)
	assert.Equal(t, stopsBefore+1, anim.stops, "a switch stops the animator before restarting it")
	assert.Equal(t, 0, anim.startIndex)
	assert.Equal(t, 1, anim.endIndex)
	assert.NotNil(t, anim.window)

	// the animator owns visibility on this path; the box must not have
	// toggled anything itself
	assert.True(t, pages[0].Visible())
	assert.False(t, pages[1].Visible())

	// the incoming page got its geometry ahead of the transition
	assert.Equal(t, b.Size(), pages[1].Size())

	// the index is committed immediately even though visuals lag
	assert.Equal(t, 1, b.CurrentIndex())
	assert.Equal(t, 1, *count)
	assert.Equal(t, 1, *last)

	// redirecting mid-flight stops the running transition first
	b.SetCurrentIndex(2)
	assert.Equal(t, 2, anim.starts)
	assert.Equal(t, 0, anim.doubleStarts)
	assert.Equal(t, 1, anim.startIndex)
	assert.Equal(t, 2, anim.endIndex)
}

func TestBox_SwitchWithoutAnimatorIsSynchronous(t *testing.T) {
	test.NewApp()

	pages := []fyne.CanvasObject{newPage(100, 50), newPage(80, 70)}
	b := NewBox(pages...)
	w := test.NewWindow(b)
	defer w.Close()
	b.Resize(fyne.NewSize(300, 200))

	b.SetCurrentIndex(1)

	assert.False(t, pages[0].Visible())
	assert.True(t, pages[1].Visible())
}

func TestBox_OffscreenSwitchIgnoresAnimator(t *testing.T) {
	test.NewApp()

	pages := []fyne.CanvasObject{newPage(100, 50), newPage(80, 70)}
	b := NewBox(pages...)

	anim := &recordingAnimator{}
	b.SetAnimator(anim)

	b.SetCurrentIndex(1)

	assert.Equal(t, 0, anim.starts, "no surface, no transition")
	assert.False(t, pages[0].Visible())
	assert.True(t, pages[1].Visible())
	assert.Equal(t, 1, b.CurrentIndex())
}

func TestBox_MinSizeAggregatesAllPages(t *testing.T) {
	test.NewApp()

	b := NewBox(newPage(100, 50), newPage(80, 70))

	want := fyne.NewSize(100, 70)
	assert.Equal(t, want, b.MinSize())

	b.SetCurrentIndex(1)
	assert.Equal(t, want, b.MinSize(), "switching pages must not change the hint")
}

func TestBox_ConstrainedMetrics(t *testing.T) {
	test.NewApp()

	b := NewBox(newPage(100, 50), newPage(80, 70))

	assert.Equal(t, 70.0, b.HeightForWidth(200))
	assert.Equal(t, 100.0, b.WidthForHeight(200))

	hint := b.PreferredSizeHint()
	assert.Equal(t, layout.Size{Width: 100, Height: 70}, hint)
}

// flakyEngine drops its first-cell bookkeeping entry on every removal, like
// a multi-cell-unaware grid engine, until a transpose rebuilds it.
type flakyEngine struct {
	*layout.GridEngine
	corrupt    int
	transposes int
}

func (e *flakyEngine) RemoveItemAt(index int) layout.Item {
	item := e.GridEngine.RemoveItemAt(index)
	if item != nil {
		e.corrupt++
	}
	return item
}

func (e *flakyEngine) ItemAtCell(row, col int) layout.Item {
	if e.corrupt > 0 {
		return nil
	}
	return e.GridEngine.ItemAtCell(row, col)
}

func (e *flakyEngine) Transpose() {
	e.transposes++
	e.corrupt = 0
	e.GridEngine.Transpose()
}

func TestBox_RepairsEngineAfterRemoval(t *testing.T) {
	test.NewApp()

	engine := &flakyEngine{GridEngine: layout.NewGridEngine()}
	b := newBoxWithEngine(engine)
	b.Append(newPage(10, 10))
	b.Append(newPage(20, 20))

	b.RemoveAt(1)

	assert.Equal(t, 2, engine.transposes, "repair is a transpose round-trip")
	assert.NotNil(t, engine.ItemAtCell(0, 0))
	assert.Equal(t, 0, b.CurrentIndex())

	// emptying the stack leaves nothing to repair
	b.RemoveAt(0)
	assert.Equal(t, 2, engine.transposes)
}
