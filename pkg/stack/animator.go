package stack

import "fyne.io/fyne/v2"

// Animator performs the visual transition between two page indices. An
// animator is exclusively owned by the box it is attached to: the box stops
// it before replacing or discarding it, and before starting a new
// transition. Completion is the animator's own business; the box never
// waits for it.
type Animator interface {
	// Stop ends a running transition immediately, applying its final
	// visibility state. Safe to call on an idle animator.
	Stop()
	// Start begins the transition from the configured start index to the
	// end index. The animator alone decides the intermediate visibility of
	// the two pages involved.
	Start()
	SetStartIndex(index int)
	SetEndIndex(index int)
	SetWindow(window fyne.Canvas)
	Running() bool
}

// defaultAnimator is the theme hook consulted by boxes without an explicit
// animator.
var defaultAnimator func(*Box) Animator

// SetDefaultAnimator installs a factory used by boxes that have no animator
// attached, typically from a theme package. A nil factory removes the
// fallback; page switches then toggle visibility synchronously.
func SetDefaultAnimator(factory func(*Box) Animator) {
	defaultAnimator = factory
}

// baseAnimator carries the bookkeeping shared by the built-in animators.
type baseAnimator struct {
	box        *Box
	startIndex int
	endIndex   int
	window     fyne.Canvas
	running    bool
}

func (a *baseAnimator) SetStartIndex(index int) {
	a.startIndex = index
}

func (a *baseAnimator) SetEndIndex(index int) {
	a.endIndex = index
}

func (a *baseAnimator) SetWindow(window fyne.Canvas) {
	a.window = window
}

func (a *baseAnimator) Running() bool {
	return a.running
}

// endpoints resolves the configured indices to page objects. Either may be
// nil when the transition starts or ends on an empty selection. Resolved
// once at Start so structural changes mid-flight cannot retarget a running
// transition.
func (a *baseAnimator) endpoints() (from, to fyne.CanvasObject) {
	return a.box.ObjectAt(a.startIndex), a.box.ObjectAt(a.endIndex)
}

func (a *baseAnimator) refresh() {
	if a.window != nil {
		a.window.Refresh(a.box)
	}
}
