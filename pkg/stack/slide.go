package stack

import (
	"time"

	"fyne.io/fyne/v2"

	"stackbox/pkg/layout"
)

// DefaultDuration is the transition length of the built-in animators.
const DefaultDuration = 250 * time.Millisecond

// SlideAnimator slides the incoming page in along one axis while the
// outgoing page slides away. The direction follows index order: moving to a
// higher index pushes content towards the start of the axis.
type SlideAnimator struct {
	baseAnimator

	Duration    time.Duration
	Orientation layout.Orientation
	Curve       fyne.AnimationCurve

	from, to fyne.CanvasObject
	anim     *fyne.Animation
}

func NewSlideAnimator(box *Box, orientation layout.Orientation) *SlideAnimator {
	return &SlideAnimator{
		baseAnimator: baseAnimator{box: box},
		Duration:     DefaultDuration,
		Orientation:  orientation,
		Curve:        fyne.AnimationEaseInOut,
	}
}

func (a *SlideAnimator) Start() {
	if a.running {
		return
	}

	a.from, a.to = a.endpoints()
	if a.from == nil && a.to == nil {
		return
	}

	size := a.box.Size()
	offset := fyne.NewPos(size.Width, 0)
	if a.Orientation.Has(layout.Vertical) {
		offset = fyne.NewPos(0, size.Height)
	}
	if a.endIndex < a.startIndex {
		offset = fyne.NewPos(-offset.X, -offset.Y)
	}

	if a.to != nil {
		a.to.Move(offset)
		a.to.Show()
	}
	if a.from != nil {
		a.from.Show()
	}

	from, to := a.from, a.to
	a.running = true
	a.anim = fyne.NewAnimation(a.Duration, func(progress float32) {
		remaining := 1 - progress
		if to != nil {
			to.Move(fyne.NewPos(offset.X*remaining, offset.Y*remaining))
		}
		if from != nil {
			from.Move(fyne.NewPos(-offset.X*progress, -offset.Y*progress))
		}
		if progress >= 1 {
			a.finish()
		}
	})
	a.anim.Curve = a.Curve
	a.anim.Start()
}

func (a *SlideAnimator) Stop() {
	if !a.running {
		return
	}
	if a.anim != nil {
		a.anim.Stop()
		a.anim = nil
	}
	a.finish()
}

// finish applies the terminal state of the transition: the outgoing page
// hidden and parked at the origin, the incoming page visible at the origin.
func (a *SlideAnimator) finish() {
	if !a.running {
		return
	}
	a.running = false

	if a.from != nil && a.from != a.to {
		a.from.Hide()
		a.from.Move(fyne.NewPos(0, 0))
	}
	if a.to != nil {
		a.to.Show()
		a.to.Move(fyne.NewPos(0, 0))
	}
	a.from, a.to = nil, nil

	a.refresh()
}
