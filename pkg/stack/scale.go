package stack

import (
	"time"

	"fyne.io/fyne/v2"
)

// ScaleAnimator grows the incoming page from the center of the box over the
// outgoing one, which stays put underneath until the transition completes.
type ScaleAnimator struct {
	baseAnimator

	Duration time.Duration
	Curve    fyne.AnimationCurve

	from, to fyne.CanvasObject
	anim     *fyne.Animation
}

func NewScaleAnimator(box *Box) *ScaleAnimator {
	return &ScaleAnimator{
		baseAnimator: baseAnimator{box: box},
		Duration:     DefaultDuration,
		Curve:        fyne.AnimationEaseOut,
	}
}

func (a *ScaleAnimator) Start() {
	if a.running {
		return
	}

	a.from, a.to = a.endpoints()
	if a.to == nil {
		// nothing to reveal, degrade to an immediate switch
		if a.from != nil {
			a.from.Hide()
			a.from = nil
		}
		return
	}

	size := a.box.Size()
	if a.from != nil {
		a.from.Show()
	}
	a.to.Resize(fyne.NewSize(0, 0))
	a.to.Move(fyne.NewPos(size.Width/2, size.Height/2))
	a.to.Show()

	to := a.to
	a.running = true
	a.anim = fyne.NewAnimation(a.Duration, func(progress float32) {
		w := size.Width * progress
		h := size.Height * progress
		to.Resize(fyne.NewSize(w, h))
		to.Move(fyne.NewPos((size.Width-w)/2, (size.Height-h)/2))
		if progress >= 1 {
			a.finish()
		}
	})
	a.anim.Curve = a.Curve
	a.anim.Start()
}

func (a *ScaleAnimator) Stop() {
	if !a.running {
		return
	}
	if a.anim != nil {
		a.anim.Stop()
		a.anim = nil
	}
	a.finish()
}

func (a *ScaleAnimator) finish() {
	if !a.running {
		return
	}
	a.running = false

	size := a.box.Size()
	if a.from != nil && a.from != a.to {
		a.from.Hide()
	}
	if a.to != nil {
		a.to.Show()
		a.to.Resize(size)
		a.to.Move(fyne.NewPos(0, 0))
	}
	a.from, a.to = nil, nil

	a.refresh()
}
