package stack

import (
	"fyne.io/fyne/v2"

	"stackbox/pkg/layout"
)

type boxRenderer struct {
	box *Box
}

// Layout hands the content rect to the placement engine. The first layout
// also marks the box as painted, which is what arms animated switching.
func (r *boxRenderer) Layout(size fyne.Size) {
	r.box.engine.SetGeometry(0, 0, float64(size.Width), float64(size.Height))
	r.box.painted = true
}

// MinSize is the aggregated preferred size over all pages, clamped to zero
// for pages that reported no opinion.
func (r *boxRenderer) MinSize() fyne.Size {
	hint := layout.PreferredSizeHint(r.box.engine.Items())
	if hint.Width < 0 {
		hint.Width = 0
	}
	if hint.Height < 0 {
		hint.Height = 0
	}
	return fyne.NewSize(float32(hint.Width), float32(hint.Height))
}

func (r *boxRenderer) Objects() []fyne.CanvasObject {
	items := r.box.engine.Items()
	objects := make([]fyne.CanvasObject, 0, len(items))
	for _, it := range items {
		objects = append(objects, it.Object())
	}
	return objects
}

func (r *boxRenderer) Refresh() {
	if current := r.box.CurrentItem(); current != nil {
		current.Refresh()
	}
}

func (r *boxRenderer) Destroy() {
	if r.box.animator != nil {
		r.box.animator.Stop()
	}
	if r.box.fallback != nil {
		r.box.fallback.Stop()
	}
}
