package main

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"stackbox/pkg/layout"
	"stackbox/pkg/render"
	"stackbox/pkg/stack"
)

var palette = []struct{ background, accent color.Color }{
	{color.NRGBA{R: 0x1d, G: 0x35, B: 0x57, A: 0xff}, color.NRGBA{R: 0xa8, G: 0xda, B: 0xdc, A: 0xff}},
	{color.NRGBA{R: 0x2a, G: 0x9d, B: 0x8f, A: 0xff}, color.NRGBA{R: 0xe9, G: 0xc4, B: 0x6a, A: 0xff}},
	{color.NRGBA{R: 0x6d, G: 0x59, B: 0x7a, A: 0xff}, color.NRGBA{R: 0xea, G: 0xac, B: 0x8b, A: 0xff}},
	{color.NRGBA{R: 0x58, G: 0x2f, B: 0x0e, A: 0xff}, color.NRGBA{R: 0xdd, G: 0xa1, B: 0x5e, A: 0xff}},
}

func pageImage(number int) fyne.CanvasObject {
	colors := palette[(number-1)%len(palette)]
	img := render.NewRenderer(480, 320).Card(number, colors.background, colors.accent)

	page := canvas.NewImageFromImage(img)
	page.FillMode = canvas.ImageFillContain
	page.SetMinSize(fyne.NewSize(480, 320))
	return page
}

func main() {
	a := app.New()
	w := a.NewWindow("stackdemo")

	pages := stack.NewBox(pageImage(1), pageImage(2), pageImage(3))

	status := widget.NewLabel(fmt.Sprintf("page 1 / %d", pages.Count()))
	pages.OnCurrentIndexChanged(func(index int) {
		status.SetText(fmt.Sprintf("page %d / %d", index+1, pages.Count()))
	})

	prev := widget.NewButton("Prev", func() {
		if i := pages.CurrentIndex(); i > 0 {
			pages.SetCurrentIndex(i - 1)
		}
	})
	next := widget.NewButton("Next", func() {
		if i := pages.CurrentIndex(); i < pages.Count()-1 {
			pages.SetCurrentIndex(i + 1)
		}
	})
	add := widget.NewButton("Add", func() {
		pages.Append(pageImage(pages.Count() + 1))
	})
	remove := widget.NewButton("Remove", func() {
		pages.RemoveAt(pages.CurrentIndex())
	})

	animators := widget.NewSelect(
		[]string{"none", "slide horizontal", "slide vertical", "scale"},
		func(choice string) {
			switch choice {
			case "slide horizontal":
				pages.SetAnimator(stack.NewSlideAnimator(pages, layout.Horizontal))
			case "slide vertical":
				pages.SetAnimator(stack.NewSlideAnimator(pages, layout.Vertical))
			case "scale":
				pages.SetAnimator(stack.NewScaleAnimator(pages))
			default:
				pages.SetAnimator(nil)
			}
		})
	animators.SetSelected("slide horizontal")

	controls := container.NewHBox(prev, next, widget.NewSeparator(), add, remove, animators)
	w.SetContent(container.NewBorder(nil, container.NewVBox(controls, status), nil, nil, pages))
	w.Resize(fyne.NewSize(560, 460))
	w.ShowAndRun()
}
