package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Renderer draws card-style page artwork into an image.
type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Card paints a page card: a filled background, an accent ring and one pip
// per page number, centered below the ring.
func (r *Renderer) Card(number int, background, accent color.Color) image.Image {
	w := float64(r.context.Width())
	h := float64(r.context.Height())

	r.context.SetColor(background)
	r.context.Clear()

	radius := math.Min(w, h) / 3
	r.context.SetColor(accent)
	r.context.SetLineWidth(6)
	r.context.DrawCircle(w/2, h/2, radius)
	r.context.Stroke()

	const pip = 7.0
	const spacing = 3 * pip
	y := h/2 + radius + 3*pip
	for i := 0; i < number; i++ {
		x := w/2 + (float64(i)-float64(number-1)/2)*spacing
		r.context.DrawCircle(x, y, pip)
		r.context.Fill()
	}

	return r.context.Image()
}
