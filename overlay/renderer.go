package overlay

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"motviz/mot"
)

const (
	boxThickness  = 2
	fontScale     = 0.7
	fontThickness = 2
	labelOffset   = 5 // pixels above the box top edge
)

// Renderer draws track annotations onto decoded frames.
type Renderer struct {
	palette *Palette
}

// NewRenderer creates a renderer backed by the given palette.
func NewRenderer(palette *Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Draw overlays every record onto img in place: a rectangle outline from
// (Left,Top) to (Left+Width,Top+Height) and an "ID: <id>" label above it,
// both in the id's palette color. Records are drawn in the order given.
func (r *Renderer) Draw(img *gocv.Mat, recs []mot.TrackRecord) {
	for _, rec := range recs {
		c := r.palette.Color(rec.ID)
		rect := image.Rect(rec.Left, rec.Top, rec.Left+rec.Width, rec.Top+rec.Height)
		gocv.Rectangle(img, rect, c, boxThickness)

		label := fmt.Sprintf("ID: %d", rec.ID)
		pos := image.Pt(rec.Left, rec.Top-labelOffset)
		// Keep the label visible when the box touches the top of the frame.
		if pos.Y < 15 {
			pos.Y = rect.Max.Y + 20
		}
		gocv.PutText(img, label, pos, gocv.FontHersheySimplex, fontScale, c, fontThickness)
	}
}
