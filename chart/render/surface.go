package render

import (
	"bytes"
	"image/color"

	"github.com/ansel1/merry"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ChuckFork/ZedGraph/chart/draw"
)

// Raster is the default Surface backend. It rasterizes to an in-memory
// PNG via the go-chart renderer.
type Raster struct {
	r chart.Renderer

	width  int
	height int
}

var _ draw.Surface = (*Raster)(nil)

// NewRaster returns a raster surface of the given pixel size.
func NewRaster(width, height int) (*Raster, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, merry.Wrap(err)
	}

	f, err := chart.GetDefaultFont()
	if err != nil {
		return nil, merry.Wrap(err)
	}
	r.SetFont(f)

	return &Raster{r: r, width: width, height: height}, nil
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (s *Raster) SetColor(c color.RGBA) {
	s.r.SetStrokeColor(toDrawing(c))
	s.r.SetFillColor(toDrawing(c))
	s.r.SetFontColor(toDrawing(c))
}

func (s *Raster) SetLineWidth(w float64) { s.r.SetStrokeWidth(w) }

func (s *Raster) SetDash(dashes []float64) { s.r.SetStrokeDashArray(dashes) }

func (s *Raster) SetFontSize(points float64) { s.r.SetFontSize(points) }

func (s *Raster) MoveTo(x, y float64) { s.r.MoveTo(int(x+0.5), int(y+0.5)) }

func (s *Raster) LineTo(x, y float64) { s.r.LineTo(int(x+0.5), int(y+0.5)) }

func (s *Raster) Stroke() { s.r.Stroke() }

func (s *Raster) Fill() {
	s.r.Close()
	s.r.Fill()
}

func (s *Raster) Rectangle(x, y, w, h float64, fill bool) {
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.r.Close()
	if fill {
		s.r.Fill()
	} else {
		s.r.Stroke()
	}
}

func (s *Raster) Arc(cx, cy, r, a1, a2 float64, fill bool) {
	if fill {
		s.MoveTo(cx, cy)
	}
	s.r.ArcTo(int(cx+0.5), int(cy+0.5), r, r, a1, a2-a1)
	if fill {
		s.r.Close()
		s.r.Fill()
	} else {
		s.r.Stroke()
	}
}

func (s *Raster) Text(text string, x, y float64) {
	s.r.Text(text, int(x+0.5), int(y+0.5))
}

func (s *Raster) TextExtents(text string) (w, h float64) {
	box := s.r.MeasureText(text)
	return float64(box.Width()), float64(box.Height())
}

// Bytes finalizes the surface and returns the encoded PNG.
func (s *Raster) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.r.Save(&buf); err != nil {
		return nil, merry.Wrap(err)
	}
	return buf.Bytes(), nil
}
