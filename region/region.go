package region

import (
	"fmt"

	"github.com/lvillar/postletter/textfit"
)

// Canvas is the drawing surface a region paints onto. Coordinates are in
// points from the top-left page corner; Text positions the baseline.
//
// FontExtent reports how far a font reaches above and below the baseline,
// as fractions of the font size. A canvas without metrics returns zeros.
type Canvas interface {
	SetFont(family string, style textfit.Style, size float64)
	StringWidth(s string) float64
	FontExtent(family string, style textfit.Style) (ascent, descent float64)
	Text(x, y float64, s string)
	Rect(x, y, w, h, lineWidth float64)
}

// Region is a fixed rectangle holding one block of markup text.
type Region struct {
	Name       string
	Text       string // textfit markup
	Font       FontSpec
	HAlign     HAlign
	VAlign     VAlign
	Padding    Padding
	X, Y       float64 // top-left corner
	Width      float64
	Height     float64
	ShowBorder bool
	MinScale   float64 // see textfit.Spec; zero for the default
}

// Inner returns the text box left after padding.
func (r Region) Inner() (x, y, w, h float64) {
	return r.X + r.Padding.Left,
		r.Y + r.Padding.Top,
		r.Width - r.Padding.Left - r.Padding.Right,
		r.Height - r.Padding.Top - r.Padding.Bottom
}

// Placement is a region whose text has been measured and fitted.
type Placement struct {
	Region Region
	Block  textfit.Block
}

// Layout measures r's text on c and fits it into the frame.
func Layout(c Canvas, r Region) (Placement, error) {
	_, _, w, h := r.Inner()
	m := textfit.MeasureFunc(func(s string, st textfit.Style, size float64) float64 {
		c.SetFont(r.Font.Family, st, size)
		return c.StringWidth(s)
	})
	paras := textfit.Parse(r.Text)
	ascent, descent := extent(c, r.Font.Family, paras)
	block, err := textfit.Fit(m, paras, textfit.Spec{
		Size:     r.Font.Size,
		Leading:  r.Font.leading(),
		Width:    w,
		Height:   h,
		MinScale: r.MinScale,
		Ascent:   ascent,
		Descent:  descent,
	})
	if err != nil {
		return Placement{}, fmt.Errorf("region %s: %w", r.Name, err)
	}
	return Placement{Region: r, Block: block}, nil
}

// extent is the largest ascent and descent over the styles paras use.
func extent(c Canvas, family string, paras []textfit.Paragraph) (ascent, descent float64) {
	used := map[textfit.Style]bool{textfit.Regular: true}
	for _, p := range paras {
		for _, run := range p {
			used[run.Style] = true
		}
	}
	for st := range used {
		a, d := c.FontExtent(family, st)
		ascent, descent = max(ascent, a), max(descent, d)
	}
	return ascent, descent
}

// Paint draws a laid-out region. The font is set explicitly for every
// segment, so nothing depends on what was drawn before.
func (p Placement) Paint(c Canvas) {
	r := p.Region
	b := p.Block
	ix, iy, iw, ih := r.Inner()

	top := iy
	switch r.VAlign {
	case Middle:
		top = iy + (ih-b.Height)/2
	case Bottom:
		top = iy + ih - b.Height
	}

	for i, line := range b.Lines {
		baseline := top + b.Ascent + float64(i)*b.Leading
		x, extra := lineStart(r.HAlign, line, ix, iw)
		for j, word := range line.Words {
			if j > 0 {
				x += line.Spaces[j] + extra
			}
			for _, seg := range word.Segments {
				c.SetFont(r.Font.Family, seg.Style, b.Size)
				c.Text(x, baseline, seg.Text)
				x += seg.Width
			}
		}
	}

	if r.ShowBorder {
		c.Rect(r.X, r.Y, r.Width, r.Height, BorderWidth)
	}
}

// lineStart returns the x of the first word and the extra gap added to every
// inter-word space.
func lineStart(a HAlign, line textfit.Line, x, w float64) (float64, float64) {
	slack := w - line.Width
	switch a {
	case Center:
		return x + slack/2, 0
	case Right:
		return x + slack, 0
	case Justify:
		if line.Last || len(line.Words) < 2 || slack <= 0 {
			return x, 0
		}
		return x, slack / float64(len(line.Words)-1)
	default:
		return x, 0
	}
}

// Draw lays out and paints r in one step.
func Draw(c Canvas, r Region) (Placement, error) {
	p, err := Layout(c, r)
	if err != nil {
		return Placement{}, err
	}
	p.Paint(c)
	return p, nil
}
