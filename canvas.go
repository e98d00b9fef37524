package postletter

import (
	"github.com/go-pdf/fpdf"

	"github.com/lvillar/postletter/region"
	"github.com/lvillar/postletter/textfit"
)

// pdfCanvas draws regions onto an fpdf document created with point units.
// fpdf writes a font switch into the current page on every SetFont, so text
// is measured on a separate document that never gets a page.
type pdfCanvas struct {
	pdf *fpdf.Fpdf
}

var _ region.Canvas = (*pdfCanvas)(nil)

func (c *pdfCanvas) SetFont(family string, st textfit.Style, size float64) {
	c.pdf.SetFont(family, st.String(), size)
}

func (c *pdfCanvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(s)
}

// FontExtent reads the hhea ascender and descender fpdf keeps in thousandths
// of an em.
func (c *pdfCanvas) FontExtent(family string, st textfit.Style) (float64, float64) {
	d := c.pdf.GetFontDesc(family, st.String())
	return float64(d.Ascent) / 1000, -float64(d.Descent) / 1000
}

func (c *pdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, s)
}

func (c *pdfCanvas) Rect(x, y, w, h, lineWidth float64) {
	c.pdf.SetLineWidth(lineWidth)
	c.pdf.Rect(x, y, w, h, "D")
}

// resetPage puts the graphics state a fresh page starts from.
func (c *pdfCanvas) resetPage() {
	c.pdf.SetTextColor(0, 0, 0)
	c.pdf.SetDrawColor(0, 0, 0)
	c.pdf.SetLineWidth(region.BorderWidth)
}
