package postletter

import (
	"fmt"
	"strings"

	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/barcode"

	"github.com/lvillar/postletter/template"
)

// Symbology is the barcode type of the inserter mark.
type Symbology int

const (
	NoMark Symbology = iota
	DataMatrix
	QRCode
	PDF417
)

func (s Symbology) String() string {
	switch s {
	case NoMark:
		return "none"
	case DataMatrix:
		return "datamatrix"
	case QRCode:
		return "qr"
	case PDF417:
		return "pdf417"
	default:
		return fmt.Sprintf("Symbology(%d)", int(s))
	}
}

// ParseSymbology accepts the names returned by String; "" means NoMark.
func ParseSymbology(name string) (Symbology, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return NoMark, nil
	case "datamatrix":
		return DataMatrix, nil
	case "qr":
		return QRCode, nil
	case "pdf417":
		return PDF417, nil
	}
	return NoMark, newError("ParseSymbology", ErrInvalidOption, fmt.Errorf("unknown symbology %q", name))
}

func (s Symbology) valid() bool {
	return s >= NoMark && s <= PDF417
}

// The mark sits in the left margin, clear of the 2cm frame edge and below
// the address window.
const (
	markX = 0.5 * template.CM
	markY = 13 * template.CM
)

func (s Symbology) size() (w, h float64) {
	if s == PDF417 {
		return 1.4 * template.CM, 0.7 * template.CM
	}
	return 1.2 * template.CM, 1.2 * template.CM
}

// markCode identifies a page for mail-room inserting machines: run, dataset
// record and page sequence.
func markCode(runID string, record, page int) string {
	short, _, _ := strings.Cut(runID, "-")
	return fmt.Sprintf("%s-%05d-%05d", short, record, page)
}

// draw puts the mark on the current page. Encoding failures are left on pdf.
func (s Symbology) draw(pdf *fpdf.Fpdf, code string) {
	var key string
	switch s {
	case DataMatrix:
		key = barcode.RegisterDataMatrix(pdf, code)
	case QRCode:
		key = barcode.RegisterQR(pdf, code, qr.M, qr.Auto)
	case PDF417:
		key = barcode.RegisterPdf417(pdf, code, 4, 2)
	default:
		return
	}
	if !pdf.Ok() {
		return
	}
	w, h := s.size()
	barcode.Barcode(pdf, key, markX, markY, w, h, false)
}
