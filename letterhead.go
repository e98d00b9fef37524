package postletter

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"

	"github.com/lvillar/postletter/template"
)

var errNotPDF = errors.New("letterhead: not a PDF file")

// importLetterhead imports page 1 of data into pdf and returns a function
// that places it full-page on the current page. The PDF reader panics on
// malformed input, so panics are turned into errors here.
func importLetterhead(pdf *fpdf.Fpdf, data []byte) (place func(), err error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, errNotPDF
	}
	defer func() {
		if r := recover(); r != nil {
			place, err = nil, fmt.Errorf("letterhead: %v", r)
		}
	}()

	rs := io.ReadSeeker(bytes.NewReader(data))
	imp := gofpdi.NewImporter()
	tpl := imp.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("letterhead: %w", err)
	}
	return func() {
		imp.UseImportedTemplate(pdf, tpl, 0, 0, template.PageWidth, template.PageHeight)
	}, nil
}

// checkLetterhead imports data into a scratch document so that a broken
// letterhead is reported by New rather than halfway through a run.
func checkLetterhead(data []byte) error {
	_, err := importLetterhead(fpdf.New("P", "pt", "A4", ""), data)
	return err
}
