package postletter

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"
	"unicode/utf16"
)

// emptyPDF writes a valid document with no pages. fpdf always adds a page
// when closing an empty document, so this one is written by hand.
func emptyPDF(meta Metadata, created time.Time) []byte {
	var buf bytes.Buffer
	var offsets []int

	buf.WriteString("%PDF-1.3\n")
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	obj("<</Type /Pages /Kids [] /Count 0 /MediaBox [0 0 595.28 841.89]>>")
	obj("<</Type /Catalog /Pages 1 0 R>>")

	info := "<<"
	for _, f := range []struct{ key, value string }{
		{"Title", meta.Title},
		{"Author", meta.Author},
		{"Subject", meta.Subject},
	} {
		if f.value != "" {
			info += "/" + f.key + " " + pdfText(f.value) + " "
		}
	}
	date := "(D:" + created.Format("20060102150405") + ")"
	info += "/CreationDate " + date + " /ModDate " + date + ">>"
	obj(info)

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<</Size %d /Root 2 0 R /Info 3 0 R>>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

// pdfText encodes s as a UTF-16BE hex string with byte order mark.
func pdfText(s string) string {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 2, 2+2*len(units))
	b[0], b[1] = 0xFE, 0xFF
	for _, u := range units {
		b = append(b, byte(u>>8), byte(u))
	}
	return "<" + hex.EncodeToString(b) + ">"
}
