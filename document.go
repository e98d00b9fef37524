package postletter

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/lvillar/postletter/output"
)

// Skipped records a dataset row that produced no page.
type Skipped struct {
	Record int // 1-based dataset position
	Err    error
}

// Report summarizes a render run.
type Report struct {
	RunID    string
	DateLine string // date line printed on every page
	Total    int    // records given
	Rendered int    // pages produced
	Skipped  []Skipped
}

func (r Report) String() string {
	return fmt.Sprintf("%d of %d pages rendered", r.Rendered, r.Total)
}

// Publisher stores a finished document under a name, e.g. output.S3.
type Publisher interface {
	Publish(ctx context.Context, name string, data []byte) error
}

// Document is a serialized PDF together with the report of the run that
// produced it. It is immutable; it can be finalized any number of times.
type Document struct {
	data   []byte
	report Report
}

// PageCount is the number of pages, one per rendered record.
func (d *Document) PageCount() int { return d.report.Rendered }

// Report returns the run summary.
func (d *Document) Report() Report { return d.report }

// Bytes returns the PDF. The slice must not be modified.
func (d *Document) Bytes() []byte { return d.data }

// WriteTo writes the PDF to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(d.data).WriteTo(w)
}

// Finalize writes the PDF to path atomically, replacing an existing file.
func (d *Document) Finalize(path string) error {
	if err := output.WriteFile(path, d.data); err != nil {
		return newError("Finalize", ErrIO, err)
	}
	return nil
}

// Create is Finalize that fails if path already exists. The error then
// matches output.ErrExists.
func (d *Document) Create(path string) error {
	if err := output.CreateFile(path, d.data); err != nil {
		return newError("Create", ErrIO, err)
	}
	return nil
}

// Publish hands the PDF to p under name.
func (d *Document) Publish(ctx context.Context, p Publisher, name string) error {
	if err := p.Publish(ctx, name, d.data); err != nil {
		return newError("Publish", ErrIO, err)
	}
	return nil
}
