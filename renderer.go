package postletter

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/lvillar/postletter/internal/logger"
	"github.com/lvillar/postletter/recipient"
	"github.com/lvillar/postletter/region"
	"github.com/lvillar/postletter/template"
)

// Renderer fills recipient records into the letter template. Its settings
// are fixed by New; each Render call builds an independent document, so a
// Renderer may be reused but not shared between goroutines during a call.
type Renderer struct {
	s     settings
	fonts FontSet
	zone  *time.Location
	log   *slog.Logger
}

// New validates the options and loads fonts and letterhead. Unreadable
// assets are reported as ErrResource, bad settings as ErrInvalidOption.
func New(opts ...Option) (*Renderer, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	if _, err := template.FormatDate(time.Time{}, s.locale, s.dateLayout); err != nil {
		return nil, newError("New", ErrInvalidOption, err)
	}
	zone, err := time.LoadLocation(s.zone)
	if err != nil {
		return nil, newError("New", ErrInvalidOption, fmt.Errorf("timezone: %w", err))
	}
	if s.clock == nil {
		return nil, newError("New", ErrInvalidOption, fmt.Errorf("clock is nil"))
	}
	if s.minScale < 0 || s.minScale > 1 {
		return nil, newError("New", ErrInvalidOption, fmt.Errorf("min scale %v outside 0..1", s.minScale))
	}
	if !s.mark.valid() {
		return nil, newError("New", ErrInvalidOption, fmt.Errorf("unknown symbology %v", s.mark))
	}

	var fonts FontSet
	switch {
	case s.fonts != nil:
		fonts = *s.fonts
		if err := fonts.validate(); err != nil {
			return nil, err
		}
	case s.fontDir != "":
		if fonts, err = LoadFonts(s.fontDir, s.fontFiles); err != nil {
			return nil, err
		}
	default:
		fonts = GoFonts()
	}

	if s.letterPath != "" {
		if s.letterhead, err = os.ReadFile(s.letterPath); err != nil {
			return nil, newError("New", ErrResource, err)
		}
	}
	if len(s.letterhead) > 0 {
		if err := checkLetterhead(s.letterhead); err != nil {
			return nil, newError("New", ErrResource, err)
		}
	}

	log := s.logger
	if log == nil {
		log = logger.Discard()
	}

	return &Renderer{
		s:     s,
		fonts: fonts,
		zone:  zone,
		log:   log.With(logger.Component("postletter")),
	}, nil
}

// Render is New followed by Renderer.Render.
func Render(records []recipient.Record, tpl template.Template, meta Metadata, opts ...Option) (*Document, error) {
	r, err := New(append([]Option{WithTemplate(tpl), WithMetadata(meta)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return r.Render(records)
}

// Render produces one page per valid record, in input order. The date line
// is computed once and is the same on every page.
//
// A record with a blank required field, or text that cannot be shrunk into
// its frame, is an ErrData. By default it is skipped, logged and listed in the
// report; with WithStrict the run stops at the first one. An empty input or
// a run where every record is skipped yields a valid PDF without pages.
func (r *Renderer) Render(records []recipient.Record) (*Document, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := r.log.With(logger.RunID(runID))

	now := r.s.clock().In(r.zone)
	date, err := template.FormatDate(now, r.s.locale, r.s.dateLayout)
	if err != nil {
		return nil, newError("Render", ErrInvalidOption, err)
	}
	report := Report{
		RunID:    runID,
		DateLine: r.s.template.DateLine(date),
		Total:    len(records),
	}

	pdf, err := r.newPDF(now)
	if err != nil {
		return nil, err
	}
	var placeLetterhead func()
	if len(r.s.letterhead) > 0 {
		if placeLetterhead, err = importLetterhead(pdf, r.s.letterhead); err != nil {
			return nil, newError("Render", ErrResource, err)
		}
	}

	measure, err := r.measureCanvas()
	if err != nil {
		return nil, err
	}
	c := &pdfCanvas{pdf: pdf}
	copts := template.ComposeOptions{
		Family:      r.fonts.Family,
		ShowBorders: r.s.showBorders,
		MinScale:    r.s.minScale,
	}

	for i, rec := range records {
		n := i + 1
		placements, err := r.layoutPage(measure, rec, report.DateLine, copts)
		if err != nil {
			e := recordError("Render", n, err)
			if r.s.strict {
				return nil, e
			}
			log.Warn("skipping record", logger.Record(n), logger.Error(err))
			report.Skipped = append(report.Skipped, Skipped{Record: n, Err: e})
			continue
		}

		pdf.AddPage()
		c.resetPage()
		if placeLetterhead != nil {
			placeLetterhead()
		}
		for _, p := range placements {
			p.Paint(c)
		}
		report.Rendered++
		r.s.mark.draw(pdf, markCode(runID, n, report.Rendered))

		if err := pdf.Error(); err != nil {
			return nil, &Error{Op: "Render", Kind: ErrResource, Record: n, Err: err}
		}
	}

	var data []byte
	if report.Rendered == 0 {
		data = emptyPDF(r.s.meta, now)
	} else {
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, newError("Render", ErrIO, err)
		}
		data = buf.Bytes()
	}

	log.Info("render finished",
		slog.String("result", report.String()),
		logger.Count("rendered", report.Rendered),
		logger.Count("skipped", len(report.Skipped)),
		logger.Elapsed(start),
	)
	return &Document{data: data, report: report}, nil
}

// layoutPage validates rec and fits all five regions. c is only measured
// with, so a failing record leaves nothing behind.
func (r *Renderer) layoutPage(c region.Canvas, rec recipient.Record, dateLine string, opts template.ComposeOptions) ([]region.Placement, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	regions := template.Compose(r.s.template, rec, dateLine, opts)
	placements := make([]region.Placement, 0, len(regions))
	for _, reg := range regions {
		p, err := region.Layout(c, reg)
		if err != nil {
			return nil, err
		}
		placements = append(placements, p)
	}
	return placements, nil
}

func (r *Renderer) newPDF(now time.Time) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.s.compress)

	meta := r.s.meta
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Subject != "" {
		pdf.SetSubject(meta.Subject, true)
	}
	pdf.SetCreator("", false)
	pdf.SetProducer("", false)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)

	if err := r.registerFonts(pdf); err != nil {
		return nil, err
	}
	return pdf, nil
}

// measureCanvas returns a canvas on a page-less document holding the same
// fonts as the output.
func (r *Renderer) measureCanvas() (*pdfCanvas, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	if err := r.registerFonts(pdf); err != nil {
		return nil, err
	}
	return &pdfCanvas{pdf: pdf}, nil
}

func (r *Renderer) registerFonts(pdf *fpdf.Fpdf) error {
	for _, st := range styles {
		pdf.AddUTF8FontFromBytes(r.fonts.Family, st.String(), r.fonts.variant(st))
	}
	if err := pdf.Error(); err != nil {
		return newError("Render", ErrResource, fmt.Errorf("registering font %s: %w", r.fonts.Family, err))
	}
	return nil
}
