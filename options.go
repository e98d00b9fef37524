package postletter

import (
	"log/slog"
	"time"

	"github.com/lvillar/postletter/template"
)

// Option is a functional option for configuring a Renderer via New.
type Option func(*settings)

// Metadata is written to the document information dictionary. Creator and
// producer are always left blank.
type Metadata struct {
	Title   string
	Author  string
	Subject string
}

type settings struct {
	template    template.Template
	meta        Metadata
	fonts       *FontSet
	fontDir     string
	fontFiles   FontFiles
	clock       func() time.Time
	zone        string
	locale      string
	dateLayout  string
	showBorders bool
	strict      bool
	compress    bool
	minScale    float64
	letterhead  []byte
	letterPath  string
	mark        Symbology
	logger      *slog.Logger
}

func defaultSettings() settings {
	return settings{
		template:   template.Default(),
		fontFiles:  DefaultFontFiles(),
		clock:      time.Now,
		zone:       template.DefaultZone,
		locale:     template.DefaultLocale,
		dateLayout: template.DefaultDateLayout,
		compress:   true,
	}
}

// WithTemplate sets the letter texts.
func WithTemplate(t template.Template) Option {
	return func(s *settings) {
		s.template = t
	}
}

// WithMetadata sets the document title, author and subject.
func WithMetadata(m Metadata) Option {
	return func(s *settings) {
		s.meta = m
	}
}

// WithFonts uses an already loaded font family. It takes precedence over
// WithFontDir.
func WithFonts(fs FontSet) Option {
	return func(s *settings) {
		s.fonts = &fs
	}
}

// WithFontDir loads the four font variants from dir when the Renderer is
// created. Without it, and without WithFonts, the embedded Go fonts are used.
func WithFontDir(dir string, files FontFiles) Option {
	return func(s *settings) {
		s.fontDir = dir
		s.fontFiles = files
	}
}

// WithClock sets the source of the letter date. It is read once per Render.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.clock = now
	}
}

// WithTimezone sets the IANA zone the letter date is taken in (default CET).
func WithTimezone(name string) Option {
	return func(s *settings) {
		s.zone = name
	}
}

// WithLocale selects the month names of the date line, e.g. "de_DE" or
// "de_AT".
func WithLocale(locale string) Option {
	return func(s *settings) {
		s.locale = locale
	}
}

// WithDateLayout sets the Go time layout of the date, default
// "02. January 2006".
func WithDateLayout(layout string) Option {
	return func(s *settings) {
		s.dateLayout = layout
	}
}

// WithShowBorders outlines every text region, for checking a layout.
func WithShowBorders(show bool) Option {
	return func(s *settings) {
		s.showBorders = show
	}
}

// WithStrict makes Render fail on the first invalid record instead of
// skipping it.
func WithStrict(strict bool) Option {
	return func(s *settings) {
		s.strict = strict
	}
}

// WithCompression toggles zlib compression of page content (default on).
func WithCompression(compress bool) Option {
	return func(s *settings) {
		s.compress = compress
	}
}

// WithMinScale sets the smallest factor text may be shrunk by before a
// record is rejected.
func WithMinScale(scale float64) Option {
	return func(s *settings) {
		s.minScale = scale
	}
}

// WithLetterhead places page 1 of the PDF at path under every letter.
func WithLetterhead(path string) Option {
	return func(s *settings) {
		s.letterPath = path
		s.letterhead = nil
	}
}

// WithLetterheadBytes is WithLetterhead for a PDF already in memory.
func WithLetterheadBytes(pdf []byte) Option {
	return func(s *settings) {
		s.letterhead = pdf
		s.letterPath = ""
	}
}

// WithInserterMark prints a machine-readable sequence mark in the left
// margin of every page. NoMark, the default, prints nothing.
func WithInserterMark(sym Symbology) Option {
	return func(s *settings) {
		s.mark = sym
	}
}

// WithLogger sets the logger for skipped records and run summaries.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
