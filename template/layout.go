package template

import (
	"strings"

	"github.com/lvillar/postletter/recipient"
	"github.com/lvillar/postletter/region"
	"github.com/lvillar/postletter/textfit"
)

// CM is one centimetre in points.
const CM = 72 / 2.54

// A4 page size in points.
const (
	PageWidth  = 21 * CM
	PageHeight = 29.7 * CM
)

// Frame is the fixed geometry and typography of one region of the letter.
type Frame struct {
	Name    string
	X, Y    float64 // top-left corner, points from the page's top-left
	Width   float64
	Height  float64
	Size    float64 // font size in points
	HAlign  region.HAlign
	VAlign  region.VAlign
	Padding region.Padding
}

// Region names, in drawing order.
const (
	RegionTitle   = "title"
	RegionSender  = "sender"
	RegionAddress = "address"
	RegionDate    = "date"
	RegionBody    = "body"
)

// The frames place the address block at 6.2cm from the top edge so that it
// shows through the window of a DL envelope.
var (
	titleFrame = Frame{
		Name: RegionTitle,
		X:    2.5 * CM, Y: 1.9 * CM, Width: 16 * CM, Height: 1.54 * CM,
		Size:   12,
		HAlign: region.Center, VAlign: region.Middle,
	}
	senderFrame = Frame{
		Name: RegionSender,
		X:    2 * CM, Y: 4.7 * CM, Width: 9 * CM, Height: 1.5 * CM,
		Size:   8,
		HAlign: region.Left, VAlign: region.Bottom,
		Padding: region.Padding{Top: 0.3 * CM, Right: 0.1 * CM, Bottom: 0.1 * CM, Left: 0.5 * CM},
	}
	addressFrame = Frame{
		Name: RegionAddress,
		X:    2 * CM, Y: 6.2 * CM, Width: 9 * CM, Height: 3.1 * CM,
		Size:   11,
		HAlign: region.Left, VAlign: region.Middle,
		// The wide right padding keeps clear of the carrier's franking
		// matrix code.
		Padding: region.Padding{Top: 0.1 * CM, Right: 2.5 * CM, Bottom: 0.1 * CM, Left: 0.5 * CM},
	}
	dateFrame = Frame{
		Name: RegionDate,
		X:    PageWidth - 2.5*CM - 6*CM, Y: 9.8 * CM, Width: 6 * CM, Height: 0.5 * CM,
		Size:   11,
		HAlign: region.Right, VAlign: region.Top,
	}
	bodyFrame = Frame{
		Name: RegionBody,
		X:    2.5 * CM, Y: 10.75 * CM, Width: 16 * CM, Height: 16.95 * CM,
		Size:   11,
		HAlign: region.Justify, VAlign: region.Top,
	}
)

// Frames returns the five letter frames in drawing order.
func Frames() []Frame {
	return []Frame{titleFrame, senderFrame, addressFrame, dateFrame, bodyFrame}
}

// ComposeOptions carries the per-run settings that apply to every region.
type ComposeOptions struct {
	Family      string  // registered font family
	ShowBorders bool    // draw each frame's outline
	MinScale    float64 // shrink limit, zero for the textfit default
}

// Compose builds the five regions of one letter page. Only the address block
// depends on the record; dateLine is computed once per run by the caller.
func Compose(t Template, rec recipient.Record, dateLine string, opts ComposeOptions) []region.Region {
	texts := map[string]string{
		RegionTitle:   t.Header,
		RegionSender:  t.ReturnLine,
		RegionAddress: AddressMarkup(rec),
		RegionDate:    textfit.Escape(dateLine),
		RegionBody:    t.Body,
	}

	frames := Frames()
	regions := make([]region.Region, len(frames))
	for i, f := range frames {
		regions[i] = region.Region{
			Name:       f.Name,
			Text:       texts[f.Name],
			Font:       region.FontSpec{Family: opts.Family, Size: f.Size},
			HAlign:     f.HAlign,
			VAlign:     f.VAlign,
			Padding:    f.Padding,
			X:          f.X,
			Y:          f.Y,
			Width:      f.Width,
			Height:     f.Height,
			ShowBorder: opts.ShowBorders,
			MinScale:   opts.MinScale,
		}
	}
	return regions
}

// AddressMarkup renders the address lines of rec as markup, escaping the
// record data so it is printed literally.
func AddressMarkup(rec recipient.Record) string {
	lines := rec.AddressLines()
	for i, l := range lines {
		lines[i] = textfit.Escape(l)
	}
	return strings.Join(lines, "\n")
}
