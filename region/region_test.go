package region

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lvillar/postletter/textfit"
)

type textCall struct {
	x, y  float64
	text  string
	style textfit.Style
	size  float64
}

// recordingCanvas measures every character as half the font size and keeps
// all drawing calls. Its font extent is zero unless ascent is set.
type recordingCanvas struct {
	ascent  float64
	descent float64
	bold    float64 // extra ascent of the bold variant

	style textfit.Style
	size  float64
	texts []textCall
	rects [][4]float64
}

func (c *recordingCanvas) SetFont(_ string, st textfit.Style, size float64) {
	c.style, c.size = st, size
}

func (c *recordingCanvas) StringWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * c.size / 2
}

func (c *recordingCanvas) FontExtent(_ string, st textfit.Style) (float64, float64) {
	if st == textfit.Bold || st == textfit.BoldItalic {
		return c.ascent + c.bold, c.descent
	}
	return c.ascent, c.descent
}

func (c *recordingCanvas) Text(x, y float64, s string) {
	c.texts = append(c.texts, textCall{x: x, y: y, text: s, style: c.style, size: c.size})
}

func (c *recordingCanvas) Rect(x, y, w, h, _ float64) {
	c.rects = append(c.rects, [4]float64{x, y, w, h})
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestDrawLeftTop(t *testing.T) {
	c := &recordingCanvas{}
	r := Region{
		Name: "test", Text: "ab cd", Font: FontSpec{Family: "F", Size: 10},
		X: 100, Y: 200, Width: 200, Height: 50,
		Padding: Padding{Left: 5, Top: 3},
	}
	p, err := Draw(c, r)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if p.Block.Scale != 1 {
		t.Errorf("scale = %v", p.Block.Scale)
	}
	if len(c.texts) != 2 {
		t.Fatalf("got %d text calls", len(c.texts))
	}
	// baseline: top + 0.5*leading + 0.3*size = 203 + 6 + 3
	if !near(c.texts[0].x, 105) || !near(c.texts[0].y, 212) {
		t.Errorf("first word at (%v, %v)", c.texts[0].x, c.texts[0].y)
	}
	// "ab" is 10 wide, space 5
	if !near(c.texts[1].x, 120) {
		t.Errorf("second word x = %v", c.texts[1].x)
	}
	if len(c.rects) != 0 {
		t.Errorf("border drawn without ShowBorder")
	}
}

func TestFirstBaselineClearsFrameTop(t *testing.T) {
	c := &recordingCanvas{ascent: 0.945, descent: 0.211}
	r := Region{
		Name: "date", Text: "Österreich", Font: FontSpec{Size: 11},
		X: 0, Y: 100, Width: 200, Height: 14.17,
	}
	p, err := Draw(c, r)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if p.Block.Scale != 1 {
		t.Errorf("scale = %v", p.Block.Scale)
	}
	// umlaut caps reach 0.883 em in the Go font
	top := c.texts[0].y - 0.883*11
	if top < r.Y {
		t.Errorf("glyph top %.2f above frame top %.2f", top, r.Y)
	}
	if !near(c.texts[0].y, 100+0.945*11) {
		t.Errorf("baseline = %v, want %v", c.texts[0].y, 100+0.945*11)
	}
}

func TestExtentCoversEveryStyleUsed(t *testing.T) {
	c := &recordingCanvas{ascent: 0.8, descent: 0.2, bold: 0.1}
	plain, err := Layout(c, Region{Text: "a", Font: FontSpec{Size: 10}, Width: 100, Height: 50})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	bold, err := Layout(c, Region{Text: "a <b>b</b>", Font: FontSpec{Size: 10}, Width: 100, Height: 50})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !near(plain.Block.Ascent, 8) || !near(bold.Block.Ascent, 9) {
		t.Errorf("ascent plain %v bold %v, want 8 and 9", plain.Block.Ascent, bold.Block.Ascent)
	}
}

func TestShrinkKeepsGlyphsInsideFrame(t *testing.T) {
	c := &recordingCanvas{ascent: 0.945, descent: 0.211}
	r := Region{
		Text: strings.Repeat("Übergröße ", 40), Font: FontSpec{Size: 11},
		X: 10, Y: 20, Width: 150, Height: 60, VAlign: Bottom,
	}
	p, err := Draw(c, r)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	size := p.Block.Size
	for _, tc := range c.texts {
		if tc.y-0.945*size < r.Y-1e-6 || tc.y+0.211*size > r.Y+r.Height+1e-6 {
			t.Errorf("%q at baseline %.2f leaves %.2f..%.2f", tc.text, tc.y, r.Y, r.Y+r.Height)
		}
	}
}

func TestDrawAlignments(t *testing.T) {
	base := Region{Text: "abcd", Font: FontSpec{Size: 10}, X: 0, Y: 0, Width: 100, Height: 40}

	tests := []struct {
		name   string
		h      HAlign
		v      VAlign
		wantX  float64
		wantTo float64 // line top
	}{
		{"left-top", Left, Top, 0, 0},
		{"center-middle", Center, Middle, 40, 14},
		{"right-bottom", Right, Bottom, 80, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &recordingCanvas{}
			r := base
			r.HAlign, r.VAlign = tt.h, tt.v
			if _, err := Draw(c, r); err != nil {
				t.Fatalf("Draw: %v", err)
			}
			got := c.texts[0]
			if !near(got.x, tt.wantX) {
				t.Errorf("x = %v, want %v", got.x, tt.wantX)
			}
			if !near(got.y, tt.wantTo+6+3) {
				t.Errorf("baseline = %v, want %v", got.y, tt.wantTo+9)
			}
		})
	}
}

func TestJustifyStretchesAllButLastLine(t *testing.T) {
	c := &recordingCanvas{}
	r := Region{
		Text: "aa bb cc dd ee", HAlign: Justify,
		Font: FontSpec{Size: 10}, Width: 50, Height: 100,
	}
	p, err := Draw(c, r)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(p.Block.Lines) != 2 {
		t.Fatalf("got %d lines", len(p.Block.Lines))
	}
	// line 1: "aa bb cc" natural 40 wide, 10 slack over 2 gaps
	var first []textCall
	for _, tc := range c.texts {
		if near(tc.y, c.texts[0].y) {
			first = append(first, tc)
		}
	}
	if len(first) != 3 {
		t.Fatalf("first line has %d words", len(first))
	}
	last := first[2]
	if !near(last.x+10, 50) {
		t.Errorf("justified line ends at %v, want 50", last.x+10)
	}
	// last line stays ragged
	tail := c.texts[len(c.texts)-1]
	if !near(tail.x, 15) {
		t.Errorf("last line second word x = %v, want 15", tail.x)
	}
}

func TestShrinkKeepsTextInsideFrame(t *testing.T) {
	c := &recordingCanvas{}
	r := Region{
		Name: "address", Text: strings.Repeat("Industriestraße ", 30),
		Font: FontSpec{Size: 11}, X: 56.69, Y: 175.75, Width: 255.12, Height: 87.87,
		Padding: Padding{Top: 2.83, Right: 70.87, Bottom: 2.83, Left: 14.17},
	}
	p, err := Draw(c, r)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if p.Block.Scale >= 1 {
		t.Fatalf("expected text to shrink, scale %v", p.Block.Scale)
	}
	ix, iy, iw, ih := r.Inner()
	for _, tc := range c.texts {
		w := float64(utf8.RuneCountInString(tc.text)) * tc.size / 2
		if tc.x < ix-1e-6 || tc.x+w > ix+iw+1e-6 {
			t.Errorf("%q spans x %.2f..%.2f outside %.2f..%.2f", tc.text, tc.x, tc.x+w, ix, ix+iw)
		}
		if tc.y < iy || tc.y > iy+ih {
			t.Errorf("%q baseline %.2f outside %.2f..%.2f", tc.text, tc.y, iy, iy+ih)
		}
		if !near(tc.size, 11*p.Block.Scale) {
			t.Errorf("%q drawn at %v, want uniform %v", tc.text, tc.size, 11*p.Block.Scale)
		}
	}
}

func TestBorderAndStyles(t *testing.T) {
	c := &recordingCanvas{}
	r := Region{
		Text: "<b>fett</b> normal <i>schräg</i>", Font: FontSpec{Size: 8},
		X: 1, Y: 2, Width: 300, Height: 30, ShowBorder: true,
	}
	if _, err := Draw(c, r); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(c.rects) != 1 || c.rects[0] != [4]float64{1, 2, 300, 30} {
		t.Errorf("rects = %v", c.rects)
	}
	want := []textfit.Style{textfit.Bold, textfit.Regular, textfit.Italic}
	for i, st := range want {
		if c.texts[i].style != st {
			t.Errorf("word %d style %v, want %v", i, c.texts[i].style, st)
		}
	}
}

func TestLayoutErrorNamesRegion(t *testing.T) {
	c := &recordingCanvas{}
	_, err := Layout(c, Region{Name: "date", Text: "x", Font: FontSpec{Size: 11}, Width: 10, Height: 0.1, MinScale: 0.5})
	if !errors.Is(err, textfit.ErrNoFit) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "date") {
		t.Errorf("error %q does not name the region", err)
	}
}

func TestDefaultLeading(t *testing.T) {
	if DefaultLeading(11) != 12 || DefaultLeading(10) != 12 || DefaultLeading(8) != 9 {
		t.Error("unexpected default leading")
	}
	if (FontSpec{Size: 8, Leading: 10}).leading() != 10 {
		t.Error("explicit leading ignored")
	}
}
