package textfit

import (
	"strings"
	"unicode/utf8"
)

// Measurer reports the advance width of s when set in the given style and
// size. Widths and sizes share one unit (points for the PDF canvas).
type Measurer interface {
	Width(s string, style Style, size float64) float64
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(s string, style Style, size float64) float64

// Width implements Measurer.
func (f MeasureFunc) Width(s string, style Style, size float64) float64 {
	return f(s, style, size)
}

// Segment is the part of a word set in one style.
type Segment struct {
	Text  string
	Style Style
	Width float64
}

// Word is a run of non-space text, possibly spanning several styles.
type Word struct {
	Segments []Segment
	Width    float64
}

// Text returns the word without styling.
func (w Word) Text() string {
	var b strings.Builder
	for _, s := range w.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Line is one wrapped output line.
type Line struct {
	Words []Word
	// Spaces holds the width of the space that precedes Words[i]; Spaces[0]
	// is always zero.
	Spaces []float64
	// Width is the natural width: words plus single spaces.
	Width float64
	// Last reports whether the line ends its paragraph. Justified text leaves
	// such lines ragged.
	Last bool
}

// Text returns the line content with single spaces between words.
func (l Line) Text() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text()
	}
	return strings.Join(parts, " ")
}

// Wrap breaks paragraphs into lines no wider than width at the given size.
// A word wider than the whole line is split between characters. An empty
// paragraph yields one empty line.
func Wrap(m Measurer, paras []Paragraph, width, size float64) []Line {
	var lines []Line
	for _, p := range paras {
		lines = append(lines, wrapParagraph(m, p, width, size)...)
	}
	return lines
}

// wordToken is a word plus the style of the whitespace that preceded it.
type wordToken struct {
	word       Word
	spaceStyle Style
}

func wrapParagraph(m Measurer, p Paragraph, width, size float64) []Line {
	tokens := splitWords(m, p, size)
	if len(tokens) == 0 {
		return []Line{{Last: true}}
	}

	var (
		lines []Line
		cur   Line
	)
	push := func() {
		lines = append(lines, cur)
		cur = Line{}
	}
	add := func(w Word, space float64) {
		if len(cur.Words) == 0 {
			space = 0
		}
		cur.Words = append(cur.Words, w)
		cur.Spaces = append(cur.Spaces, space)
		cur.Width += space + w.Width
	}

	for _, tok := range tokens {
		space := m.Width(" ", tok.spaceStyle, size)
		if len(cur.Words) > 0 && cur.Width+space+tok.word.Width > width {
			push()
		}
		if tok.word.Width <= width {
			add(tok.word, space)
			continue
		}
		// Hard split of an overlong word, one piece per line.
		for _, piece := range splitWord(m, tok.word, width, size) {
			if len(cur.Words) > 0 {
				push()
			}
			add(piece, 0)
		}
	}
	cur.Last = true
	push()
	return lines
}

// splitWords cuts a paragraph at spaces while keeping style changes inside a
// word as separate segments.
func splitWords(m Measurer, p Paragraph, size float64) []wordToken {
	var (
		tokens     []wordToken
		cur        Word
		spaceStyle Style
	)
	flush := func() {
		if len(cur.Segments) > 0 {
			tokens = append(tokens, wordToken{word: cur, spaceStyle: spaceStyle})
		}
		cur = Word{}
	}
	for _, r := range p {
		parts := strings.Split(r.Text, " ")
		for i, part := range parts {
			if i > 0 {
				flush()
				spaceStyle = r.Style
			}
			if part == "" {
				continue
			}
			w := m.Width(part, r.Style, size)
			cur.Segments = append(cur.Segments, Segment{Text: part, Style: r.Style, Width: w})
			cur.Width += w
		}
	}
	flush()
	return tokens
}

// splitWord breaks w into pieces that each fit width, always taking at least
// one character so progress is guaranteed.
func splitWord(m Measurer, w Word, width, size float64) []Word {
	var (
		pieces []Word
		cur    Word
	)
	for _, seg := range w.Segments {
		rest := seg.Text
		for rest != "" {
			_, n := utf8.DecodeRuneInString(rest)
			ch := rest[:n]
			cw := m.Width(ch, seg.Style, size)
			if len(cur.Segments) > 0 && cur.Width+cw > width {
				pieces = append(pieces, cur)
				cur = Word{}
			}
			appendChar(&cur, ch, seg.Style, cw)
			rest = rest[n:]
		}
	}
	if len(cur.Segments) > 0 {
		pieces = append(pieces, cur)
	}
	return pieces
}

func appendChar(w *Word, ch string, st Style, cw float64) {
	if n := len(w.Segments); n > 0 && w.Segments[n-1].Style == st {
		w.Segments[n-1].Text += ch
		w.Segments[n-1].Width += cw
	} else {
		w.Segments = append(w.Segments, Segment{Text: ch, Style: st, Width: cw})
	}
	w.Width += cw
}
