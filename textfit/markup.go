// Package textfit lays out short blocks of styled text inside a fixed frame.
//
// Text is given as lightweight markup: <b> and <i> (or <strong> and <em>)
// select bold and italic, <br/> and newlines force a line break and entities
// such as &amp; are unescaped. Everything else is plain text.
//
// Fit wraps the text at the frame width and, when the result is taller than
// the frame, scales font size and leading down together until it fits.
// Content is never truncated.
package textfit

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Style selects one of the four variants of a font family.
type Style uint8

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
)

// String returns the style in the notation used by fpdf ("", "B", "I", "BI").
func (s Style) String() string {
	switch s {
	case Bold:
		return "B"
	case Italic:
		return "I"
	case BoldItalic:
		return "BI"
	default:
		return ""
	}
}

func styleOf(bold, italic bool) Style {
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	default:
		return Regular
	}
}

// Run is a piece of text in a single style.
type Run struct {
	Text  string
	Style Style
}

// Paragraph is the content between two hard line breaks.
type Paragraph []Run

// Text returns the paragraph content without styling.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Parse splits markup into paragraphs of styled runs.
//
// Whitespace inside a paragraph collapses to single spaces and is trimmed at
// both ends, so indentation in source text does not show up in the output.
// Blank lines are kept as empty paragraphs.
func Parse(markup string) []Paragraph {
	var (
		paras  []Paragraph
		cur    Paragraph
		bold   int
		italic int
	)
	flush := func() {
		paras = append(paras, normalize(cur))
		cur = nil
	}
	appendText := func(s string) {
		st := styleOf(bold > 0, italic > 0)
		if n := len(cur); n > 0 && cur[n-1].Style == st {
			cur[n-1].Text += s
			return
		}
		cur = append(cur, Run{Text: s, Style: st})
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader produces.
			flush()
			return paras
		case html.TextToken:
			lines := strings.Split(string(z.Text()), "\n")
			for i, line := range lines {
				if i > 0 {
					flush()
				}
				if line != "" {
					appendText(line)
				}
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "b", "strong":
				bold++
			case "i", "em":
				italic++
			case "br":
				flush()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "b", "strong":
				if bold > 0 {
					bold--
				}
			case "i", "em":
				if italic > 0 {
					italic--
				}
			}
		}
	}
}

// Escape makes s safe to embed into markup as literal text.
func Escape(s string) string {
	return html.EscapeString(s)
}

// normalize collapses whitespace across run boundaries and trims the
// paragraph. Runs that end up empty are dropped.
func normalize(p Paragraph) Paragraph {
	out := make(Paragraph, 0, len(p))
	space := true // drop leading whitespace
	for _, r := range p {
		var b strings.Builder
		for _, c := range r.Text {
			if unicode.IsSpace(c) {
				if !space {
					b.WriteByte(' ')
					space = true
				}
				continue
			}
			b.WriteRune(c)
			space = false
		}
		if b.Len() > 0 {
			out = append(out, Run{Text: b.String(), Style: r.Style})
		}
	}
	// trailing space
	for len(out) > 0 {
		last := &out[len(out)-1]
		last.Text = strings.TrimRight(last.Text, " ")
		if last.Text != "" {
			break
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
