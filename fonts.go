package postletter

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/lvillar/postletter/textfit"
)

// FontFiles names the four TrueType files of a family inside a directory.
type FontFiles struct {
	Family     string
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

// DefaultFontFiles is the Arial family as shipped with Windows.
func DefaultFontFiles() FontFiles {
	return FontFiles{
		Family:     "Arial",
		Regular:    "Arial.ttf",
		Bold:       "Arialbd.ttf",
		Italic:     "Ariali.ttf",
		BoldItalic: "Arialbi.ttf",
	}
}

// FontSet is a font family in memory, one TrueType blob per variant.
type FontSet struct {
	Family     string
	Regular    []byte
	Bold       []byte
	Italic     []byte
	BoldItalic []byte
}

// GoFonts returns the Go font family embedded in the binary.
func GoFonts() FontSet {
	return FontSet{
		Family:     "Go",
		Regular:    goregular.TTF,
		Bold:       gobold.TTF,
		Italic:     goitalic.TTF,
		BoldItalic: gobolditalic.TTF,
	}
}

// LoadFonts reads the four variants from dir. A missing or unparsable file
// is an ErrResource; no variant is substituted for another.
func LoadFonts(dir string, files FontFiles) (FontSet, error) {
	fs := FontSet{Family: files.Family}
	if fs.Family == "" {
		fs.Family = "Letter"
	}
	for _, v := range []struct {
		name string
		dst  *[]byte
	}{
		{files.Regular, &fs.Regular},
		{files.Bold, &fs.Bold},
		{files.Italic, &fs.Italic},
		{files.BoldItalic, &fs.BoldItalic},
	} {
		path := filepath.Join(dir, v.name)
		data, err := os.ReadFile(path)
		if err != nil {
			return FontSet{}, newError("LoadFonts", ErrResource, err)
		}
		if _, err := sfnt.Parse(data); err != nil {
			return FontSet{}, newError("LoadFonts", ErrResource, fmt.Errorf("%s: %w", path, err))
		}
		*v.dst = data
	}
	return fs, nil
}

func (fs FontSet) variant(st textfit.Style) []byte {
	switch st {
	case textfit.Bold:
		return fs.Bold
	case textfit.Italic:
		return fs.Italic
	case textfit.BoldItalic:
		return fs.BoldItalic
	default:
		return fs.Regular
	}
}

var styles = []textfit.Style{textfit.Regular, textfit.Bold, textfit.Italic, textfit.BoldItalic}

var variantNames = map[textfit.Style]string{
	textfit.Regular:    "regular",
	textfit.Bold:       "bold",
	textfit.Italic:     "italic",
	textfit.BoldItalic: "bold-italic",
}

// validate reports a variant left empty by a hand-built FontSet.
func (fs FontSet) validate() error {
	for _, st := range styles {
		if len(fs.variant(st)) == 0 {
			return newError("LoadFonts", ErrResource, fmt.Errorf("font %s: %s variant is empty", fs.Family, variantNames[st]))
		}
	}
	return nil
}
