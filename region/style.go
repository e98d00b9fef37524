// Package region draws a block of styled text into a fixed rectangle on a
// page.
//
// A Region never moves or grows: its position and size are given in page
// coordinates measured from the top-left corner. Text that would overflow is
// shrunk as a whole (see package textfit). Drawing is split into Layout, which
// measures and may fail, and Paint, which only emits drawing calls, so a
// caller can lay out every region of a page before committing to the page.
package region

// HAlign is the horizontal alignment of lines inside the frame.
type HAlign int

const (
	Left HAlign = iota
	Center
	Right
	Justify
)

// VAlign is the vertical position of the text block inside the frame.
type VAlign int

const (
	Top VAlign = iota
	Middle
	Bottom
)

// Padding defines spacing between the frame edge and its text.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// FontSpec names a font family and its unscaled size. Leading is the
// baseline distance; zero selects DefaultLeading.
type FontSpec struct {
	Family  string
	Size    float64 // in points
	Leading float64 // in points
}

// DefaultLeading returns 12pt for body sizes (10pt and up) and 9pt for
// smaller print.
func DefaultLeading(size float64) float64 {
	if size >= 10 {
		return 12
	}
	return 9
}

// leading resolves the effective leading.
func (f FontSpec) leading() float64 {
	if f.Leading > 0 {
		return f.Leading
	}
	return DefaultLeading(f.Size)
}

// BorderWidth is the stroke width used when a region's border is shown.
const BorderWidth = 0.5
