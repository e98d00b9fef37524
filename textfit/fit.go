package textfit

import (
	"errors"
	"fmt"
)

// ErrNoFit is returned when text does not fit its frame even at the
// minimum scale.
var ErrNoFit = errors.New("textfit: text does not fit frame")

// DefaultMinScale is used when Spec.MinScale is zero.
const DefaultMinScale = 0.05

// bisectSteps bounds the upward search for the largest fitting scale.
const bisectSteps = 12

// Spec describes the frame and the unscaled typography.
type Spec struct {
	Size     float64 // font size at scale 1
	Leading  float64 // baseline distance at scale 1
	Width    float64 // usable frame width
	Height   float64 // usable frame height
	MinScale float64 // lower bound for shrinking, DefaultMinScale if zero

	// Ascent and Descent are the font's extent above and below the
	// baseline as fractions of the size. When zero, the first baseline
	// sits 0.5*Leading + 0.3*Size below the top.
	Ascent  float64
	Descent float64
}

// Block is the result of fitting text into a frame.
type Block struct {
	Lines   []Line
	Scale   float64
	Size    float64 // Spec.Size * Scale
	Leading float64 // Spec.Leading * Scale
	Ascent  float64 // first baseline below the block top
	Height  float64 // at least len(Lines) * Leading
}

// Fit wraps paras into frame, shrinking font size and
// leading uniformly when the wrapped text is taller than the frame.
//
// The returned scale is the largest one found that fits; the block height
// never exceeds frame.Height.
func Fit(m Measurer, paras []Paragraph, frame Spec) (Block, error) {
	if frame.Width <= 0 || frame.Height <= 0 || frame.Size <= 0 || frame.Leading <= 0 {
		return Block{}, fmt.Errorf("%w: invalid frame %.2fx%.2f size %.2f leading %.2f",
			ErrNoFit, frame.Width, frame.Height, frame.Size, frame.Leading)
	}
	minScale := frame.MinScale
	if minScale <= 0 {
		minScale = DefaultMinScale
	}

	b := layout(m, paras, frame, 1)
	if b.Height <= frame.Height {
		return b, nil
	}

	// Smaller type fits more words per line, so the proportional guess is
	// usually already small enough. Step down until something fits.
	lo := frame.Height / b.Height
	var fit Block
	for {
		if lo < minScale {
			lo = minScale
		}
		fit = layout(m, paras, frame, lo)
		if fit.Height <= frame.Height {
			break
		}
		if lo == minScale {
			return Block{}, fmt.Errorf("%w: %d lines need %.2f, frame has %.2f at scale %.2f",
				ErrNoFit, len(fit.Lines), fit.Height, frame.Height, minScale)
		}
		lo *= 0.95
	}

	// Grow back toward 1 while the text still fits.
	hi := 1.0
	for i := 0; i < bisectSteps; i++ {
		mid := (lo + hi) / 2
		cand := layout(m, paras, frame, mid)
		if cand.Height <= frame.Height {
			lo, fit = mid, cand
		} else {
			hi = mid
		}
	}
	return fit, nil
}

func layout(m Measurer, paras []Paragraph, frame Spec, scale float64) Block {
	size := frame.Size * scale
	leading := frame.Leading * scale
	lines := Wrap(m, paras, frame.Width, size)
	ascent := 0.5*leading + 0.3*size
	height := float64(len(lines)) * leading
	if frame.Ascent > 0 {
		ascent = frame.Ascent * size
		if n := len(lines); n > 0 {
			height = max(height, ascent+float64(n-1)*leading+frame.Descent*size)
		}
	}
	return Block{
		Lines:   lines,
		Scale:   scale,
		Size:    size,
		Leading: leading,
		Ascent:  ascent,
		Height:  height,
	}
}
