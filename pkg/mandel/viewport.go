package mandel

import (
	"errors"
	"fmt"
)

// ErrInvalidParams classifies every configuration rejection so callers can
// test with errors.Is.
var ErrInvalidParams = errors.New("invalid render parameters")

// Viewport is a rectangle in the complex plane. Xmin/Xmax bound the real
// axis, Ymin/Ymax the imaginary axis.
type Viewport struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// DefaultViewport is the classic full view of the set.
var DefaultViewport = Viewport{
	Xmin: -2.0,
	Xmax: 1.0,
	Ymin: -1.0,
	Ymax: 1.0,
}

// Validate rejects degenerate rectangles. NaN bounds fail the ordering
// comparisons and are rejected too.
func (v Viewport) Validate() error {
	if !(v.Xmin < v.Xmax) {
		return fmt.Errorf("%w: viewport needs Xmin < Xmax, got [%v, %v]", ErrInvalidParams, v.Xmin, v.Xmax)
	}
	if !(v.Ymin < v.Ymax) {
		return fmt.Errorf("%w: viewport needs Ymin < Ymax, got [%v, %v]", ErrInvalidParams, v.Ymin, v.Ymax)
	}
	return nil
}

// Params describes one rendering: the character grid, the iteration cap and
// the viewport being sampled.
type Params struct {
	Width   int
	Height  int
	MaxIter int
	View    Viewport
}

// Validate rejects non-positive dimensions or iteration caps before any
// pixel is computed; Render never produces partial output.
func (p Params) Validate() error {
	if p.Width < 1 {
		return fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidParams, p.Width)
	}
	if p.Height < 1 {
		return fmt.Errorf("%w: height must be at least 1, got %d", ErrInvalidParams, p.Height)
	}
	if p.MaxIter < 1 {
		return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrInvalidParams, p.MaxIter)
	}
	return p.View.Validate()
}
