// Package mandel renders the Mandelbrot set as ASCII art.
//
// Everything here is a pure function of its arguments. Rows have no data
// dependency on each other, so a row-parallel split would be safe, but the
// renderer is deliberately single-threaded.
package mandel

import "strings"

// Palette is the escape-count gradient, ordered from sparse to dense. The
// first character is a space; index len(Palette)-1 marks points that never
// escaped.
const Palette = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/*tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

// Escape iterates z ← z² + c from z = 0 and returns how many steps ran
// before |z| exceeded 2, capped at maxIter. The test compares squared
// magnitudes, which is equivalent to |z| ≤ 2 and skips the square root.
func Escape(c complex128, maxIter int) int {
	z := complex(0, 0)
	n := 0
	for real(z)*real(z)+imag(z)*imag(z) <= 4.0 && n < maxIter {
		z = z*z + c
		n++
	}
	return n
}

// charFor buckets an escape count into the palette. n == maxIter lands on
// the last character.
func charFor(n, maxIter int) byte {
	i := int(float64(n) / float64(maxIter) * float64(len(Palette)-1))
	if i < 0 {
		i = 0
	}
	if i > len(Palette)-1 {
		i = len(Palette) - 1
	}
	return Palette[i]
}

// Render produces the ASCII view of p.View on a p.Width × p.Height grid.
// Rows are joined with single newlines and there is no trailing newline.
// Identical Params always produce byte-identical output.
func Render(p Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow((p.Width + 1) * p.Height)

	for y := 0; y < p.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		im := p.View.Ymin + float64(y)/float64(p.Height)*(p.View.Ymax-p.View.Ymin)
		for x := 0; x < p.Width; x++ {
			re := p.View.Xmin + float64(x)/float64(p.Width)*(p.View.Xmax-p.View.Xmin)
			n := Escape(complex(re, im), p.MaxIter)
			b.WriteByte(charFor(n, p.MaxIter))
		}
	}

	return b.String(), nil
}
