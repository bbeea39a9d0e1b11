package mandel

import "image"

// RenderImage draws the same grid as Render into an 8-bit grayscale image:
// white for immediate escapes shading to black for points that never escape.
func RenderImage(p Params) (*image.Gray, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, p.Width, p.Height))

	for y := 0; y < p.Height; y++ {
		im := p.View.Ymin + float64(y)/float64(p.Height)*(p.View.Ymax-p.View.Ymin)
		for x := 0; x < p.Width; x++ {
			re := p.View.Xmin + float64(x)/float64(p.Width)*(p.View.Xmax-p.View.Xmin)
			n := Escape(complex(re, im), p.MaxIter)
			v := 255 - int(float64(n)/float64(p.MaxIter)*255)
			img.Pix[img.PixOffset(x, y)] = uint8(v)
		}
	}

	return img, nil
}
