package headless

import (
	"image"
	"image/png"
	"os"

	"gonum.org/v1/gonum/floats"

	"qwave/internal/frame"
	"qwave/internal/wave"
)

// WritePNG encodes the current field as an 8-bit grayscale image, normalized
// to the frame's peak value so faint patterns stay visible. With density set
// it draws Real²+Imag² instead of |Real|.
func WritePNG(solver *wave.Solver, path string, density bool) error {
	n := solver.Size()
	values := make([]float64, n*n)
	if density {
		solver.SampleDensityInto(values)
	} else {
		solver.SampleIntensityInto(values)
	}
	scale := 1.0
	if peak := floats.Max(values); peak > 0 {
		scale = 1 / peak
	}
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	frame.EncodeGray(img.Pix, values, n, scale)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
