package wave

import "math"

// waveField stores the real and imaginary components together with the
// static potential. All three buffers are n*n and indexed x*n+y.
type waveField struct {
	n         int
	real      []float64
	imag      []float64
	potential []float64
}

// newWaveField allocates a zero-filled waveField.
func newWaveField(n int) *waveField {
	return &waveField{
		n:         n,
		real:      make([]float64, n*n),
		imag:      make([]float64, n*n),
		potential: make([]float64, n*n),
	}
}

func (f *waveField) index(x, y int) int {
	return x*f.n + y
}

// line returns the contiguous slice holding every y for a fixed x.
func (f *waveField) line(buf []float64, x int) []float64 {
	return buf[x*f.n : (x+1)*f.n]
}

// seedGaussian writes the initial packet centered at (n/4, n/2) and zeroes
// the imaginary component.
func (f *waveField) seedGaussian() {
	x0 := f.n / 4
	y0 := f.n / 2
	for x := 0; x < f.n; x++ {
		dx := float64(x-x0) * cellSpacing
		for y := 0; y < f.n; y++ {
			dy := float64(y-y0) * cellSpacing
			idx := f.index(x, y)
			f.real[idx] = math.Exp(-dx*dx - dy*dy)
			f.imag[idx] = 0
		}
	}
}

// seed overwrites every cell of both components with the values from fn.
func (f *waveField) seed(fn func(x, y int) (re, im float64)) {
	for x := 0; x < f.n; x++ {
		for y := 0; y < f.n; y++ {
			idx := f.index(x, y)
			f.real[idx], f.imag[idx] = fn(x, y)
		}
	}
}
