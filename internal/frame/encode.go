// Package frame turns solver snapshots into display and audio buffers.
package frame

// Colors used for barrier cells.
const (
	barrierR = 30
	barrierG = 40
	barrierB = 80
)

// EncodeGray writes an n*n RGBA image into dst. values is indexed x*n+y and
// lands at screen pixel (x, y). Each value is multiplied by scale and clamped
// to [0, 1]; NaN renders black. dst must hold n*n*4 bytes.
func EncodeGray(dst []byte, values []float64, n int, scale float64) {
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			v := values[x*n+y] * scale
			if !(v > 0) {
				v = 0
			} else if v > 1 {
				v = 1
			}
			c := byte(v * 255)
			base := (y*n + x) * 4
			dst[base] = c
			dst[base+1] = c
			dst[base+2] = c
			dst[base+3] = 255
		}
	}
}

// OverlayMask paints cells flagged in mask (indexed x*n+y) with the barrier
// color.
func OverlayMask(dst []byte, mask []bool, n int) {
	for i, on := range mask {
		if !on {
			continue
		}
		x, y := i/n, i%n
		base := (y*n + x) * 4
		dst[base] = barrierR
		dst[base+1] = barrierG
		dst[base+2] = barrierB
		dst[base+3] = 255
	}
}
