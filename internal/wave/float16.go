package wave

import "math"

// IntensityHalf writes |Real| into dst as IEEE 754-2008 binary16 values in
// x*N+y order, the layout of a single-channel half-float texture. dst must
// hold at least N*N values.
func (s *Solver) IntensityHalf(dst []uint16) {
	for i, v := range s.field.real {
		dst[i] = halfBits(float32(math.Abs(v)))
	}
}

// halfBits narrows f to binary16 with round-to-nearest-even. Values past
// the half range become infinity; NaN stays a quiet NaN.
func halfBits(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	exp := int(b>>23&0xff) - 127 + 15
	mant := b & 0x7fffff

	switch {
	case b&0x7fffffff > 0x7f800000:
		return sign | 0x7e00
	case exp >= 0x1f:
		return sign | 0x7c00
	case exp <= 0:
		if exp < -10 {
			return sign
		}
		// Subnormal: restore the implicit bit and shift into the 2^-24 unit.
		mant |= 0x800000
		shift := uint(14 - exp)
		out := mant >> shift
		rem := mant & (1<<shift - 1)
		halfway := uint32(1) << (shift - 1)
		if rem > halfway || (rem == halfway && out&1 == 1) {
			out++
		}
		return sign | uint16(out)
	}

	// A carry out of the mantissa bumps the exponent, up to infinity.
	out := uint32(exp)<<10 | mant>>13
	rem := mant & 0x1fff
	if rem > 0x1000 || (rem == 0x1000 && out&1 == 1) {
		out++
	}
	return sign | uint16(out)
}
