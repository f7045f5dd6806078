package wave

// buildDoubleSlit raises the column x = n/2 to height everywhere except the
// open band n/3 <= y <= 2n/3. Despite the name the opening is one contiguous
// gap. Cells outside the column are left untouched.
func buildDoubleSlit(f *waveField, height float64) {
	barrierX := f.n / 2
	lo := f.n / 3
	hi := 2 * f.n / 3
	col := f.line(f.potential, barrierX)
	for y := range col {
		if y >= lo && y <= hi {
			continue
		}
		col[y] = height
	}
}

