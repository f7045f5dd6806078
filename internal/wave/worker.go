package wave

import "sync"

// span represents an inclusive column range inside a line.
type span struct{ start, end int }

// rowMask is one interior line (fixed x) that requires computation.
type rowMask struct {
	x    int
	span span
}

// workerMask collects the lines assigned to one goroutine.
type workerMask struct {
	rows []rowMask
}

// interiorRows lists every interior line of an n*n grid.
func interiorRows(n int) []rowMask {
	rows := make([]rowMask, 0, n-2)
	for x := 1; x < n-1; x++ {
		rows = append(rows, rowMask{x: x, span: span{start: 1, end: n - 2}})
	}
	return rows
}

// assignRowMasks distributes row masks across workers in round robin fashion.
func assignRowMasks(workerCount int, rows []rowMask) []workerMask {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(rows) && len(rows) > 0 {
		workerCount = len(rows)
	}
	masks := make([]workerMask, workerCount)
	for idx, row := range rows {
		workerIdx := idx % workerCount
		masks[workerIdx].rows = append(masks[workerIdx].rows, row)
	}
	return masks
}

// stencilUpdate applies dst[x,y] += sign*dt*(-0.5*lap(src) - V*src) over the
// rows in mask. src is only read, so rows can be processed in any order.
func stencilUpdate(f *waveField, mask *workerMask, src, dst []float64, sign, dt float64) {
	for _, row := range mask.rows {
		x := row.x
		center := f.line(src, x)
		left := f.line(src, x-1)
		right := f.line(src, x+1)
		pot := f.line(f.potential, x)
		out := f.line(dst, x)
		for y := row.span.start; y <= row.span.end; y++ {
			c := center[y]
			lap := right[y] + left[y] + center[y+1] + center[y-1] - 4*c
			out[y] += sign * dt * (-0.5*lap - pot[y]*c)
		}
	}
}

// runPhase executes one stencil phase across all masks and returns once
// every worker has finished.
func runPhase(f *waveField, masks []workerMask, src, dst []float64, sign, dt float64) {
	if len(masks) == 1 {
		stencilUpdate(f, &masks[0], src, dst, sign, dt)
		return
	}
	var wg sync.WaitGroup
	for i := range masks {
		if len(masks[i].rows) == 0 {
			continue
		}
		wg.Add(1)
		go func(mask *workerMask) {
			defer wg.Done()
			stencilUpdate(f, mask, src, dst, sign, dt)
		}(&masks[i])
	}
	wg.Wait()
}
