package headless

import (
	"bufio"
	"encoding/binary"
	"os"

	"qwave/internal/wave"
)

// WriteHalf writes the intensity as raw little-endian binary16 values in
// x*N+y order, N*N*2 bytes with no header. The file loads directly as an
// R16F texture of width N.
func WriteHalf(solver *wave.Solver, path string) error {
	n := solver.Size()
	values := make([]uint16, n*n)
	solver.IntensityHalf(values)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, values); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
