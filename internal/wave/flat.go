package wave

// gridView exposes an n*n slice in x*N+y order as [x][y] rows. The rows
// alias flat; nothing is copied.
func gridView(flat []float64, n int) [][]float64 {
	grid := make([][]float64, n)
	for x := range grid {
		grid[x] = flat[x*n : (x+1)*n : (x+1)*n]
	}
	return grid
}
