package wave

import "testing"

func TestAssignRowMasks(t *testing.T) {
	tests := []struct {
		name        string
		workers     int
		n           int
		wantMasks   int
		wantPerMask []int
	}{
		{name: "single worker", workers: 1, n: 10, wantMasks: 1, wantPerMask: []int{8}},
		{name: "even split", workers: 4, n: 10, wantMasks: 4, wantPerMask: []int{2, 2, 2, 2}},
		{name: "uneven split", workers: 3, n: 10, wantMasks: 3, wantPerMask: []int{3, 3, 2}},
		{name: "more workers than rows", workers: 16, n: 5, wantMasks: 3, wantPerMask: []int{1, 1, 1}},
		{name: "zero workers", workers: 0, n: 6, wantMasks: 1, wantPerMask: []int{4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			masks := assignRowMasks(tc.workers, interiorRows(tc.n))
			if len(masks) != tc.wantMasks {
				t.Fatalf("len(masks) = %d, want %d", len(masks), tc.wantMasks)
			}
			seen := map[int]bool{}
			for i, m := range masks {
				if len(m.rows) != tc.wantPerMask[i] {
					t.Errorf("mask %d has %d rows, want %d", i, len(m.rows), tc.wantPerMask[i])
				}
				for _, r := range m.rows {
					if seen[r.x] {
						t.Errorf("row %d assigned twice", r.x)
					}
					seen[r.x] = true
					if r.span.start != 1 || r.span.end != tc.n-2 {
						t.Errorf("row %d span = %+v", r.x, r.span)
					}
				}
			}
			if len(seen) != tc.n-2 {
				t.Errorf("covered %d rows, want %d", len(seen), tc.n-2)
			}
		})
	}
}

func TestParallelStepMatchesSerial(t *testing.T) {
	serialCfg := DefaultConfig()
	serialCfg.GridSize = 64
	parallelCfg := serialCfg
	parallelCfg.Workers = 5

	serial, err := New(serialCfg)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := New(parallelCfg)
	if err != nil {
		t.Fatal(err)
	}
	serial.StepN(40)
	parallel.StepN(40)
	for i := range serial.field.real {
		if serial.field.real[i] != parallel.field.real[i] || serial.field.imag[i] != parallel.field.imag[i] {
			t.Fatalf("cell %d: serial (%v,%v) parallel (%v,%v)", i,
				serial.field.real[i], serial.field.imag[i],
				parallel.field.real[i], parallel.field.imag[i])
		}
	}
}
