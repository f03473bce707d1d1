package wind

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func seqLon(start, step float64, n int) []float64 {
	lon := make([]float64, n)
	for i := range lon {
		lon[i] = start + float64(i)*step
	}
	return lon
}

func TestShiftLongitude(t *testing.T) {
	// 8 columns at 45 degree spacing, one row tagged with the source
	// column index so the permutation is visible.
	lon := seqLon(0, 45, 8) // 0 45 90 135 180 225 270 315
	grid := mat.NewDense(1, 8, []float64{0, 1, 2, 3, 4, 5, 6, 7})

	shifted, shiftedLon := ShiftLongitude(grid, lon)

	wantLon := []float64{-180, -135, -90, -45, 0, 45, 90, 135}
	wantCol := []float64{4, 5, 6, 7, 0, 1, 2, 3}
	for j := range wantLon {
		if shiftedLon[j] != wantLon[j] {
			t.Errorf("lon[%d] = %g, want %g", j, shiftedLon[j], wantLon[j])
		}
		if got := shifted.At(0, j); got != wantCol[j] {
			t.Errorf("col %d holds source column %g, want %g", j, got, wantCol[j])
		}
	}

	// Monotonically increasing from -180 toward just under 180.
	for j := 1; j < len(shiftedLon); j++ {
		if shiftedLon[j] <= shiftedLon[j-1] {
			t.Fatalf("shifted longitudes not monotonic at %d: %v", j, shiftedLon)
		}
	}
	if shiftedLon[0] != -180 || shiftedLon[len(shiftedLon)-1] >= 180 {
		t.Errorf("shifted range [%g, %g], want [-180, <180)", shiftedLon[0], shiftedLon[len(shiftedLon)-1])
	}
}

func TestShiftLongitudeLeavesInputUntouched(t *testing.T) {
	lon := seqLon(0, 90, 4)
	grid := mat.NewDense(1, 4, []float64{0, 1, 2, 3})

	ShiftLongitude(grid, lon)

	for j, want := range []float64{0, 90, 180, 270} {
		if lon[j] != want {
			t.Errorf("input lon[%d] mutated to %g", j, lon[j])
		}
		if grid.At(0, j) != float64(j) {
			t.Errorf("input grid column %d mutated to %g", j, grid.At(0, j))
		}
	}
}

func TestShiftLongitudeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		lon  []float64
		cols int
	}{
		{name: "one degree grid", lon: seqLon(0, 1, 360), cols: 360},
		{name: "coarse grid", lon: seqLon(0, 30, 12), cols: 12},
		{name: "offset grid", lon: seqLon(0.5, 1, 360), cols: 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]float64, 2*tt.cols)
			for i := range data {
				data[i] = float64(i)
			}
			grid := mat.NewDense(2, tt.cols, data)

			shifted, shiftedLon := ShiftLongitude(grid, tt.lon)
			back, backLon := UnshiftLongitude(shifted, shiftedLon)

			for j := range tt.lon {
				if backLon[j] != tt.lon[j] {
					t.Fatalf("lon[%d] round-tripped to %g, want %g", j, backLon[j], tt.lon[j])
				}
				for i := 0; i < 2; i++ {
					if back.At(i, j) != grid.At(i, j) {
						t.Fatalf("grid[%d][%d] round-tripped to %g, want %g", i, j, back.At(i, j), grid.At(i, j))
					}
				}
			}
		})
	}
}
