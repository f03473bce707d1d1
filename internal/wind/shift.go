package wind

import "gonum.org/v1/gonum/mat"

// ShiftLongitude re-centers a [0, 360) longitude axis to [-180, 180)
// and permutes the grid columns to match. The cut is the first
// longitude >= 180: those columns move to the front with 360
// subtracted, so the output axis runs monotonically from -180 toward
// just under 180. A fresh grid is returned; the input is untouched.
func ShiftLongitude(speed *mat.Dense, lon []float64) (*mat.Dense, []float64) {
	cut := len(lon)
	for i, l := range lon {
		if l >= 180 {
			cut = i
			break
		}
	}

	outLon := make([]float64, len(lon))
	n := copy(outLon, lon[cut:])
	copy(outLon[n:], lon[:cut])
	for i := 0; i < n; i++ {
		outLon[i] -= 360
	}
	return rotateColumns(speed, cut), outLon
}

// UnshiftLongitude is the exact inverse of ShiftLongitude: it restores
// a [-180, 180) axis (and its grid columns) to the source [0, 360)
// convention.
func UnshiftLongitude(speed *mat.Dense, lon []float64) (*mat.Dense, []float64) {
	cut := len(lon)
	for i, l := range lon {
		if l >= 0 {
			cut = i
			break
		}
	}

	outLon := make([]float64, len(lon))
	n := copy(outLon, lon[cut:])
	copy(outLon[n:], lon[:cut])
	for i := n; i < len(outLon); i++ {
		outLon[i] += 360
	}
	return rotateColumns(speed, cut), outLon
}

// rotateColumns returns a copy of speed with columns [cut:] moved to
// the front.
func rotateColumns(speed *mat.Dense, cut int) *mat.Dense {
	r, c := speed.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			src := j + cut
			if src >= c {
				src -= c
			}
			out.Set(i, j, speed.At(i, src))
		}
	}
	return out
}
