// Package wind derives scalar wind-speed fields from the horizontal
// wind components of a gridded reanalysis dataset.
package wind

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result holds the derived wind-speed field for a single timestep.
// Longitude is re-centered to [-180, 180); Latitude is carried through
// from the source unmodified. Speed rows follow Latitude, columns
// follow Longitude.
type Result struct {
	Longitude []float64
	Latitude  []float64
	Speed     *mat.Dense
}

// LevelNotFoundError indicates the requested pressure level is not
// present in the dataset's level axis.
type LevelNotFoundError struct {
	Level float64
}

func (e *LevelNotFoundError) Error() string {
	return fmt.Sprintf("no %g hPa level in dataset (use --list-levels to see what is available)", e.Level)
}

// FindLevelIndex returns the position of target in levels. Only exact
// matches count; a miss returns *LevelNotFoundError.
func FindLevelIndex(levels []float64, target float64) (int, error) {
	for i, millibars := range levels {
		if millibars == target {
			return i, nil
		}
	}
	return 0, &LevelNotFoundError{Level: target}
}

// DefaultSensitivity returns the display scale factor used when the
// caller did not supply one. Jet-stream-level winds are numerically
// larger, so the 250 hPa multiplier is smaller.
func DefaultSensitivity(level float64) float64 {
	if level == 250 {
		return 3.5
	}
	return 7.5
}

// Magnitude computes the elementwise scaled Euclidean norm
// sensitivity * sqrt(u^2 + v^2). NaN inputs propagate; nothing is
// clamped or masked.
func Magnitude(u, v *mat.Dense, sensitivity float64) *mat.Dense {
	r, c := u.Dims()
	speed := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			uu := u.At(i, j)
			vv := v.At(i, j)
			speed.Set(i, j, sensitivity*math.Sqrt(uu*uu+vv*vv))
		}
	}
	return speed
}
