// Package dataset loads gridded reanalysis data and exposes it through
// a narrow source interface.
package dataset

import (
	"time"

	"github.com/lox/jetstream/internal/wind"
)

// Source is a read-only reanalysis data source. It is opened once at
// startup and shared across the whole run; implementations never
// mutate it after Open.
type Source interface {
	// Levels returns the available pressure levels in millibars, in
	// dataset order.
	Levels() []float64

	// Timesteps returns the number of timesteps in the time axis.
	Timesteps() int

	// TimestepDate decodes the timestamp at index i.
	TimestepDate(i int) (time.Time, error)

	// Windspeed derives the scalar wind-speed field at the given
	// timestep and pressure level. A sensitivity <= 0 selects the
	// per-level default.
	Windspeed(timeIndex int, level, sensitivity float64) (*wind.Result, error)

	Close() error
}
