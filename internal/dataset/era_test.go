package dataset

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/fhs/go-netcdf/netcdf"

	"github.com/lox/jetstream/internal/wind"
)

// Axes for the generated test files: two timesteps a day apart, the
// jetstream level plus one other, a 2x4 grid in source [0, 360)
// longitude order.
var (
	eraTimes  = []float64{876576, 876600} // hours since 1900: 2000-01-01, 2000-01-02
	eraLevels = []float64{250, 500}
	eraLat    = []float64{45, -45}
	eraLon    = []float64{0, 90, 180, 270}
)

// fillComponent builds a [time][level][lat][lon] array in row-major
// order from a per-cell function.
func fillComponent(f func(ti, li, yi, xi int) float64) []float64 {
	out := make([]float64, 0, len(eraTimes)*len(eraLevels)*len(eraLat)*len(eraLon))
	for ti := range eraTimes {
		for li := range eraLevels {
			for yi := range eraLat {
				for xi := range eraLon {
					out = append(out, f(ti, li, yi, xi))
				}
			}
		}
	}
	return out
}

// writeERAFile writes a minimal reanalysis file with the package axes
// and the given u/v component arrays.
func writeERAFile(t *testing.T, u, v []float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "era.nc")

	ds, err := netcdf.CreateFile(path, netcdf.CLOBBER|netcdf.NETCDF4)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer ds.Close()

	axes := []struct {
		name string
		vals []float64
	}{
		{"time", eraTimes},
		{"level", eraLevels},
		{"latitude", eraLat},
		{"longitude", eraLon},
	}
	dims := make([]netcdf.Dim, len(axes))
	for i, ax := range axes {
		if dims[i], err = ds.AddDim(ax.name, uint64(len(ax.vals))); err != nil {
			t.Fatalf("dim %s: %v", ax.name, err)
		}
		av, err := ds.AddVar(ax.name, netcdf.DOUBLE, []netcdf.Dim{dims[i]})
		if err != nil {
			t.Fatalf("var %s: %v", ax.name, err)
		}
		if ax.name == "time" {
			if err := av.Attr("units").WriteBytes([]byte("hours since 1900-01-01 00:00:00.0")); err != nil {
				t.Fatalf("time units attribute: %v", err)
			}
		}
		if err := av.WriteFloat64s(ax.vals); err != nil {
			t.Fatalf("write %s: %v", ax.name, err)
		}
	}

	for _, comp := range []struct {
		name string
		vals []float64
	}{{"u", u}, {"v", v}} {
		cv, err := ds.AddVar(comp.name, netcdf.DOUBLE, dims)
		if err != nil {
			t.Fatalf("var %s: %v", comp.name, err)
		}
		if err := cv.WriteFloat64s(comp.vals); err != nil {
			t.Fatalf("write %s: %v", comp.name, err)
		}
	}
	return path
}

func TestOpenERAAxes(t *testing.T) {
	u := fillComponent(func(ti, li, yi, xi int) float64 { return 3 })
	v := fillComponent(func(ti, li, yi, xi int) float64 { return 4 })

	e, err := OpenERA(writeERAFile(t, u, v))
	if err != nil {
		t.Fatalf("OpenERA: %v", err)
	}
	defer e.Close()

	if got := e.Levels(); len(got) != 2 || got[0] != 250 || got[1] != 500 {
		t.Errorf("Levels() = %v, want [250 500]", got)
	}
	if got := e.Timesteps(); got != 2 {
		t.Errorf("Timesteps() = %d, want 2", got)
	}

	d0, err := e.TimestepDate(0)
	if err != nil {
		t.Fatalf("TimestepDate(0): %v", err)
	}
	if want := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC); !d0.Equal(want) {
		t.Errorf("TimestepDate(0) = %v, want %v", d0, want)
	}
	d1, err := e.TimestepDate(1)
	if err != nil {
		t.Fatalf("TimestepDate(1): %v", err)
	}
	if want := time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC); !d1.Equal(want) {
		t.Errorf("TimestepDate(1) = %v, want %v", d1, want)
	}
	if _, err := e.TimestepDate(2); err == nil {
		t.Error("TimestepDate(2) succeeded, want out-of-range error")
	}
}

func TestWindspeed(t *testing.T) {
	// 3-4-5 everywhere, so every cell is sensitivity * 5.
	u := fillComponent(func(ti, li, yi, xi int) float64 { return 3 })
	v := fillComponent(func(ti, li, yi, xi int) float64 { return 4 })

	e, err := OpenERA(writeERAFile(t, u, v))
	if err != nil {
		t.Fatalf("OpenERA: %v", err)
	}
	defer e.Close()

	t.Run("explicit sensitivity", func(t *testing.T) {
		res, err := e.Windspeed(0, 500, 2)
		if err != nil {
			t.Fatalf("Windspeed: %v", err)
		}
		r, c := res.Speed.Dims()
		if r != len(eraLat) || c != len(eraLon) {
			t.Fatalf("Speed dims = %dx%d, want %dx%d", r, c, len(eraLat), len(eraLon))
		}
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if got := res.Speed.At(i, j); math.Abs(got-10) > 1e-9 {
					t.Fatalf("Speed(%d,%d) = %g, want 10", i, j, got)
				}
			}
		}
	})

	t.Run("unset sensitivity uses jetstream default", func(t *testing.T) {
		auto, err := e.Windspeed(0, 250, 0)
		if err != nil {
			t.Fatalf("Windspeed(auto): %v", err)
		}
		explicit, err := e.Windspeed(0, 250, 3.5)
		if err != nil {
			t.Fatalf("Windspeed(3.5): %v", err)
		}
		r, c := auto.Speed.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if auto.Speed.At(i, j) != explicit.Speed.At(i, j) {
					t.Fatalf("Speed(%d,%d): auto %g != explicit %g",
						i, j, auto.Speed.At(i, j), explicit.Speed.At(i, j))
				}
			}
		}
		if got := auto.Speed.At(0, 0); math.Abs(got-17.5) > 1e-9 {
			t.Errorf("Speed(0,0) = %g, want 17.5 (3.5 * 5)", got)
		}
	})

	t.Run("unset sensitivity at other levels", func(t *testing.T) {
		res, err := e.Windspeed(0, 500, 0)
		if err != nil {
			t.Fatalf("Windspeed: %v", err)
		}
		if got := res.Speed.At(0, 0); math.Abs(got-37.5) > 1e-9 {
			t.Errorf("Speed(0,0) = %g, want 37.5 (7.5 * 5)", got)
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := e.Windspeed(0, 300, 0)
		var lerr *wind.LevelNotFoundError
		if !errors.As(err, &lerr) {
			t.Fatalf("Windspeed err = %v, want LevelNotFoundError", err)
		}
		if lerr.Level != 300 {
			t.Errorf("LevelNotFoundError.Level = %g, want 300", lerr.Level)
		}
	})

	t.Run("timestep out of range", func(t *testing.T) {
		if _, err := e.Windspeed(2, 250, 0); err == nil {
			t.Error("Windspeed(2, ...) succeeded, want out-of-range error")
		}
	})
}

func TestWindspeedShiftsLongitude(t *testing.T) {
	// Speed depends only on the source column, so the re-centered grid
	// exposes the column permutation directly.
	u := fillComponent(func(ti, li, yi, xi int) float64 { return float64(10 * (xi + 1)) })
	v := fillComponent(func(ti, li, yi, xi int) float64 { return 0 })

	e, err := OpenERA(writeERAFile(t, u, v))
	if err != nil {
		t.Fatalf("OpenERA: %v", err)
	}
	defer e.Close()

	res, err := e.Windspeed(0, 250, 1)
	if err != nil {
		t.Fatalf("Windspeed: %v", err)
	}

	wantLon := []float64{-180, -90, 0, 90}
	for i, l := range res.Longitude {
		if l != wantLon[i] {
			t.Fatalf("Longitude = %v, want %v", res.Longitude, wantLon)
		}
	}
	// Source columns 0..3 carry 10..40; the cut at 180 puts 30,40 first.
	wantSpeed := []float64{30, 40, 10, 20}
	for j, want := range wantSpeed {
		if got := res.Speed.At(0, j); math.Abs(got-want) > 1e-9 {
			t.Errorf("Speed(0,%d) = %g, want %g", j, got, want)
		}
	}
}

func TestOpenERARejectsBadShape(t *testing.T) {
	// u with the time dimension missing must fail shape validation.
	path := filepath.Join(t.TempDir(), "bad.nc")
	ds, err := netcdf.CreateFile(path, netcdf.CLOBBER|netcdf.NETCDF4)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}

	axes := []struct {
		name string
		vals []float64
	}{
		{"time", eraTimes},
		{"level", eraLevels},
		{"latitude", eraLat},
		{"longitude", eraLon},
	}
	dims := make([]netcdf.Dim, len(axes))
	for i, ax := range axes {
		if dims[i], err = ds.AddDim(ax.name, uint64(len(ax.vals))); err != nil {
			t.Fatalf("dim %s: %v", ax.name, err)
		}
		av, err := ds.AddVar(ax.name, netcdf.DOUBLE, []netcdf.Dim{dims[i]})
		if err != nil {
			t.Fatalf("var %s: %v", ax.name, err)
		}
		if ax.name == "time" {
			if err := av.Attr("units").WriteBytes([]byte("hours since 1900-01-01 00:00:00.0")); err != nil {
				t.Fatalf("time units attribute: %v", err)
			}
		}
		if err := av.WriteFloat64s(ax.vals); err != nil {
			t.Fatalf("write %s: %v", ax.name, err)
		}
	}

	n3 := len(eraLevels) * len(eraLat) * len(eraLon)
	uv, err := ds.AddVar("u", netcdf.DOUBLE, dims[1:])
	if err != nil {
		t.Fatalf("var u: %v", err)
	}
	if err := uv.WriteFloat64s(make([]float64, n3)); err != nil {
		t.Fatalf("write u: %v", err)
	}
	vv, err := ds.AddVar("v", netcdf.DOUBLE, dims)
	if err != nil {
		t.Fatalf("var v: %v", err)
	}
	if err := vv.WriteFloat64s(make([]float64, n3*len(eraTimes))); err != nil {
		t.Fatalf("write v: %v", err)
	}
	if err := ds.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := OpenERA(path); err == nil {
		t.Error("OpenERA accepted a 3-D wind component")
	}
}
