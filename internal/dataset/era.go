package dataset

import (
	"fmt"
	"time"

	"github.com/fhs/go-netcdf/netcdf"
	"gonum.org/v1/gonum/mat"

	"github.com/lox/jetstream/internal/wind"
)

// ERA reads ERA-style reanalysis files: NetCDF4 with level/longitude/
// latitude/time axes and 4-D u/v wind components indexed
// [time][level][latitude][longitude]. Axes are loaded eagerly at open;
// u/v hyperslabs are read per timestep.
type ERA struct {
	ds     netcdf.Dataset
	u, v   netcdf.Var
	uPack  packing
	vPack  packing
	levels []float64
	lon    []float64
	lat    []float64
	times  []float64
	clock  *timeCodec
}

// OpenERA opens a reanalysis file and validates its shape.
func OpenERA(path string) (*ERA, error) {
	ds, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	e := &ERA{ds: ds}
	ok := false
	defer func() {
		if !ok {
			ds.Close()
		}
	}()

	if e.levels, err = readAxis(ds, "level"); err != nil {
		return nil, err
	}
	if e.lon, err = readAxis(ds, "longitude"); err != nil {
		return nil, err
	}
	if e.lat, err = readAxis(ds, "latitude"); err != nil {
		return nil, err
	}

	tv, err := ds.Var("time")
	if err != nil {
		return nil, fmt.Errorf("variable time: %w", err)
	}
	if e.times, err = readFloats(tv); err != nil {
		return nil, fmt.Errorf("read time axis: %w", err)
	}
	units, err := readStringAttr(tv, "units")
	if err != nil {
		return nil, fmt.Errorf("time units attribute: %w", err)
	}
	calendar, err := readStringAttr(tv, "calendar")
	if err != nil {
		calendar = "" // CF default is standard
	}
	if e.clock, err = newTimeCodec(units, calendar); err != nil {
		return nil, err
	}

	if e.u, err = ds.Var("u"); err != nil {
		return nil, fmt.Errorf("variable u: %w", err)
	}
	if e.v, err = ds.Var("v"); err != nil {
		return nil, fmt.Errorf("variable v: %w", err)
	}
	e.uPack = readPacking(e.u)
	e.vPack = readPacking(e.v)

	for _, comp := range []struct {
		name string
		v    netcdf.Var
	}{{"u", e.u}, {"v", e.v}} {
		if err := e.checkShape(comp.name, comp.v); err != nil {
			return nil, err
		}
	}

	ok = true
	return e, nil
}

// checkShape verifies a wind component is 4-D and matches the axes.
func (e *ERA) checkShape(name string, v netcdf.Var) error {
	dims, err := v.Dims()
	if err != nil {
		return fmt.Errorf("dimensions of %s: %w", name, err)
	}
	want := []int{len(e.times), len(e.levels), len(e.lat), len(e.lon)}
	if len(dims) != len(want) {
		return fmt.Errorf("variable %s has %d dimensions, want %d", name, len(dims), len(want))
	}
	for i, d := range dims {
		n, err := d.Len()
		if err != nil {
			return fmt.Errorf("dimensions of %s: %w", name, err)
		}
		if int(n) != want[i] {
			return fmt.Errorf("variable %s dimension %d has length %d, want %d", name, i, n, want[i])
		}
	}
	return nil
}

// Levels returns the pressure axis in millibars.
func (e *ERA) Levels() []float64 {
	return e.levels
}

// Timesteps returns the length of the time axis.
func (e *ERA) Timesteps() int {
	return len(e.times)
}

// TimestepDate decodes the timestamp at index i.
func (e *ERA) TimestepDate(i int) (time.Time, error) {
	if i < 0 || i >= len(e.times) {
		return time.Time{}, fmt.Errorf("timestep %d out of range [0, %d)", i, len(e.times))
	}
	return e.clock.Decode(e.times[i]), nil
}

// Windspeed derives the scaled wind-speed field for one timestep at the
// given pressure level, with longitude re-centered to [-180, 180).
func (e *ERA) Windspeed(timeIndex int, level, sensitivity float64) (*wind.Result, error) {
	if timeIndex < 0 || timeIndex >= len(e.times) {
		return nil, fmt.Errorf("timestep %d out of range [0, %d)", timeIndex, len(e.times))
	}
	levIndex, err := wind.FindLevelIndex(e.levels, level)
	if err != nil {
		return nil, err
	}
	if sensitivity <= 0 {
		sensitivity = wind.DefaultSensitivity(level)
	}

	uGrid, err := e.readSlab(e.u, e.uPack, timeIndex, levIndex)
	if err != nil {
		return nil, fmt.Errorf("read u[%d][%d]: %w", timeIndex, levIndex, err)
	}
	vGrid, err := e.readSlab(e.v, e.vPack, timeIndex, levIndex)
	if err != nil {
		return nil, fmt.Errorf("read v[%d][%d]: %w", timeIndex, levIndex, err)
	}

	speed := wind.Magnitude(uGrid, vGrid, sensitivity)
	shifted, shiftedLon := wind.ShiftLongitude(speed, e.lon)

	return &wind.Result{
		Longitude: shiftedLon,
		Latitude:  append([]float64(nil), e.lat...),
		Speed:     shifted,
	}, nil
}

// readSlab reads one [latitude][longitude] hyperslab of a 4-D wind
// component and unpacks it.
func (e *ERA) readSlab(v netcdf.Var, pack packing, timeIndex, levIndex int) (*mat.Dense, error) {
	nLat, nLon := len(e.lat), len(e.lon)
	data := make([]float64, nLat*nLon)
	start := []uint64{uint64(timeIndex), uint64(levIndex), 0, 0}
	count := []uint64{1, 1, uint64(nLat), uint64(nLon)}
	if err := v.ReadFloat64Slice(data, start, count); err != nil {
		return nil, err
	}
	pack.apply(data)
	return mat.NewDense(nLat, nLon, data), nil
}

func (e *ERA) Close() error {
	return e.ds.Close()
}

// readAxis reads an entire 1-D coordinate variable.
func readAxis(ds netcdf.Dataset, name string) ([]float64, error) {
	v, err := ds.Var(name)
	if err != nil {
		return nil, fmt.Errorf("variable %s: %w", name, err)
	}
	vals, err := readFloats(v)
	if err != nil {
		return nil, fmt.Errorf("read %s axis: %w", name, err)
	}
	return vals, nil
}

func readFloats(v netcdf.Var) ([]float64, error) {
	n, err := v.Len()
	if err != nil {
		return nil, err
	}
	data := make([]float64, n)
	if err := v.ReadFloat64s(data); err != nil {
		return nil, err
	}
	return data, nil
}

// readStringAttr reads a character attribute.
func readStringAttr(v netcdf.Var, name string) (string, error) {
	a := v.Attr(name)
	n, err := a.Len()
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if err := a.ReadBytes(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// readFloatAttr reads a scalar numeric attribute, reporting whether it
// is present.
func readFloatAttr(v netcdf.Var, name string) (float64, bool) {
	a := v.Attr(name)
	n, err := a.Len()
	if err != nil || n == 0 {
		return 0, false
	}
	vals := make([]float64, n)
	if err := a.ReadFloat64s(vals); err != nil {
		return 0, false
	}
	return vals[0], true
}

// readPacking collects the CF packing attributes of a variable.
func readPacking(v netcdf.Var) packing {
	p := packing{scale: 1}
	if s, ok := readFloatAttr(v, "scale_factor"); ok {
		p.scale = s
	}
	if o, ok := readFloatAttr(v, "add_offset"); ok {
		p.offset = o
	}
	if m, ok := readFloatAttr(v, "missing_value"); ok {
		p.missing, p.hasMissing = m, true
	} else if m, ok := readFloatAttr(v, "_FillValue"); ok {
		p.missing, p.hasMissing = m, true
	}
	return p
}
