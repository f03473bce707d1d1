package dataset

import (
	"fmt"
	"strings"
	"time"
)

// timeCodec decodes CF-convention time values ("<unit> since <epoch>"
// plus a calendar name) into time.Time.
type timeCodec struct {
	epoch time.Time
	unit  time.Duration
}

// supported calendars all reduce to proleptic Gregorian arithmetic,
// which is what time.Time does natively.
var calendars = map[string]bool{
	"standard":            true,
	"gregorian":           true,
	"proleptic_gregorian": true,
}

var unitDurations = map[string]time.Duration{
	"seconds": time.Second,
	"minutes": time.Minute,
	"hours":   time.Hour,
	"days":    24 * time.Hour,
}

// epoch layouts seen in the wild, most specific first. ERA files use
// "hours since 1900-01-01 00:00:00.0".
var epochLayouts = []string{
	"2006-01-02 15:04:05.0",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04",
	"2006-01-02",
}

func newTimeCodec(units, calendar string) (*timeCodec, error) {
	if calendar != "" && !calendars[strings.ToLower(calendar)] {
		return nil, fmt.Errorf("unsupported calendar %q", calendar)
	}

	fields := strings.SplitN(strings.TrimSpace(units), " since ", 2)
	if len(fields) != 2 {
		return nil, fmt.Errorf("time units %q: want \"<unit> since <epoch>\"", units)
	}

	unit, ok := unitDurations[strings.ToLower(strings.TrimSpace(fields[0]))]
	if !ok {
		return nil, fmt.Errorf("time units %q: unsupported unit %q", units, fields[0])
	}

	epochStr := strings.TrimSpace(fields[1])
	for _, layout := range epochLayouts {
		if epoch, err := time.Parse(layout, epochStr); err == nil {
			return &timeCodec{epoch: epoch.UTC(), unit: unit}, nil
		}
	}
	return nil, fmt.Errorf("time units %q: cannot parse epoch %q", units, epochStr)
}

// Decode converts an encoded time value into UTC wall time.
func (c *timeCodec) Decode(value float64) time.Time {
	return c.epoch.Add(time.Duration(value * float64(c.unit)))
}
