package dataset

import "math"

// packing describes how a variable's raw values map to physical ones.
// ERA files store wind components as packed int16 with a scale factor
// and offset; the missing-value comparison happens against the raw
// (packed) value, before scaling.
type packing struct {
	scale      float64
	offset     float64
	missing    float64
	hasMissing bool
}

// apply unpacks data in place. Missing cells become NaN and propagate
// through downstream arithmetic unmasked.
func (p packing) apply(data []float64) {
	for i, raw := range data {
		if p.hasMissing && raw == p.missing {
			data[i] = math.NaN()
			continue
		}
		data[i] = raw*p.scale + p.offset
	}
}
