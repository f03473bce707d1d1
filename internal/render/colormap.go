// Package render turns wind-speed fields into color-mapped map images
// with geographic overlays.
package render

import (
	"image/color"
	"math"
	"sort"
)

// stop anchors one channel of a gradient at a position in [0, 1].
type stop struct {
	pos float64
	val float64
}

// Colormap is an immutable piecewise-linear color gradient with
// independent breakpoints per channel, built once at startup and
// passed to the renderer.
type Colormap struct {
	r, g, b, a []stop
}

// Jetstream reproduces the wind-speed gradient: white fading through
// blue and red to orange, with alpha ramping in over the bottom 15% so
// calm regions stay transparent.
func Jetstream() Colormap {
	const (
		blueR, blueG, blueB       = 52.0 / 255, 152.0 / 255, 219.0 / 255
		redR, redG, redB          = 231.0 / 255, 76.0 / 255, 60.0 / 255
		orangeR, orangeG, orangeB = 241.0 / 255, 196.0 / 255, 15.0 / 255
	)
	return Colormap{
		r: []stop{{0, 1}, {0.25, blueR}, {0.75, redR}, {1, orangeR}},
		g: []stop{{0, 1}, {0.25, blueG}, {0.75, redG}, {1, orangeG}},
		b: []stop{{0, 1}, {0.25, blueB}, {0.75, redB}, {1, orangeB}},
		a: []stop{{0, 0}, {0.15, 1}, {1, 1}},
	}
}

// At evaluates the gradient at t, clamped to [0, 1]. The result is
// straight (non-premultiplied) alpha.
func (m Colormap) At(t float64) color.NRGBA {
	if math.IsNaN(t) {
		return color.NRGBA{}
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return color.NRGBA{
		R: channel(m.r, t),
		G: channel(m.g, t),
		B: channel(m.b, t),
		A: channel(m.a, t),
	}
}

// Map normalizes a value into the [vmin, vmax] color range and
// evaluates the gradient. NaN maps to fully transparent.
func (m Colormap) Map(v, vmin, vmax float64) color.NRGBA {
	if math.IsNaN(v) {
		return color.NRGBA{}
	}
	return m.At((v - vmin) / (vmax - vmin))
}

func channel(stops []stop, t float64) uint8 {
	i := sort.Search(len(stops), func(i int) bool { return stops[i].pos >= t })
	if i == 0 {
		return toByte(stops[0].val)
	}
	if i == len(stops) {
		return toByte(stops[len(stops)-1].val)
	}
	lo, hi := stops[i-1], stops[i]
	if hi.pos == lo.pos {
		return toByte(hi.val)
	}
	f := (t - lo.pos) / (hi.pos - lo.pos)
	return toByte(lo.val + f*(hi.val-lo.val))
}

func toByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
