package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/ctessum/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/lox/jetstream/internal/wind"
)

// Area is a geographic bounding box in degrees.
type Area struct {
	West, East, South, North float64
}

// Figure proportions and layout fractions. The figure is 10x5 inches;
// the map axes sit inside margins with the colorbar strip below.
const (
	figWidthInches  = 10
	figHeightInches = 5

	marginLeft   = 0.05
	marginRight  = 0.95
	marginTop    = 0.88 // measured from the bottom
	marginBottom = 0.15

	colorbarPadInches    = 0.1
	colorbarHeightInches = 0.25
)

var (
	colorLand  = color.RGBA{R: 0xbd, G: 0xc3, B: 0xc7, A: 0xff}
	colorCoast = color.RGBA{R: 0x7f, G: 0x8c, B: 0x8d, A: 0xff}
	colorFrame = color.RGBA{A: 0xff}
	colorWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Renderer rasterizes wind-speed results into map images. The zero
// value is not usable; fill in the configuration once at startup.
type Renderer struct {
	Area       Area
	DPI        int
	VMin, VMax float64
	Ticks      []float64
	Label      string
	Cmap       Colormap
	Coast      *Coastlines
}

// Render draws the wind-speed field as a color mesh over gray
// continents, with coastlines, a labeled horizontal colorbar and a
// title.
func (r *Renderer) Render(res *wind.Result, title string) (*image.RGBA, error) {
	dpi := r.DPI
	if dpi <= 0 {
		dpi = 100
	}

	width := figWidthInches * dpi
	height := figHeightInches * dpi
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), colorWhite)

	// Map axes rectangle in pixels.
	mapRect := image.Rect(
		int(marginLeft*float64(width)),
		int((1-marginTop)*float64(height)),
		int(marginRight*float64(width)),
		int((1-marginBottom)*float64(height)),
	)

	r.drawMesh(img, mapRect, res)
	if r.Coast != nil {
		r.strokeCoastlines(img, mapRect)
	}
	strokeRect(img, mapRect, colorFrame)

	if err := r.drawColorbar(img, mapRect, dpi); err != nil {
		return nil, err
	}

	titleFace, err := newFace(24, dpi)
	if err != nil {
		return nil, err
	}
	defer titleFace.Close()
	drawText(img, title, mapRect.Min.X, int(0.09*float64(height)), colorFrame, titleFace)

	return img, nil
}

// drawMesh paints continents and the nearest-cell color mesh inside
// the map rectangle.
func (r *Renderer) drawMesh(img *image.RGBA, rect image.Rectangle, res *wind.Result) {
	lonSpan := r.Area.East - r.Area.West
	latSpan := r.Area.North - r.Area.South
	w := rect.Dx()
	h := rect.Dy()

	// Precompute the pixel -> cell mapping per column and row.
	cols := make([]int, w)
	lons := make([]float64, w)
	for x := 0; x < w; x++ {
		lons[x] = r.Area.West + (float64(x)+0.5)/float64(w)*lonSpan
		cols[x] = nearestIndex(res.Longitude, lons[x])
	}
	rows := make([]int, h)
	lats := make([]float64, h)
	for y := 0; y < h; y++ {
		lats[y] = r.Area.North - (float64(y)+0.5)/float64(h)*latSpan
		rows[y] = nearestIndex(res.Latitude, lats[y])
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py := rect.Min.X+x, rect.Min.Y+y

			// Continents sit under the data layer.
			if r.Coast != nil && r.Coast.landAt(lons[x], lats[y]) {
				img.SetRGBA(px, py, colorLand)
			}

			if rows[y] < 0 || cols[x] < 0 {
				continue
			}
			c := r.Cmap.Map(res.Speed.At(rows[y], cols[x]), r.VMin, r.VMax)
			blendOver(img, px, py, c)
		}
	}
}

// strokeCoastlines draws the land outlines clipped to the map
// rectangle.
func (r *Renderer) strokeCoastlines(img *image.RGBA, rect image.Rectangle) {
	lonSpan := r.Area.East - r.Area.West
	latSpan := r.Area.North - r.Area.South
	toPx := func(pt geom.Point) (int, int) {
		x := rect.Min.X + int((pt.X-r.Area.West)/lonSpan*float64(rect.Dx()))
		y := rect.Min.Y + int((r.Area.North-pt.Y)/latSpan*float64(rect.Dy()))
		return x, y
	}
	for _, poly := range r.Coast.polys {
		for _, ring := range poly {
			for i := range ring {
				a := ring[i]
				b := ring[(i+1)%len(ring)]
				// Rings wrapping the dateline would smear across the
				// whole map as a horizontal line.
				if math.Abs(a.X-b.X) > 180 {
					continue
				}
				ax, ay := toPx(a)
				bx, by := toPx(b)
				drawLine(img, ax, ay, bx, by, rect, colorCoast)
			}
		}
	}
}

// drawColorbar draws the horizontal gradient strip below the map with
// tick marks, tick labels and the axis label.
func (r *Renderer) drawColorbar(img *image.RGBA, mapRect image.Rectangle, dpi int) error {
	top := mapRect.Max.Y + int(colorbarPadInches*float64(dpi))
	barRect := image.Rect(mapRect.Min.X, top, mapRect.Max.X, top+int(colorbarHeightInches*float64(dpi)))

	for x := barRect.Min.X; x < barRect.Max.X; x++ {
		t := float64(x-barRect.Min.X) / float64(barRect.Dx()-1)
		c := r.Cmap.At(t)
		for y := barRect.Min.Y; y < barRect.Max.Y; y++ {
			img.SetRGBA(x, y, colorWhite)
			blendOver(img, x, y, c)
		}
	}
	strokeRect(img, barRect, colorFrame)

	tickFace, err := newFace(10, dpi)
	if err != nil {
		return err
	}
	defer tickFace.Close()
	labelFace, err := newFace(16, dpi)
	if err != nil {
		return err
	}
	defer labelFace.Close()

	tickLabelBase := barRect.Max.Y + tickFace.Metrics().Ascent.Ceil() + 4
	for _, tick := range r.Ticks {
		if tick < r.VMin || tick > r.VMax {
			continue
		}
		x := barRect.Min.X + int((tick-r.VMin)/(r.VMax-r.VMin)*float64(barRect.Dx()-1))
		drawLine(img, x, barRect.Max.Y, x, barRect.Max.Y+4, img.Bounds(), colorFrame)
		label := fmt.Sprintf("%g", tick)
		tw := font.MeasureString(tickFace, label).Ceil()
		drawText(img, label, x-tw/2, tickLabelBase, colorFrame, tickFace)
	}

	if r.Label != "" {
		tw := font.MeasureString(labelFace, r.Label).Ceil()
		base := tickLabelBase + labelFace.Metrics().Ascent.Ceil() + 4
		drawText(img, r.Label, barRect.Min.X+(barRect.Dx()-tw)/2, base, colorFrame, labelFace)
	}
	return nil
}

// WritePNG encodes the image to a PNG file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// nearestIndex returns the index of the axis value closest to v, or -1
// when v falls more than one cell spacing outside the axis. The axis
// may run in either direction.
func nearestIndex(axis []float64, v float64) int {
	if len(axis) == 0 {
		return -1
	}
	best, bestDist := 0, math.Abs(axis[0]-v)
	for i := 1; i < len(axis); i++ {
		if d := math.Abs(axis[i] - v); d < bestDist {
			best, bestDist = i, d
		}
	}
	// Spacing local to the matched cell: axes like Gaussian latitudes
	// are not uniform.
	spacing := 1.0
	switch {
	case len(axis) == 1:
	case best == 0:
		spacing = math.Abs(axis[1] - axis[0])
	case best == len(axis)-1:
		spacing = math.Abs(axis[best] - axis[best-1])
	default:
		spacing = math.Max(math.Abs(axis[best]-axis[best-1]), math.Abs(axis[best+1]-axis[best]))
	}
	if bestDist > spacing {
		return -1
	}
	return best
}

// blendOver composites a straight-alpha color over the pixel.
func blendOver(img *image.RGBA, x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	base := img.RGBAAt(x, y)
	a := float64(c.A) / 255
	base.R = uint8(float64(c.R)*a + float64(base.R)*(1-a))
	base.G = uint8(float64(c.G)*a + float64(base.G)*(1-a))
	base.B = uint8(float64(c.B)*a + float64(base.B)*(1-a))
	base.A = 0xff
	img.SetRGBA(x, y, base)
}

func fillRect(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func strokeRect(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.SetRGBA(x, rect.Min.Y, c)
		img.SetRGBA(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.SetRGBA(rect.Min.X, y, c)
		img.SetRGBA(rect.Max.X-1, y, c)
	}
}

// drawLine draws a 1px Bresenham line clipped to the given rectangle.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, clip image.Rectangle, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(clip) {
			img.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func drawText(img *image.RGBA, text string, x, y int, c color.RGBA, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
