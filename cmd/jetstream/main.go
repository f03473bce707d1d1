// Command jetstream renders wind-speed maps from gridded reanalysis
// data: one colored, continent-overlaid PNG per timestep in the
// datafile.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/lox/jetstream/internal/dataset"
	"github.com/lox/jetstream/internal/fetch"
	"github.com/lox/jetstream/internal/render"
)

type cli struct {
	Level      int     `short:"l" default:"250" help:"Pressure level to plot, in millibars. 1000 for sea level, 775 for around 7000 feet, 250 for the jetstream."`
	Threshold  float64 `short:"t" default:"0" help:"Sensitivity scale factor. If 0, uses 3.5 for the jetstream level and 7.5 for any other level."`
	Area       string  `short:"a" default:"-180,180,-70,74" help:"Area to plot: west,east,south,north."`
	Outdir     string  `short:"o" default:"outdir" help:"Output directory (will be created if needed)."`
	DPI        int     `short:"d" default:"100" help:"DPI to save images."`
	ListLevels bool    `short:"L" help:"List levels available in the data file and exit."`
	Coastlines string  `help:"GeoJSON land polygons to draw instead of the built-in outlines."`
	CacheDir   string  `default:".jetstream-cache" help:"Directory for downloaded datafiles."`
	Datafile   string  `arg:"" help:"The datafile, in netCDF4 format, or an ftp:// URL to one."`
}

// Color range and tick marks of the wind-speed colorbar, in km/h.
const (
	speedMin = 80
	speedMax = 220
)

var colorbarTicks = []float64{100, 150, 200, 250}

func main() {
	var flags cli
	kong.Parse(&flags,
		kong.Name("jetstream"),
		kong.Description("Makes beautiful maps of the atmospheric jet stream."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	if err := run(&flags); err != nil {
		log.Fatalf("jetstream: %v", err)
	}
}

func run(flags *cli) error {
	area, err := parseArea(flags.Area)
	if err != nil {
		return err
	}
	if flags.Threshold < 0 {
		return fmt.Errorf("threshold must be positive (or 0 for the per-level default)")
	}

	datafile := flags.Datafile
	if fetch.IsRemote(datafile) {
		if datafile, err = fetch.Datafile(flags.Datafile, flags.CacheDir); err != nil {
			return err
		}
	}

	var src dataset.Source
	if src, err = dataset.OpenERA(datafile); err != nil {
		return err
	}
	defer src.Close()

	if flags.ListLevels {
		fmt.Printf("Levels available in dataset %s:\n", flags.Datafile)
		for _, level := range src.Levels() {
			fmt.Printf("    %g\n", level)
		}
		return nil
	}

	// Fail on an unusable output path before any rendering work.
	if err := ensureOutdir(flags.Outdir); err != nil {
		return err
	}

	coast := render.BuiltinCoastlines()
	if flags.Coastlines != "" {
		if coast, err = render.LoadCoastlines(flags.Coastlines); err != nil {
			return err
		}
	}

	renderer := &render.Renderer{
		Area:  area,
		DPI:   flags.DPI,
		VMin:  speedMin,
		VMax:  speedMax,
		Ticks: colorbarTicks,
		Label: fmt.Sprintf("Average wind speed at %d mb (km/h)", flags.Level),
		Cmap:  render.Jetstream(),
		Coast: coast,
	}

	// Strictly sequential: each timestep is computed, rendered and
	// saved before the next begins.
	for i := 0; i < src.Timesteps(); i++ {
		date, err := src.TimestepDate(i)
		if err != nil {
			return err
		}
		timestr := date.Format("2006-01-02")

		result, err := src.Windspeed(i, float64(flags.Level), flags.Threshold)
		if err != nil {
			return err
		}

		img, err := renderer.Render(result, mapTitle(flags.Level, timestr))
		if err != nil {
			return fmt.Errorf("render %s: %w", timestr, err)
		}

		figname := filepath.Join(flags.Outdir, fmt.Sprintf("%s-%d.png", timestr, flags.Level))
		if err := render.WritePNG(figname, img); err != nil {
			return err
		}
		fmt.Println(figname)
	}
	return nil
}

// ensureOutdir creates the output directory if needed and rejects a
// path that exists but is not a directory.
func ensureOutdir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("can't create dir %s: there's a file by that name", path)
	case err != nil:
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("create outdir: %w", err)
		}
	}
	return nil
}

func mapTitle(level int, timestr string) string {
	if level == 250 {
		return "Jet Stream " + timestr
	}
	return fmt.Sprintf("Winds %d mb %s", level, timestr)
}

// parseArea parses a west,east,south,north bounding box.
func parseArea(s string) (render.Area, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return render.Area{}, fmt.Errorf("area %q: want west,east,south,north", s)
	}
	vals := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return render.Area{}, fmt.Errorf("area %q: %w", s, err)
		}
		vals[i] = v
	}
	area := render.Area{West: vals[0], East: vals[1], South: vals[2], North: vals[3]}
	if area.East <= area.West || area.North <= area.South {
		return render.Area{}, fmt.Errorf("area %q: empty bounding box", s)
	}
	return area, nil
}
