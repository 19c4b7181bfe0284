// Package config reads plot settings from flags, UNIPLOT_* environment
// variables and an optional YAML file.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"uniplot/internal/canvas"
	"uniplot/internal/frame"
	"uniplot/internal/imgenc"
	"uniplot/internal/plot"
	"uniplot/internal/raster"
	"uniplot/internal/scale"
)

// EnvPrefix is prepended to every key when read from the environment,
// so "log-level" becomes UNIPLOT_LOG_LEVEL.
const EnvPrefix = "UNIPLOT"

// Fallback size when neither the user nor the terminal gives one.
const (
	DefaultWidth  = 60
	DefaultHeight = 15
)

// Config is the validated form of the settings.
type Config struct {
	Width, Height int

	Title  string
	XLabel string
	YLabel string

	Border  frame.BorderStyle
	Axes    bool
	Scatter bool
	Legend  bool

	Markers []raster.Marker
	Names   []string
	Glyphs  *canvas.GlyphSet
	XScale  scale.Transform
	YScale  scale.Transform

	Graphics imgenc.Protocol
	// Color is auto, always or never.
	Color string

	LogLevel string
	Timeout  time.Duration
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("border", "single")
	v.SetDefault("axes", true)
	v.SetDefault("glyphs", "braille")
	v.SetDefault("xscale", "linear")
	v.SetDefault("yscale", "linear")
	v.SetDefault("graphics", "none")
	v.SetDefault("color", "auto")
	v.SetDefault("log-level", "warn")
	v.SetDefault("timeout", 10*time.Second)
	return v
}

// BindFlags registers the plot flags on fs and binds them to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String("config", "", "YAML file with default settings")
	fs.IntP("width", "W", 0, "output width in cells (default: terminal width)")
	fs.IntP("height", "H", 0, "output height in cells (default: terminal height)")
	fs.StringP("title", "t", "", "title")
	fs.String("xlabel", "", "x axis label")
	fs.String("ylabel", "", "y axis label")
	fs.String("border", "single", "border style: none, single, double, rounded, ascii")
	fs.Bool("axes", true, "draw tick labels")
	fs.Bool("scatter", false, "draw points without connecting lines")
	fs.Bool("legend", false, "list series names below the plot")
	fs.StringSlice("markers", nil, "marker per series: a name (dot, cross, ...) or a single glyph")
	fs.StringSlice("names", nil, "name per series")
	fs.String("glyphs", "braille", "sub-pixel glyphs: braille, quadrant, half, dot")
	fs.String("xscale", "linear", "x axis scale: linear, log2, log10, ln")
	fs.String("yscale", "linear", "y axis scale: linear, log2, log10, ln")
	fs.String("graphics", "none", "graphics protocol for images: none, kitty, sixel")
	fs.String("color", "auto", "colour output: auto, always, never")
	fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.Duration("timeout", 10*time.Second, "render timeout")

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = v.BindPFlag(f.Name, f)
		}
	})
	return err
}

// Load reads the optional config file named by the "config" key and
// validates every setting.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "config: read %s", path)
		}
	}

	c := Config{
		Width:    v.GetInt("width"),
		Height:   v.GetInt("height"),
		Title:    v.GetString("title"),
		XLabel:   v.GetString("xlabel"),
		YLabel:   v.GetString("ylabel"),
		Axes:     v.GetBool("axes"),
		Scatter:  v.GetBool("scatter"),
		Legend:   v.GetBool("legend"),
		Names:    list(v.GetStringSlice("names")),
		LogLevel: v.GetString("log-level"),
		Timeout:  v.GetDuration("timeout"),
	}
	switch c.Color = strings.ToLower(v.GetString("color")); c.Color {
	case "auto", "always", "never":
	default:
		return Config{}, errors.Errorf("config: color %q", c.Color)
	}
	if c.Width < 0 || c.Height < 0 {
		return Config{}, errors.Errorf("config: negative size %dx%d", c.Width, c.Height)
	}

	var err error
	if c.Border, err = frame.ParseBorder(v.GetString("border")); err != nil {
		return Config{}, err
	}
	if c.Markers, err = raster.ParseMarkers(list(v.GetStringSlice("markers"))); err != nil {
		return Config{}, err
	}
	if c.Glyphs, err = canvas.ParseGlyphSet(v.GetString("glyphs")); err != nil {
		return Config{}, err
	}
	if c.XScale, err = scale.ParseTransform(v.GetString("xscale")); err != nil {
		return Config{}, err
	}
	if c.YScale, err = scale.ParseTransform(v.GetString("yscale")); err != nil {
		return Config{}, err
	}
	if c.Graphics, err = imgenc.ParseProtocol(v.GetString("graphics")); err != nil {
		return Config{}, err
	}
	return c, nil
}

// list splits comma separated entries; environment values arrive as one
// string.
func list(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// WithSize fills an unset width or height.
func (c Config) WithSize(w, h int) Config {
	if c.Width <= 0 {
		c.Width = w
	}
	if c.Height <= 0 {
		c.Height = h
	}
	return c
}

// PlotOptions converts c. An unset size falls back to 60x15.
func (c Config) PlotOptions() plot.Options {
	c = c.WithSize(DefaultWidth, DefaultHeight)
	o := plot.DefaultOptions()
	o.Width = c.Width
	o.Height = c.Height
	o.Title = c.Title
	o.XLabel = c.XLabel
	o.YLabel = c.YLabel
	o.Border = c.Border
	o.ShowAxes = c.Axes
	o.Scatter = c.Scatter
	o.Legend = c.Legend
	o.Markers = c.Markers
	o.Names = c.Names
	o.Glyphs = c.Glyphs
	o.XScale = c.XScale
	o.YScale = c.YScale
	return o
}

// ImageOptions converts c. Images use quadrant blocks unless half blocks
// are configured; braille and dot carry only one colour per cell.
func (c Config) ImageOptions() plot.ImageOptions {
	o := plot.ImageOptions{
		Title:  c.Title,
		Border: c.Border,
		Encoder: imgenc.Options{
			Cols:       c.Width,
			Rows:       c.Height,
			Capability: c.Graphics,
			Glyphs:     canvas.Quadrant,
		},
	}
	if c.Glyphs == canvas.HalfBlock {
		o.Encoder.Glyphs = canvas.HalfBlock
	}
	if c.Graphics != imgenc.ProtocolNone {
		o.Encoder.Mode = imgenc.Graphics
	}
	return o
}
