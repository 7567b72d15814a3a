// Package config resolves command line settings for ggart. Values come
// from built-in defaults, then an optional JSON file, then flags that were
// set explicitly on the command line.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrFigSize is returned for a malformed -figsize value.
var ErrFigSize = errors.New("config: figure size must look like WxH")

// Kind selects which flags a command accepts.
type Kind int

const (
	Ribbon Kind = iota
	Logo
)

func (k Kind) String() string {
	switch k {
	case Ribbon:
		return "ribbon"
	case Logo:
		return "logo"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Config holds every setting a command can take. Fields that do not apply
// to a Kind are left at their defaults.
type Config struct {
	Output     string  `json:"output"`
	DPI        float64 `json:"dpi"`
	Background string  `json:"background"`
	Foreground string  `json:"foreground"`
	Text       string  `json:"text"`
	FontSize   float64 `json:"fontsize"`
	FigSize    string  `json:"figsize"`
	Colormap   string  `json:"cmap"`
	NoShow     bool    `json:"no_show"`
	Verbose    bool    `json:"verbose"`
}

// Size parses FigSize into inches.
func (c Config) Size() (w, h float64, err error) {
	return ParseFigSize(c.FigSize)
}

// ParseFigSize parses "WxH", for example "3x3" or "5.5x2".
func ParseFigSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrFigSize, s)
	}
	if w, err = strconv.ParseFloat(strings.TrimSpace(ws), 64); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrFigSize, s)
	}
	if h, err = strconv.ParseFloat(strings.TrimSpace(hs), 64); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrFigSize, s)
	}
	if !(w > 0) || !(h > 0) {
		return 0, 0, fmt.Errorf("%w: %q", ErrFigSize, s)
	}
	return w, h, nil
}

// FormatFigSize is the inverse of ParseFigSize.
func FormatFigSize(w, h float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64) + "x" + strconv.FormatFloat(h, 'g', -1, 64)
}

// Parse reads args for a command of the given kind. Flag errors and
// usage text go to stderr.
func Parse(kind Kind, args []string, defaults Config, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet(kind.String(), flag.ContinueOnError)
	fs.SetOutput(stderr)

	flagged := defaults
	configPath := fs.String("config", "", "JSON config file")
	fs.StringVar(&flagged.Output, "o", defaults.Output, "output file; the extension picks the format")
	fs.Float64Var(&flagged.DPI, "dpi", defaults.DPI, "resolution in dots per inch")
	fs.BoolVar(&flagged.NoShow, "no-show", defaults.NoShow, "do not open a window")
	fs.BoolVar(&flagged.Verbose, "v", defaults.Verbose, "log progress to stderr")
	switch kind {
	case Ribbon:
		fs.StringVar(&flagged.Background, "bg", defaults.Background, "band colour")
		fs.StringVar(&flagged.Foreground, "fg", defaults.Foreground, "label and stitch colour")
		fs.StringVar(&flagged.Text, "text", defaults.Text, "label")
		fs.Float64Var(&flagged.FontSize, "fontsize", defaults.FontSize, "label size in points")
		fs.StringVar(&flagged.FigSize, "figsize", defaults.FigSize, "figure size in inches, WxH")
	case Logo:
		fs.StringVar(&flagged.Foreground, "fg", defaults.Foreground, "letter colour")
		fs.StringVar(&flagged.Colormap, "cmap", defaults.Colormap, "colormap for the series")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config: unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	conf := defaults
	if *configPath != "" {
		if err := Load(*configPath, &conf); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			conf.Output = flagged.Output
		case "dpi":
			conf.DPI = flagged.DPI
		case "no-show":
			conf.NoShow = flagged.NoShow
		case "v":
			conf.Verbose = flagged.Verbose
		case "bg":
			conf.Background = flagged.Background
		case "fg":
			conf.Foreground = flagged.Foreground
		case "text":
			conf.Text = flagged.Text
		case "fontsize":
			conf.FontSize = flagged.FontSize
		case "figsize":
			conf.FigSize = flagged.FigSize
		case "cmap":
			conf.Colormap = flagged.Colormap
		}
	})
	return conf, nil
}

// Load decodes the JSON file at path over conf. Keys missing from the file
// keep their current values.
func Load(path string, conf *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(conf); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}
