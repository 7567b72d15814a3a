// Command ggart renders the GitHub corner ribbon and the pyts logo.
//
// Usage:
//
//	ggart ribbon [flags]
//	ggart logo [flags]
//	ggart colormaps
//
// Run a command with -h for its flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/display"
	"github.com/gogpu/ggart/display/window"
	"github.com/gogpu/ggart/internal/config"
	"github.com/gogpu/ggart/logo"
	"github.com/gogpu/ggart/ribbon"
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	errStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, window.Viewer{}))
}

func run(args []string, stdout, stderr io.Writer, viewer display.Viewer) int {
	if len(args) == 0 {
		usage(stderr)
		return 1
	}

	var (
		status string
		err    error
	)
	switch cmd, rest := args[0], args[1:]; cmd {
	case "ribbon":
		status, err = runRibbon(rest, stderr, viewer)
	case "logo":
		status, err = runLogo(rest, stderr, viewer)
	case "colormaps":
		listColormaps(stdout)
		return 0
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	case "version":
		fmt.Fprintln(stdout, "ggart", ggart.Version)
		return 0
	default:
		err = fmt.Errorf("unknown command %q", cmd)
		usage(stderr)
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, errStyle.Render("error:"), err)
		return 1
	}
	fmt.Fprintln(stdout, okStyle.Render("done"), status)
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: ggart ribbon|logo|colormaps [flags]")
}

func listColormaps(w io.Writer) {
	for _, name := range colormap.Names() {
		fmt.Fprintln(w, nameStyle.Render(name), dimStyle.Render("("+name+"_r)"))
	}
}

func setupLogging(verbose bool, stderr io.Writer) {
	if !verbose {
		return
	}
	ggart.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func pickViewer(noShow bool, viewer display.Viewer) display.Viewer {
	if noShow {
		return display.Nop
	}
	return viewer
}

func runRibbon(args []string, stderr io.Writer, viewer display.Viewer) (string, error) {
	d := ribbon.DefaultOptions()
	defaults := config.Config{
		DPI:        d.DPI,
		Background: d.Background,
		Foreground: d.TextColor,
		Text:       d.Text,
		FontSize:   d.FontSize,
		FigSize:    config.FormatFigSize(d.Width, d.Height),
	}
	conf, err := config.Parse(config.Ribbon, args, defaults, stderr)
	if err != nil {
		return "", err
	}
	setupLogging(conf.Verbose, stderr)

	w, h, err := conf.Size()
	if err != nil {
		return "", err
	}
	err = ribbon.Make(
		ribbon.WithBackground(conf.Background),
		ribbon.WithTextColor(conf.Foreground),
		ribbon.WithText(conf.Text),
		ribbon.WithFontSize(conf.FontSize),
		ribbon.WithFigureSize(w, h),
		ribbon.WithOutputFile(conf.Output),
		ribbon.WithDPI(conf.DPI),
		ribbon.WithViewer(pickViewer(conf.NoShow, viewer)),
	)
	if err != nil {
		return "", err
	}
	return summary("ribbon", conf), nil
}

func runLogo(args []string, stderr io.Writer, viewer display.Viewer) (string, error) {
	d := logo.DefaultOptions()
	defaults := config.Config{
		DPI:        d.DPI,
		Foreground: d.Color,
		Colormap:   d.Colormap,
	}
	conf, err := config.Parse(config.Logo, args, defaults, stderr)
	if err != nil {
		return "", err
	}
	setupLogging(conf.Verbose, stderr)

	err = logo.Make(
		logo.WithColormap(conf.Colormap),
		logo.WithColor(conf.Foreground),
		logo.WithOutputFile(conf.Output),
		logo.WithDPI(conf.DPI),
		logo.WithViewer(pickViewer(conf.NoShow, viewer)),
	)
	if err != nil {
		return "", err
	}
	return summary("logo", conf), nil
}

func summary(what string, conf config.Config) string {
	var b strings.Builder
	b.WriteString(nameStyle.Render(what))
	if conf.Output != "" {
		b.WriteString(" saved to " + conf.Output)
	} else {
		b.WriteString(" rendered")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf(" (%g dpi)", conf.DPI)))
	return b.String()
}
