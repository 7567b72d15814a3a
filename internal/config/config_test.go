package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func ribbonDefaults() Config {
	return Config{
		DPI:        400,
		Background: "darkslategray",
		Foreground: "white",
		Text:       "Fork me on GitHub",
		FontSize:   14,
		FigSize:    "3x3",
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ggart.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	got, err := Parse(Ribbon, nil, ribbonDefaults(), io.Discard)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != ribbonDefaults() {
		t.Errorf("Parse() = %+v, want defaults", got)
	}
}

func TestParseFlags(t *testing.T) {
	args := []string{"-o", "r.png", "-dpi", "100", "-bg", "navy", "-text", "Star me", "-figsize", "2x4", "-no-show", "-v"}
	got, err := Parse(Ribbon, args, ribbonDefaults(), io.Discard)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := ribbonDefaults()
	want.Output = "r.png"
	want.DPI = 100
	want.Background = "navy"
	want.Text = "Star me"
	want.FigSize = "2x4"
	want.NoShow = true
	want.Verbose = true
	if got != want {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParsePrecedence(t *testing.T) {
	path := writeConfig(t, `{"dpi": 150, "background": "#123456", "text": "From file"}`)

	got, err := Parse(Ribbon, []string{"-config", path, "-text", "From flag"}, ribbonDefaults(), io.Discard)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.DPI != 150 {
		t.Errorf("DPI = %v, want 150 from file", got.DPI)
	}
	if got.Background != "#123456" {
		t.Errorf("Background = %q, want file value", got.Background)
	}
	if got.Text != "From flag" {
		t.Errorf("Text = %q, want flag value", got.Text)
	}
	if got.FontSize != 14 {
		t.Errorf("FontSize = %v, want default 14", got.FontSize)
	}
}

func TestParseFlagEqualToDefaultStillWins(t *testing.T) {
	path := writeConfig(t, `{"dpi": 150}`)
	got, err := Parse(Ribbon, []string{"-config", path, "-dpi", "400"}, ribbonDefaults(), io.Discard)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.DPI != 400 {
		t.Errorf("DPI = %v, want 400", got.DPI)
	}
}

func TestParseKindFlags(t *testing.T) {
	if _, err := Parse(Logo, []string{"-text", "x"}, Config{}, io.Discard); err == nil {
		t.Error("logo should reject -text")
	}
	got, err := Parse(Logo, []string{"-cmap", "hot"}, Config{Colormap: "jet"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Colormap != "hot" {
		t.Errorf("Colormap = %q, want hot", got.Colormap)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"help", []string{"-h"}, flag.ErrHelp},
		{"missing file", []string{"-config", filepath.Join(os.TempDir(), "no-such-ggart.json")}, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(Ribbon, tt.args, ribbonDefaults(), io.Discard); !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := Parse(Ribbon, []string{"extra"}, ribbonDefaults(), io.Discard); err == nil {
		t.Error("Parse() should reject positional arguments")
	}
	bad := writeConfig(t, `{"colour": "red"}`)
	if _, err := Parse(Ribbon, []string{"-config", bad}, ribbonDefaults(), io.Discard); err == nil {
		t.Error("Parse() should reject unknown config keys")
	}
}

func TestParseFigSize(t *testing.T) {
	tests := []struct {
		in     string
		w, h   float64
		wantOK bool
	}{
		{"3x3", 3, 3, true},
		{"5.5X2", 5.5, 2, true},
		{" 4 x 1 ", 4, 1, true},
		{"3", 0, 0, false},
		{"ax3", 0, 0, false},
		{"0x3", 0, 0, false},
		{"3x-1", 0, 0, false},
		{"NaNx1", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := ParseFigSize(tt.in)
			if tt.wantOK {
				if err != nil || w != tt.w || h != tt.h {
					t.Errorf("ParseFigSize(%q) = %v, %v, %v", tt.in, w, h, err)
				}
				return
			}
			if !errors.Is(err, ErrFigSize) {
				t.Errorf("ParseFigSize(%q) error = %v, want ErrFigSize", tt.in, err)
			}
		})
	}
	if s := FormatFigSize(5, 2.5); s != "5x2.5" {
		t.Errorf("FormatFigSize = %q", s)
	}
}
