package main

import (
	"bytes"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/youruser/logostamp/internal/config"
	imagepkg "github.com/youruser/logostamp/internal/image"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Paths: config.PathsConfig{
			Background: filepath.Join(dir, "background.jpg"),
			Logo:       filepath.Join(dir, "logo.png"),
			Output:     filepath.Join(dir, "output.jpg"),
		},
		Output: config.OutputConfig{JPEGQuality: 95},
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	if err := imagepkg.Save(cfg.Paths.Background, imaging.New(1000, 800, color.Black), 95); err != nil {
		t.Fatalf("write background: %v", err)
	}
	if err := imagepkg.SavePNG(cfg.Paths.Logo, imaging.New(400, 100, color.White)); err != nil {
		t.Fatalf("write logo: %v", err)
	}

	var out bytes.Buffer
	run(&out, cfg)

	want := "Success: Image saved to " + cfg.Paths.Output + "\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRunMissingLogo(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	if err := imagepkg.Save(cfg.Paths.Background, imaging.New(100, 100, color.Black), 95); err != nil {
		t.Fatalf("write background: %v", err)
	}

	var out bytes.Buffer
	run(&out, cfg)

	line := out.String()
	if !strings.HasPrefix(line, "Error: ") || !strings.Contains(line, "no such file or directory") {
		t.Fatalf("output = %q", line)
	}
	if strings.Count(line, "\n") != 1 {
		t.Fatalf("expected a single line, got %q", line)
	}
}
