package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/willbeason/ascii-mandel/pkg/mandel"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := mainCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSmallRender(t *testing.T) {
	out, err := execute(t, "--width", "16", "--height", "8", "--max-iter", "20")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := strings.Join([]string{
		"``:lllll<_C<<l::",
		"`:llll<<[\\$\\_<l:",
		"`lll<__t$$$$$[ll",
		"`<<_t$$$$$$$$C<l",
		"$$$$$$$$$$$$$[<l",
		"`<<_t$$$$$$$$C<l",
		"`lll<__t$$$$$[ll",
		"`:llll<<[\\$\\_<l:",
	}, "\n") + "\n"

	if out != want {
		t.Fatalf("unexpected output\ngot:\n%swant:\n%s", out, want)
	}
}

func TestRegionFlag(t *testing.T) {
	out, err := execute(t, "--width", "10", "--height", "5", "--region", "seahorse-valley")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n"); len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
}

func TestUnknownRegion(t *testing.T) {
	_, err := execute(t, "--region", "atlantis")
	if err == nil || !strings.Contains(err.Error(), "unknown region") {
		t.Fatalf("expected unknown region error, got %v", err)
	}
}

func TestInvalidDimensions(t *testing.T) {
	_, err := execute(t, "--width", "0")
	if !errors.Is(err, mandel.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}

func TestPNGOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	out, err := execute(t, "--width", "32", "--height", "16", "--png", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout when writing a PNG, got %q", out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Fatalf("expected 32x16 png, got %dx%d", b.Dx(), b.Dy())
	}
}
