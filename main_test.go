package main

import (
	"context"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/neural-canvas/internal/config"
	"github.com/iburimskiy/neural-canvas/internal/theme"
)

func TestRenderHeadlessWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "field.png")
	cfg := config.Config{Width: 320, Height: 200, Frames: 3, Output: out}

	if err := renderHeadless(context.Background(), cfg, theme.New(theme.Dark), rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("render: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("expected 320x200 image, got %v", b)
	}
}

func TestRenderHeadlessStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := config.Config{Width: 100, Height: 100, Frames: 1000, Output: filepath.Join(t.TempDir(), "x.png")}
	if err := renderHeadless(ctx, cfg, theme.New(theme.Light), rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected cancellation error")
	}
}
