package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/neural-canvas/internal/audio"
	"github.com/iburimskiy/neural-canvas/internal/config"
	"github.com/iburimskiy/neural-canvas/internal/contact"
	"github.com/iburimskiy/neural-canvas/internal/game"
	"github.com/iburimskiy/neural-canvas/internal/notify"
	"github.com/iburimskiy/neural-canvas/internal/particles"
	"github.com/iburimskiy/neural-canvas/internal/theme"
)

const frameInterval = time.Second / 60

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[NEURAL] ")

	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg config.Config) error {
	mode, err := theme.Parse(cfg.Theme)
	if err != nil {
		return err
	}
	th := theme.New(mode)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return renderHeadless(ctx, cfg, th, rng)
	}

	player := audio.NewPlayer(audio.Speaker, cfg.SampleRate)
	if err := player.LoadSounds(cfg.ClickSoundPath, cfg.TypeSoundPath); err != nil {
		log.Printf("%v, using synthesized sounds", err)
	}
	defer player.StopMusic()

	notices := notify.NewCenter()
	notices.Desktop = cfg.DesktopNotifications
	notices.OnShow = func(notify.Kind) { player.Click() }

	g := game.New(game.Options{
		Config:  cfg,
		Theme:   th,
		Rand:    rng,
		Player:  player,
		Notices: notices,
		Contact: contact.NewClient(cfg.ContactEndpoint, cfg.ContactAccessKey),
	})

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title + " - T: theme, M: music, `: terminal, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.CustomCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// renderHeadless simulates cfg.Frames frames at display rate and writes the
// last one to cfg.Output.
func renderHeadless(ctx context.Context, cfg config.Config, th *theme.Theme, rng *rand.Rand) error {
	sim := particles.NewSimulator(float64(cfg.Width), float64(cfg.Height), rng, th)
	surface := particles.NewRasterSurface(cfg.Width, cfg.Height, th.Background())

	frames := make(chan time.Time)
	go func() {
		defer close(frames)
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for i := 0; i < cfg.Frames; i++ {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				select {
				case frames <- t:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	if err := sim.Run(ctx, frames, surface); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	if cfg.Frames == 0 {
		sim.Render(surface)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, surface.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.Printf("rendered %d particles over %d frames to %s", len(sim.Field().Particles), cfg.Frames, cfg.Output)
	return f.Close()
}
