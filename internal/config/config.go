// Package config holds tuning constants and the env/flag configuration of the
// neural canvas binary.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Particle field
	ParticleArea      = 9000.0 // viewport pixels per particle
	RadiusMin         = 0.5
	RadiusSpan        = 2.0
	SpeedSpan         = 1.0 // velocity sampled in [-SpeedSpan/2, SpeedSpan/2)
	ConnectionDivisor = 7.0
	LineFalloff       = 20000.0
	LineOpacity       = 0.15
	LineWidth         = 1.0

	// Terminal button
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonMargin = 20

	// Page layout
	HeroHeight  = 320
	CardWidth   = 280
	CardHeight  = 150
	CardGap     = 30
	ScrollSpeed = 40

	// Audio
	VisualRingSize = 8192
	ClickVolume    = 0.4
	TypeVolume     = 0.1
)

// Config holds runtime configuration for the neural canvas binary.
type Config struct {
	Width        int    `env:"NEURAL_CANVAS_WIDTH" envDefault:"1280"`
	Height       int    `env:"NEURAL_CANVAS_HEIGHT" envDefault:"800"`
	Title        string `env:"NEURAL_CANVAS_TITLE" envDefault:"Neural Canvas"`
	Seed         int64  `env:"NEURAL_CANVAS_SEED"`
	Theme        string `env:"NEURAL_CANVAS_THEME" envDefault:"dark"`
	CustomCursor bool   `env:"NEURAL_CANVAS_CUSTOM_CURSOR" envDefault:"true"`

	SampleRate     int    `env:"NEURAL_CANVAS_SAMPLE_RATE" envDefault:"44100"`
	MusicPath      string `env:"NEURAL_CANVAS_MUSIC"`
	ClickSoundPath string `env:"NEURAL_CANVAS_CLICK_SOUND"`
	TypeSoundPath  string `env:"NEURAL_CANVAS_TYPE_SOUND"`

	ContactEndpoint  string `env:"NEURAL_CANVAS_CONTACT_ENDPOINT" envDefault:"https://api.web3forms.com/submit"`
	ContactAccessKey string `env:"NEURAL_CANVAS_CONTACT_ACCESS_KEY"`
	ContactEmail     string `env:"NEURAL_CANVAS_CONTACT_EMAIL" envDefault:"vachhanisujal4@gmail.com"`

	Owner  string `env:"NEURAL_CANVAS_OWNER" envDefault:"Sujal"`
	Handle string `env:"NEURAL_CANVAS_HANDLE" envDefault:"sujal@admin"`

	DesktopNotifications bool `env:"NEURAL_CANVAS_DESKTOP_NOTIFICATIONS" envDefault:"false"`

	Headless bool   `env:"NEURAL_CANVAS_HEADLESS" envDefault:"false"`
	Frames   int    `env:"NEURAL_CANVAS_FRAMES" envDefault:"120"`
	Output   string `env:"NEURAL_CANVAS_OUTPUT" envDefault:"neural-canvas.png"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if target == nil {
		return errors.New("config target is required")
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Initial window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Initial window height")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for the particle field (0 uses the clock)")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Initial theme: dark or light")
	fs.BoolVar(&cfg.CustomCursor, "cursor", cfg.CustomCursor, "Draw the custom cursor dot")
	fs.StringVar(&cfg.MusicPath, "music", cfg.MusicPath, "Audio file for the music toggle (wav, mp3, flac)")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Render the particle field to a PNG without a window")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "Frames to simulate in headless mode")
	fs.StringVar(&cfg.Output, "out", cfg.Output, "PNG output path in headless mode")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Frames < 0 {
		return Config{}, fmt.Errorf("frames must not be negative, got %d", cfg.Frames)
	}
	return cfg, nil
}
