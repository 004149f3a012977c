// Package game drives the neural canvas window: the particle background, the
// hero typewriter, the project cards, the terminal easter egg and the music
// prank.
package game

import (
	"errors"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/neural-canvas/internal/audio"
	"github.com/iburimskiy/neural-canvas/internal/config"
	"github.com/iburimskiy/neural-canvas/internal/contact"
	"github.com/iburimskiy/neural-canvas/internal/effects"
	"github.com/iburimskiy/neural-canvas/internal/notify"
	"github.com/iburimskiy/neural-canvas/internal/particles"
	"github.com/iburimskiy/neural-canvas/internal/terminal"
	"github.com/iburimskiy/neural-canvas/internal/theme"
	"github.com/iburimskiy/neural-canvas/internal/typewriter"
)

// contactDelay mirrors the pause before the mail client opens.
const contactDelay = time.Second

// Options are the collaborators a Game is built from.
type Options struct {
	Config  config.Config
	Theme   *theme.Theme
	Rand    *rand.Rand
	Player  *audio.Player
	Notices *notify.Center
	Contact *contact.Client
}

type button struct {
	label   string
	rect    effects.Rect
	hovered bool
	pressed bool
}

type Game struct {
	cfg     config.Config
	theme   *theme.Theme
	sim     *particles.Simulator
	layer   *ebiten.Image
	player  *audio.Player
	notices *notify.Center
	contact *contact.Client
	typer   *typewriter.Typewriter
	term    *terminal.Terminal
	reveal  *effects.Revealer

	width, height int
	sections      []section
	cards         []placedCard
	headings      []heading
	contentHeight float64
	scroll        float64

	cursorX, cursorY int
	themeButton      button
	termButton       button
	musicButton      button

	musicPath      string
	contactDue     time.Time
	contactRunning atomic.Bool
	inputRunes     []rune
	now            func() time.Time
}

// New builds a game for the configured window size.
func New(opts Options) *Game {
	cfg := opts.Config
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	th := opts.Theme
	if th == nil {
		th = theme.New(theme.Dark)
	}
	notices := opts.Notices
	if notices == nil {
		notices = notify.NewCenter()
	}
	profile := terminal.DefaultProfile(cfg.Owner, cfg.Handle)

	g := &Game{
		cfg:       cfg,
		theme:     th,
		sim:       particles.NewSimulator(float64(cfg.Width), float64(cfg.Height), rng, th),
		player:    opts.Player,
		notices:   notices,
		contact:   opts.Contact,
		typer:     typewriter.New(nil, rng),
		term:      terminal.New(profile),
		reveal:    effects.NewRevealer(effects.RevealThreshold),
		sections:  pageSections(profile),
		musicPath: cfg.MusicPath,
		now:       time.Now,
	}
	g.themeButton.label = "Theme"
	g.termButton.label = ">_ Terminal"
	g.musicButton.label = "Music"
	g.resize(cfg.Width, cfg.Height)
	return g
}

func (g *Game) Update() error {
	now := g.now()

	mouseX, mouseY := ebiten.CursorPosition()
	g.cursorX, g.cursorY = mouseX, mouseY

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		g.markInteracted()
	}

	if g.updateButton(&g.themeButton) {
		g.toggleTheme()
	}
	if g.updateButton(&g.termButton) {
		g.term.Open()
	}
	if g.updateButton(&g.musicButton) {
		g.toggleMusic()
	}

	if g.term.IsOpen() {
		if err := g.updateTerminal(); err != nil {
			return err
		}
	} else {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyBackquote):
			g.term.Open()
		case inpututil.IsKeyJustPressed(ebiten.KeyT):
			g.toggleTheme()
		case inpututil.IsKeyJustPressed(ebiten.KeyM):
			g.toggleMusic()
		case inpututil.IsKeyJustPressed(ebiten.KeyF):
			if g.playing() {
				g.stopPrank("You are forgiven... for now.")
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
			return ebiten.Termination
		}
		_, dy := ebiten.Wheel()
		g.scrollBy(-dy * config.ScrollSpeed)
	}

	if !g.contactDue.IsZero() && !now.Before(g.contactDue) {
		g.contactDue = time.Time{}
		g.startContact()
	}

	if _, sound := g.typer.Tick(now); sound && g.player != nil {
		g.player.Type()
	}

	g.sim.Advance()
	g.observeCards(now)
	return nil
}

func (g *Game) updateTerminal() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.term.Close()
		return nil
	}
	g.inputRunes = ebiten.AppendInputChars(g.inputRunes[:0])
	g.term.Type(g.inputRunes...)
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		g.term.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		switch g.term.Enter() {
		case terminal.ActionRickroll:
			g.toggleMusic()
		case terminal.ActionContact:
			g.contactDue = g.now().Add(contactDelay)
		}
	}
	return nil
}

// repeatingKeyPressed reports a press on the first frame and then at a key
// repeat rate while held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// updateButton tracks hover and press state and reports a completed click.
func (g *Game) updateButton(b *button) bool {
	b.hovered = b.rect.Contains(float64(g.cursorX), float64(g.cursorY))
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	clicked := false
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	if clicked && g.player != nil {
		g.player.Click()
	}
	return clicked
}

func (g *Game) markInteracted() {
	if g.player != nil {
		g.player.MarkInteracted()
	}
}

func (g *Game) toggleTheme() {
	mode := g.theme.Toggle()
	log.Printf("theme: %s", mode)
}

func (g *Game) playing() bool {
	return g.player != nil && g.player.Playing()
}

func (g *Game) toggleMusic() {
	if g.player == nil {
		return
	}
	if g.player.Playing() {
		g.stopPrank("Prank stopped.")
		return
	}
	if g.musicPath == "" {
		path, err := audio.ChooseTrack()
		if err != nil {
			log.Printf("choose track: %v", err)
			g.notices.Show("Audio Error: Check file name!", notify.Failure)
			return
		}
		if path == "" {
			return
		}
		g.musicPath = path
	}
	if err := g.player.PlayMusic(g.musicPath); err != nil {
		log.Printf("play music: %v", err)
		if errors.Is(err, audio.ErrUnsupportedFormat) {
			g.musicPath = ""
		}
		g.notices.Show("Audio Error: Check file name!", notify.Failure)
	}
}

func (g *Game) stopPrank(msg string) {
	g.player.StopMusic()
	g.notices.Show(msg, notify.Success)
}

func (g *Game) scrollBy(dy float64) {
	g.scroll += dy
	limit := g.contentHeight - float64(g.height)
	if g.scroll > limit {
		g.scroll = limit
	}
	if g.scroll < 0 {
		g.scroll = 0
	}
}

func (g *Game) observeCards(now time.Time) {
	for _, c := range g.cards {
		f := effects.VisibleFraction(c.rect.Y, c.rect.H, g.scroll, float64(g.height))
		g.reveal.Observe(c.id, f, now)
	}
}

// Layout reports the real window size and rebuilds size-dependent state when
// it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.width, g.height = w, h
	if g.layer != nil {
		g.layer.Deallocate()
	}
	g.layer = ebiten.NewImage(w, h)
	g.sim.Resize(float64(w), float64(h))

	g.cards, g.headings, g.contentHeight = layoutPage(g.sections, float64(w))
	g.scrollBy(0)

	g.themeButton.rect = effects.Rect{X: float64(w - config.ButtonWidth - config.ButtonMargin), Y: config.ButtonMargin, W: config.ButtonWidth, H: config.ButtonHeight}
	g.musicButton.rect = effects.Rect{X: float64(w - 2*config.ButtonWidth - 2*config.ButtonMargin), Y: config.ButtonMargin, W: config.ButtonWidth, H: config.ButtonHeight}
	g.termButton.rect = effects.Rect{X: config.ButtonMargin, Y: float64(h - config.ButtonHeight - config.ButtonMargin), W: config.ButtonWidth, H: config.ButtonHeight}
}
