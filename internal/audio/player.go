// Package audio plays the page's interface sounds and the music prank.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/neural-canvas/internal/config"
)

var (
	// ErrUnsupportedFormat is returned for files other than wav, mp3 and flac.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrNoTrack is returned when music is requested without a file.
	ErrNoTrack = errors.New("no music track selected")
)

const (
	resampleQuality = 4
	levelWindow     = 1024
)

// Output is where streams are mixed. The beep speaker implements it.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, n int) error { return speaker.Init(rate, n) }
func (speakerOutput) Play(s ...beep.Streamer)                { speaker.Play(s...) }
func (speakerOutput) Lock()                                  { speaker.Lock() }
func (speakerOutput) Unlock()                                { speaker.Unlock() }

// Speaker is the system audio output.
var Speaker Output = speakerOutput{}

type sound struct {
	buf    *beep.Buffer
	freq   float64
	length time.Duration
	volume float64
}

func (s *sound) streamer(rate beep.SampleRate) beep.Streamer {
	var src beep.Streamer
	if s.buf != nil {
		src = s.buf.Streamer(0, s.buf.Len())
	} else {
		src = Blip(rate, s.freq, s.length)
	}
	return &effects.Volume{Streamer: src, Base: 2, Volume: math.Log2(s.volume)}
}

type track struct {
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap
	once     sync.Once
}

func (t *track) close() {
	t.once.Do(func() {
		_ = t.streamer.Close()
		_ = t.file.Close()
	})
}

// Player owns the speaker, the interface sounds and the current music track.
type Player struct {
	out  Output
	rate beep.SampleRate

	mu         sync.Mutex
	ready      bool
	interacted bool
	click      *sound
	typing     *sound
	music      *track
}

// NewPlayer returns a player mixing at rate on out.
func NewPlayer(out Output, rate int) *Player {
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		out:    out,
		rate:   beep.SampleRate(rate),
		click:  &sound{freq: 1800, length: 30 * time.Millisecond, volume: config.ClickVolume},
		typing: &sound{freq: 2600, length: 12 * time.Millisecond, volume: config.TypeVolume},
	}
}

// LoadSounds replaces the synthesized click and typing sounds with files.
// Empty paths keep the synthesized sound.
func (p *Player) LoadSounds(clickPath, typePath string) error {
	load := func(path string, dst *sound) error {
		if path == "" {
			return nil
		}
		buf, err := p.loadBuffer(path)
		if err != nil {
			return err
		}
		p.mu.Lock()
		dst.buf = buf
		p.mu.Unlock()
		return nil
	}
	if err := load(clickPath, p.click); err != nil {
		return fmt.Errorf("load click sound: %w", err)
	}
	if err := load(typePath, p.typing); err != nil {
		return fmt.Errorf("load type sound: %w", err)
	}
	return nil
}

// MarkInteracted unlocks sound playback. Nothing plays before the first
// user interaction.
func (p *Player) MarkInteracted() {
	p.mu.Lock()
	p.interacted = true
	p.mu.Unlock()
}

// Click plays the click sound.
func (p *Player) Click() { p.playSound(p.click) }

// Type plays the faint typing sound.
func (p *Player) Type() { p.playSound(p.typing) }

func (p *Player) playSound(s *sound) {
	p.mu.Lock()
	if !p.interacted {
		p.mu.Unlock()
		return
	}
	if err := p.initLocked(); err != nil {
		p.mu.Unlock()
		return
	}
	st := s.streamer(p.rate)
	p.mu.Unlock()
	p.out.Play(st)
}

func (p *Player) initLocked() error {
	if p.ready {
		return nil
	}
	if err := p.out.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return nil
}

// PlayMusic stops any current track and starts path.
func (p *Player) PlayMusic(path string) error {
	if path == "" {
		return ErrNoTrack
	}
	p.StopMusic()

	f, streamer, format, err := Decode(path)
	if err != nil {
		return err
	}
	var src beep.Streamer = streamer
	if format.SampleRate != p.rate {
		src = beep.Resample(resampleQuality, format.SampleRate, p.rate, streamer)
	}
	t := &track{path: path, file: f, streamer: streamer, format: format}
	t.tap = newLevelTap(src, config.VisualRingSize)
	t.ctrl = &beep.Ctrl{Streamer: t.tap}

	p.mu.Lock()
	if err := p.initLocked(); err != nil {
		p.mu.Unlock()
		t.close()
		return err
	}
	p.music = t
	p.mu.Unlock()

	p.out.Play(beep.Seq(t.ctrl, beep.Callback(func() { p.finish(t) })))
	return nil
}

// finish runs on the speaker goroutine when t ends or is cut.
func (p *Player) finish(t *track) {
	p.mu.Lock()
	if p.music == t {
		p.music = nil
	}
	p.mu.Unlock()
	t.close()
}

// StopMusic cuts the current track, if any.
func (p *Player) StopMusic() {
	p.mu.Lock()
	t := p.music
	p.music = nil
	p.mu.Unlock()
	if t == nil {
		return
	}
	p.out.Lock()
	t.ctrl.Streamer = nil
	p.out.Unlock()
	t.close()
}

// ToggleMusic stops the track when playing, otherwise starts path.
func (p *Player) ToggleMusic(path string) (playing bool, err error) {
	if p.Playing() {
		p.StopMusic()
		return false, nil
	}
	if err := p.PlayMusic(path); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil
}

// Level is the recent loudness of the music in [0, 1].
func (p *Player) Level() float64 {
	p.mu.Lock()
	t := p.music
	p.mu.Unlock()
	if t == nil {
		return 0
	}
	return t.tap.level(levelWindow)
}

// Elapsed is the play position of the current track.
func (p *Player) Elapsed() time.Duration {
	p.mu.Lock()
	t := p.music
	p.mu.Unlock()
	if t == nil {
		return 0
	}
	p.out.Lock()
	pos := t.streamer.Position()
	p.out.Unlock()
	return t.format.SampleRate.D(pos)
}

// Duration is the length of the current track.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	t := p.music
	p.mu.Unlock()
	if t == nil {
		return 0
	}
	return t.format.SampleRate.D(t.streamer.Len())
}

// Decode opens path and picks a decoder by extension.
func Decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return f, streamer, format, nil
}

func (p *Player) loadBuffer(path string) (*beep.Buffer, error) {
	f, streamer, format, err := Decode(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != p.rate {
		src = beep.Resample(resampleQuality, format.SampleRate, p.rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	return buf, nil
}

// ChooseTrack asks for an audio file. A cancelled dialog returns "" and no
// error.
func ChooseTrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose the music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
