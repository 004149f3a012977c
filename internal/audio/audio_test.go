package audio

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

type fakeOutput struct {
	mu     sync.Mutex
	inits  int
	played []beep.Streamer
}

func (f *fakeOutput) Init(beep.SampleRate, int) error {
	f.inits++
	return nil
}

func (f *fakeOutput) Play(s ...beep.Streamer) { f.played = append(f.played, s...) }
func (f *fakeOutput) Lock()                   { f.mu.Lock() }
func (f *fakeOutput) Unlock()                 { f.mu.Unlock() }

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream did not end")
	return total
}

func writeWav(t *testing.T, rate beep.SampleRate, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create wav: %v", err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, Blip(rate, 440, d), format); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	return path
}

func TestBlipLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	if n := drain(t, Blip(rate, 100, 50*time.Millisecond)); n != 50 {
		t.Fatalf("expected 50 samples, got %d", n)
	}
}

func TestLevelTapSnapshotOrder(t *testing.T) {
	i := 0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			samples[j] = [2]float64{float64(i), float64(i)}
			i++
		}
		return len(samples), true
	})
	tap := newLevelTap(src, 4)
	buf := make([][2]float64, 6)
	tap.Stream(buf)

	got := tap.snapshot(3)
	want := []float64{3, 4, 5}
	for k := range want {
		if got[k][0] != want[k] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if n := len(tap.snapshot(10)); n != 4 {
		t.Fatalf("expected snapshot capped at ring size, got %d", n)
	}
}

func TestLevelTapSilenceIsZero(t *testing.T) {
	tap := newLevelTap(beep.Silence(-1), 16)
	if l := tap.level(16); l != 0 {
		t.Fatalf("expected silent level 0, got %v", l)
	}
}

func TestSoundsWaitForInteraction(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(out, 8000)
	p.Click()
	p.Type()
	if len(out.played) != 0 || out.inits != 0 {
		t.Fatalf("expected nothing before interaction, got %d plays %d inits", len(out.played), out.inits)
	}
	p.MarkInteracted()
	p.Click()
	p.Type()
	if len(out.played) != 2 || out.inits != 1 {
		t.Fatalf("expected 2 plays and 1 init, got %d plays %d inits", len(out.played), out.inits)
	}
	if n := drain(t, out.played[0]); n == 0 {
		t.Fatal("expected click samples")
	}
}

func TestDecodeRejectsUnknownExtension(t *testing.T) {
	_, _, _, err := Decode(filepath.Join(t.TempDir(), "song.ogg"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestPlayMusicRequiresTrack(t *testing.T) {
	p := NewPlayer(&fakeOutput{}, 44100)
	if err := p.PlayMusic(""); !errors.Is(err, ErrNoTrack) {
		t.Fatalf("expected ErrNoTrack, got %v", err)
	}
}

func TestPlayMusicRunsToEnd(t *testing.T) {
	path := writeWav(t, 44100, 100*time.Millisecond)
	out := &fakeOutput{}
	p := NewPlayer(out, 44100)

	if err := p.PlayMusic(path); err != nil {
		t.Fatalf("play: %v", err)
	}
	if !p.Playing() {
		t.Fatal("expected playing")
	}
	if d := p.Duration(); d < 90*time.Millisecond || d > 110*time.Millisecond {
		t.Fatalf("expected ~100ms duration, got %v", d)
	}

	s := out.played[0]
	buf := make([][2]float64, 1024)
	s.Stream(buf)
	if p.Level() == 0 {
		t.Fatal("expected a level while playing")
	}
	if p.Elapsed() == 0 {
		t.Fatal("expected elapsed time to advance")
	}
	drain(t, s)
	if p.Playing() {
		t.Fatal("expected track finished")
	}
}

func TestPlayMusicResamples(t *testing.T) {
	path := writeWav(t, 22050, 100*time.Millisecond)
	out := &fakeOutput{}
	p := NewPlayer(out, 44100)
	if err := p.PlayMusic(path); err != nil {
		t.Fatalf("play: %v", err)
	}
	n := drain(t, out.played[0])
	if n < 4000 || n > 4600 {
		t.Fatalf("expected ~4410 resampled samples, got %d", n)
	}
}

func TestToggleMusicStops(t *testing.T) {
	path := writeWav(t, 44100, time.Second)
	out := &fakeOutput{}
	p := NewPlayer(out, 44100)

	playing, err := p.ToggleMusic(path)
	if err != nil || !playing {
		t.Fatalf("expected playing, got %v %v", playing, err)
	}
	playing, err = p.ToggleMusic(path)
	if err != nil || playing {
		t.Fatalf("expected stopped, got %v %v", playing, err)
	}
	if p.Level() != 0 || p.Elapsed() != 0 {
		t.Fatal("expected no level or position after stop")
	}
	// The cut stream ends on its next pull.
	if n := drain(t, out.played[0]); n != 0 {
		t.Fatalf("expected cut stream to be empty, got %d samples", n)
	}
}

func TestLoadSoundsUsesFiles(t *testing.T) {
	path := writeWav(t, 8000, 20*time.Millisecond)
	out := &fakeOutput{}
	p := NewPlayer(out, 8000)
	if err := p.LoadSounds(path, ""); err != nil {
		t.Fatalf("load: %v", err)
	}
	p.MarkInteracted()
	p.Click()
	if n := drain(t, out.played[0]); n != 160 {
		t.Fatalf("expected 160 buffered samples, got %d", n)
	}
	if err := p.LoadSounds("", "missing.mp3"); err == nil {
		t.Fatal("expected missing type sound to fail")
	}
}
