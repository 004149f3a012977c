// Package typewriter cycles hero phrases by typing and deleting one rune at a
// time.
package typewriter

import (
	"math/rand"
	"time"
)

const (
	TypeDelay   = 150 * time.Millisecond
	DeleteDelay = 100 * time.Millisecond
	HoldDelay   = 2000 * time.Millisecond
	NextDelay   = 500 * time.Millisecond

	// typeSoundChance is the probability that a typed rune plays a sound.
	typeSoundChance = 0.4
)

// DefaultPhrases are shown when none are configured.
var DefaultPhrases = []string{"AI Solutions.", "Secure Web Apps.", "Automation Systems."}

// Typewriter holds the typing state.
type Typewriter struct {
	phrases  [][]rune
	phrase   int
	char     int
	deleting bool
	text     string
	due      time.Time
	rng      *rand.Rand
}

// New returns a typewriter over phrases. Empty input uses DefaultPhrases.
func New(phrases []string, rng *rand.Rand) *Typewriter {
	if len(phrases) == 0 {
		phrases = DefaultPhrases
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	t := &Typewriter{rng: rng}
	for _, p := range phrases {
		t.phrases = append(t.phrases, []rune(p))
	}
	return t
}

// Text is the currently visible part of the phrase.
func (t *Typewriter) Text() string { return t.text }

// Deleting reports whether the current phrase is being erased.
func (t *Typewriter) Deleting() bool { return t.deleting }

// Step performs one typing or deleting step. It returns the delay until the
// next step and whether a rune was typed.
func (t *Typewriter) Step() (delay time.Duration, typed bool) {
	current := t.phrases[t.phrase]

	if t.deleting {
		if t.char > 0 {
			t.char--
		}
		t.text = string(current[:t.char])
		delay = DeleteDelay
	} else {
		if t.char < len(current) {
			t.char++
		}
		t.text = string(current[:t.char])
		typed = true
		delay = TypeDelay
	}

	switch {
	case !t.deleting && t.char == len(current):
		t.deleting = true
		delay = HoldDelay
	case t.deleting && t.char == 0:
		t.deleting = false
		t.phrase = (t.phrase + 1) % len(t.phrases)
		delay = NextDelay
	}
	return delay, typed
}

// Tick runs at most one due step. It reports whether the text changed and
// whether a typing sound should play.
func (t *Typewriter) Tick(now time.Time) (changed, sound bool) {
	if now.Before(t.due) {
		return false, false
	}
	delay, typed := t.Step()
	t.due = now.Add(delay)
	return true, typed && t.rng.Float64() < typeSoundChance
}
