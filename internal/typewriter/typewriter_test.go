package typewriter

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestStepTypesHoldsAndDeletes(t *testing.T) {
	tw := New([]string{"ab", "c"}, rand.New(rand.NewSource(1)))

	steps := []struct {
		text  string
		delay time.Duration
		typed bool
	}{
		{"a", TypeDelay, true},
		{"ab", HoldDelay, true},
		{"a", DeleteDelay, false},
		{"", NextDelay, false},
		{"c", HoldDelay, true},
		{"", NextDelay, false},
		{"a", TypeDelay, true},
	}
	for i, want := range steps {
		delay, typed := tw.Step()
		if tw.Text() != want.text || delay != want.delay || typed != want.typed {
			t.Fatalf("step %d: expected (%q, %v, %v), got (%q, %v, %v)",
				i, want.text, want.delay, want.typed, tw.Text(), delay, typed)
		}
	}
}

func TestDefaultPhrases(t *testing.T) {
	tw := New(nil, nil)
	for i := 0; i < len("AI Solutions."); i++ {
		tw.Step()
	}
	if tw.Text() != "AI Solutions." {
		t.Fatalf("expected first default phrase, got %q", tw.Text())
	}
	if !tw.Deleting() {
		t.Fatal("expected deleting after the phrase completes")
	}
}

func TestStepHandlesMultibyteRunes(t *testing.T) {
	tw := New([]string{"héllo"}, nil)
	tw.Step()
	tw.Step()
	if tw.Text() != "hé" {
		t.Fatalf("expected rune-wise typing, got %q", tw.Text())
	}
}

func TestTickWaitsForDelay(t *testing.T) {
	tw := New([]string{"xyz"}, rand.New(rand.NewSource(1)))
	now := time.Unix(0, 0)

	if changed, _ := tw.Tick(now); !changed {
		t.Fatal("expected first tick to step immediately")
	}
	if changed, _ := tw.Tick(now.Add(TypeDelay - time.Millisecond)); changed {
		t.Fatal("expected no step before the delay elapsed")
	}
	if changed, _ := tw.Tick(now.Add(TypeDelay)); !changed {
		t.Fatal("expected a step once the delay elapsed")
	}
	if tw.Text() != "xy" {
		t.Fatalf("expected %q, got %q", "xy", tw.Text())
	}
}

func TestTickSoundOnlyWhileTyping(t *testing.T) {
	phrase := strings.Repeat("a", 40)
	tw := New([]string{phrase}, rand.New(rand.NewSource(3)))
	now := time.Unix(0, 0)
	sounds := 0
	for i := 0; i < len(phrase); i++ {
		_, sound := tw.Tick(now)
		if sound {
			sounds++
		}
		now = now.Add(HoldDelay)
	}
	if sounds == 0 || sounds == len(phrase) {
		t.Fatalf("expected some but not all typed runes to sound, got %d", sounds)
	}
	for i := 0; i < len(phrase); i++ {
		if _, sound := tw.Tick(now); sound {
			t.Fatal("expected no sound while deleting")
		}
		now = now.Add(HoldDelay)
	}
}
