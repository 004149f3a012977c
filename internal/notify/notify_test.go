package notify

import (
	"testing"
	"time"
)

func TestActiveExpiresAndFades(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewCenter()
	c.now = func() time.Time { return start }

	c.Show("Message sent successfully!", Success)
	c.Show("Something went wrong.", Failure)

	if got := c.Active(start.Add(time.Second)); len(got) != 2 || got[0].Alpha != 1 {
		t.Fatalf("expected two opaque toasts, got %+v", got)
	}
	got := c.Active(start.Add(Lifetime + FadeOut/2))
	if len(got) != 2 || got[0].Alpha < 0.49 || got[0].Alpha > 0.51 {
		t.Fatalf("expected half faded toasts, got %+v", got)
	}
	if got := c.Active(start.Add(Lifetime + FadeOut)); len(got) != 0 {
		t.Fatalf("expected toasts removed, got %+v", got)
	}
}

func TestShowRunsHook(t *testing.T) {
	c := NewCenter()
	var kinds []Kind
	c.OnShow = func(k Kind) { kinds = append(kinds, k) }
	c.Show("hi", Info)
	if len(kinds) != 1 || kinds[0] != Info {
		t.Fatalf("expected hook called with Info, got %v", kinds)
	}
}

func TestKindColors(t *testing.T) {
	if Success.Color() == Failure.Color() || Info.Color() == Failure.Color() {
		t.Fatal("expected distinct kind colors")
	}
}
