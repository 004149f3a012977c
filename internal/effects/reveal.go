package effects

import "time"

const (
	RevealThreshold = 0.2
	FadeDuration    = 600 * time.Millisecond
)

// VisibleFraction is the share of an element spanning [top, top+height) that
// lies inside the viewport [viewTop, viewTop+viewHeight).
func VisibleFraction(top, height, viewTop, viewHeight float64) float64 {
	if height <= 0 {
		return 0
	}
	lo := max(top, viewTop)
	hi := min(top+height, viewTop+viewHeight)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / height
}

// Revealer remembers which elements have scrolled into view. Once revealed
// an element stays revealed.
type Revealer struct {
	threshold float64
	shown     map[string]time.Time
}

func NewRevealer(threshold float64) *Revealer {
	if threshold <= 0 {
		threshold = RevealThreshold
	}
	return &Revealer{threshold: threshold, shown: make(map[string]time.Time)}
}

// Observe records the visible fraction of element id at now and reports
// whether it is revealed.
func (r *Revealer) Observe(id string, fraction float64, now time.Time) bool {
	if _, ok := r.shown[id]; ok {
		return true
	}
	if fraction < r.threshold {
		return false
	}
	r.shown[id] = now
	return true
}

// Opacity ramps from 0 to 1 over FadeDuration after id was revealed.
func (r *Revealer) Opacity(id string, now time.Time) float64 {
	at, ok := r.shown[id]
	if !ok {
		return 0
	}
	p := float64(now.Sub(at)) / float64(FadeDuration)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// ScrollProgress is how far through the scrollable range offset is, in [0, 1].
func ScrollProgress(offset, contentHeight, viewportHeight float64) float64 {
	total := contentHeight - viewportHeight
	if total <= 0 {
		return 0
	}
	p := offset / total
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
