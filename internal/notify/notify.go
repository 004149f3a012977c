// Package notify shows short-lived toast notifications.
package notify

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/neural-canvas/internal/theme"
)

const (
	Lifetime = 3 * time.Second
	FadeOut  = 500 * time.Millisecond
)

// Kind selects the toast accent.
type Kind int

const (
	Info Kind = iota
	Success
	Failure
)

// Color is the border color for k.
func (k Kind) Color() color.NRGBA {
	switch k {
	case Success:
		return theme.MustHex(theme.DarkAccent)
	case Failure:
		return theme.MustHex(theme.Red)
	}
	return theme.MustHex(theme.Purple)
}

// Toast is one visible notification.
type Toast struct {
	Message string
	Kind    Kind
	Created time.Time
	// Alpha is filled in by Active.
	Alpha float64
}

// Center queues toasts. It is safe for concurrent use.
type Center struct {
	mu     sync.Mutex
	toasts []Toast
	now    func() time.Time

	// OnShow runs after every Show, outside the lock.
	OnShow func(Kind)
	// Desktop mirrors toasts as system notifications.
	Desktop bool
}

func NewCenter() *Center {
	return &Center{now: time.Now}
}

// Show queues msg.
func (c *Center) Show(msg string, k Kind) {
	c.mu.Lock()
	c.toasts = append(c.toasts, Toast{Message: msg, Kind: k, Created: c.now()})
	c.mu.Unlock()

	if c.OnShow != nil {
		c.OnShow(k)
	}
	if c.Desktop {
		go func() {
			if err := zenity.Notify(msg, zenity.Title("Neural Canvas"), icon(k)); err != nil {
				log.Printf("desktop notification: %v", err)
			}
		}()
	}
}

// Active drops expired toasts and returns the rest with their fade alpha.
func (c *Center) Active(now time.Time) []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.toasts[:0]
	var out []Toast
	for _, t := range c.toasts {
		age := now.Sub(t.Created)
		if age >= Lifetime+FadeOut {
			continue
		}
		kept = append(kept, t)
		t.Alpha = 1
		if age > Lifetime {
			t.Alpha = 1 - float64(age-Lifetime)/float64(FadeOut)
		}
		out = append(out, t)
	}
	c.toasts = kept
	return out
}

func icon(k Kind) zenity.Option {
	if k == Failure {
		return zenity.ErrorIcon
	}
	return zenity.InfoIcon
}
