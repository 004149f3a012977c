package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/neural-canvas/internal/effects"
	"github.com/iburimskiy/neural-canvas/internal/terminal"
	"github.com/iburimskiy/neural-canvas/internal/theme"
	"github.com/iburimskiy/neural-canvas/internal/typewriter"
)

const (
	glyphWidth  = 7
	lineHeight  = 16
	cardPadding = 16
	toastWidth  = 320
	toastHeight = 40
)

var face = basicfont.Face7x13

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.now()
	screen.Fill(g.theme.Background())

	g.sim.Render(layerSurface{img: g.layer})
	screen.DrawImage(g.layer, nil)

	g.drawHero(screen)
	g.drawCards(screen, now)
	g.drawScrollProgress(screen)
	g.drawButton(screen, &g.themeButton)
	g.drawButton(screen, &g.musicButton)
	g.drawButton(screen, &g.termButton)
	g.drawBanner(screen, now)
	g.drawToasts(screen, now)
	if g.term.IsOpen() {
		g.drawTerminal(screen, now)
	}
	if g.cfg.CustomCursor {
		g.drawCursor(screen)
	}
}

func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	text.Draw(dst, s, face, int(x), int(y), c)
}

func textWidth(s string) float64 {
	return float64(len([]rune(s)) * glyphWidth)
}

func (g *Game) accent() color.NRGBA {
	c, err := theme.ParseHex(g.theme.Accent())
	if err != nil {
		return theme.MustHex(theme.DarkAccent)
	}
	return c
}

func (g *Game) drawHero(screen *ebiten.Image) {
	top := 120 - g.scroll
	if top < -100 {
		return
	}
	fg := g.theme.Foreground()
	cx := float64(g.width) / 2

	greeting := "Hi, I'm " + g.cfg.Owner
	drawText(screen, greeting, cx-textWidth(greeting)/2, top, fg)

	line := "I build " + g.typer.Text()
	x := cx - textWidth("I build "+longest(typewriter.DefaultPhrases))/2
	drawText(screen, "I build ", x, top+2*lineHeight, fg)
	drawText(screen, g.typer.Text(), x+textWidth("I build "), top+2*lineHeight, g.accent())

	// Caret blinks twice a second.
	if (g.now().UnixMilli()/500)%2 == 0 {
		caretX := x + textWidth(line) + 2
		vector.DrawFilledRect(screen, float32(caretX), float32(top+2*lineHeight-11), 2, 13, g.accent(), false)
	}
}

func longest(ss []string) string {
	var out string
	for _, s := range ss {
		if len([]rune(s)) > len([]rune(out)) {
			out = s
		}
	}
	return out
}

func (g *Game) drawCards(screen *ebiten.Image, now time.Time) {
	fg := g.theme.Foreground()
	accent := g.accent()
	for _, h := range g.headings {
		y := h.y + 30 - g.scroll
		if y < -lineHeight || y > float64(g.height)+lineHeight {
			continue
		}
		drawText(screen, h.title, float64(g.width)/2-textWidth(h.title)/2, y, accent)
	}

	for _, c := range g.cards {
		alpha := g.reveal.Opacity(c.id, now)
		if alpha <= 0 {
			continue
		}
		r := c.rect
		r.Y += -g.scroll + (1-alpha)*20
		if r.Y+r.H < 0 || r.Y > float64(g.height) {
			continue
		}

		t := effects.Rest
		if !g.term.IsOpen() && r.Contains(float64(g.cursorX), float64(g.cursorY)) {
			t = effects.Tilt(r, float64(g.cursorX), float64(g.cursorY))
		}
		q := effects.Project(r, t, effects.Perspective)
		fillQuad(screen, q, fade(g.theme.Panel(), alpha))
		strokeQuad(screen, q, 1, fade(accent, alpha*0.6))

		tx, ty := q[0].X+cardPadding, q[0].Y+cardPadding+lineHeight
		drawText(screen, c.title, tx, ty, fade(fg, alpha))
		for i, b := range c.body {
			drawText(screen, b, tx, ty+float64(i+2)*lineHeight, fade(fg, alpha*0.7))
		}
	}
}

func (g *Game) drawScrollProgress(screen *ebiten.Image) {
	p := effects.ScrollProgress(g.scroll, g.contentHeight, float64(g.height))
	if p <= 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(p*float64(g.width)), 3, g.accent(), false)
}

func (g *Game) drawButton(screen *ebiten.Image, b *button) {
	// Button background
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 40, G: 50, B: 70, A: 220} // Normal
	}
	r := b.rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bgColor, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, g.accent(), false)

	label := b.label
	if b == &g.themeButton {
		label = "Light"
		if g.theme.Mode() == theme.Light {
			label = "Dark"
		}
	}
	if b == &g.musicButton && g.playing() {
		label = "Stop"
	}
	tx := r.X + (r.W-textWidth(label))/2
	ty := r.Y + (r.H+10)/2
	drawText(screen, label, tx, ty, color.White)
}

func (g *Game) drawBanner(screen *ebiten.Image, now time.Time) {
	if !g.playing() {
		return
	}
	level := g.player.Level()
	hue := float64(now.UnixMilli()%3600) / 10
	r, gr, b := hsvToRgb(hue, 0.8, 0.9)
	bannerColor := color.RGBA{R: r, G: gr, B: b, A: uint8(160 + 95*level)}

	h := float32(60)
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), h, color.RGBA{A: 220}, false)
	vector.DrawFilledRect(screen, 0, h-4, float32(float64(g.width)*level), 4, bannerColor, false)

	msg := "YOU'VE BEEN RICKROLLED! Press F to be forgiven."
	drawText(screen, msg, float64(g.width)/2-textWidth(msg)/2, 26, bannerColor)

	elapsed := formatDuration(g.player.Elapsed()) + " / " + formatDuration(g.player.Duration())
	drawText(screen, elapsed, float64(g.width)/2-textWidth(elapsed)/2, 46, color.White)
}

func (g *Game) drawToasts(screen *ebiten.Image, now time.Time) {
	toasts := g.notices.Active(now)
	x := float64(g.width - toastWidth - 20)
	y := float64(g.height - 80)
	for i := len(toasts) - 1; i >= 0; i-- {
		t := toasts[i]
		vector.DrawFilledRect(screen, float32(x), float32(y), toastWidth, toastHeight, fade(g.theme.Panel(), t.Alpha), false)
		vector.DrawFilledRect(screen, float32(x), float32(y), 4, toastHeight, fade(t.Kind.Color(), t.Alpha), false)
		drawText(screen, t.Message, x+14, y+toastHeight/2+4, fade(g.theme.Foreground(), t.Alpha))
		y -= toastHeight + 10
	}
}

func (g *Game) drawTerminal(screen *ebiten.Image, now time.Time) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: 150}, false)

	w := math.Min(680, float64(g.width)-40)
	h := math.Min(400, float64(g.height)-40)
	x := (float64(g.width) - w) / 2
	y := (float64(g.height) - h) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 12, G: 12, B: 16, A: 245}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 24, color.RGBA{R: 40, G: 40, B: 48, A: 255}, false)
	for i, c := range []color.RGBA{{R: 255, G: 95, B: 86, A: 255}, {R: 255, G: 189, B: 46, A: 255}, {R: 39, G: 201, B: 63, A: 255}} {
		vector.DrawFilledCircle(screen, float32(x+16+float64(i)*18), float32(y+12), 5, c, true)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, g.accent(), false)

	green := color.RGBA{R: 39, G: 201, B: 63, A: 255}
	purple := theme.MustHex(theme.Purple)
	red := theme.MustHex(theme.Red)
	plain := color.RGBA{R: 204, G: 204, B: 204, A: 255}

	rows := max(1, int((h-24-2*lineHeight)/lineHeight)-1)
	history := g.term.History()
	if len(history) > rows {
		history = history[len(history)-rows:]
	}
	ly := y + 24 + lineHeight + 4
	for _, l := range history {
		c := color.Color(plain)
		switch l.Kind {
		case terminal.Input:
			c = green
		case terminal.Error:
			c = red
		}
		drawText(screen, l.Text, x+12, ly, c)
		ly += lineHeight
	}

	prompt := g.term.Prompt() + " "
	drawText(screen, prompt, x+12, ly, purple)
	drawText(screen, g.term.Input(), x+12+textWidth(prompt), ly, plain)
	if (now.UnixMilli()/500)%2 == 0 {
		cx := x + 12 + textWidth(prompt+g.term.Input())
		vector.DrawFilledRect(screen, float32(cx), float32(ly-11), glyphWidth, 13, plain, false)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	x, y := float32(g.cursorX), float32(g.cursorY)
	accent := g.accent()
	vector.DrawFilledCircle(screen, x, y, 4, accent, true)
	vector.StrokeCircle(screen, x, y, 10, 1, fade(accent, 0.5), true)
}
