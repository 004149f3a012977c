package game

import (
	"strconv"
	"strings"

	"github.com/iburimskiy/neural-canvas/internal/config"
	"github.com/iburimskiy/neural-canvas/internal/effects"
	"github.com/iburimskiy/neural-canvas/internal/terminal"
)

const (
	sectionHeader = 60.0
	pageBottom    = 80.0
)

type card struct {
	id    string
	title string
	body  []string
}

type section struct {
	title string
	cards []card
}

// placedCard is a card with its rectangle in page coordinates.
type placedCard struct {
	card
	rect effects.Rect
}

type heading struct {
	title string
	y     float64
}

// pageSections builds the page content from the terminal profile so both
// surfaces show the same data.
func pageSections(p terminal.Profile) []section {
	projects := section{title: "Projects"}
	for i, name := range p.Projects {
		title, detail := name, ""
		if open := strings.Index(name, " ("); open > 0 && strings.HasSuffix(name, ")") {
			title, detail = name[:open], name[open+2:len(name)-1]
		}
		projects.cards = append(projects.cards, card{
			id:    "project-" + strconv.Itoa(i),
			title: title,
			body:  []string{detail},
		})
	}

	skills := section{title: "Skills"}
	for i, s := range strings.Split(strings.TrimSuffix(p.Skills, "..."), ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills.cards = append(skills.cards, card{id: "skill-" + strconv.Itoa(i), title: s})
	}
	return []section{projects, skills}
}

// layoutPage places sections below the hero in a centered grid and returns
// the total content height.
func layoutPage(sections []section, width float64) ([]placedCard, []heading, float64) {
	cols := int((width - config.CardGap) / (config.CardWidth + config.CardGap))
	if cols < 1 {
		cols = 1
	}
	gridWidth := float64(cols)*config.CardWidth + float64(cols-1)*config.CardGap
	left := (width - gridWidth) / 2
	if left < 0 {
		left = 0
	}

	var (
		cards    []placedCard
		headings []heading
	)
	y := float64(config.HeroHeight)
	for _, s := range sections {
		headings = append(headings, heading{title: s.title, y: y})
		y += sectionHeader
		for i, c := range s.cards {
			col, row := i%cols, i/cols
			cards = append(cards, placedCard{card: c, rect: effects.Rect{
				X: left + float64(col)*(config.CardWidth+config.CardGap),
				Y: y + float64(row)*(config.CardHeight+config.CardGap),
				W: config.CardWidth,
				H: config.CardHeight,
			}})
		}
		rows := (len(s.cards) + cols - 1) / cols
		y += float64(rows) * (config.CardHeight + config.CardGap)
	}
	return cards, headings, y + pageBottom
}
