// Package terminal implements the command-driven easter egg terminal.
package terminal

import (
	"fmt"
	"strings"
)

// Kind classifies a history line.
type Kind int

const (
	Input Kind = iota
	Output
	Error
)

// Line is one rendered history entry.
type Line struct {
	Kind Kind
	Text string
}

// Action is a side effect the host performs after a command.
type Action int

const (
	ActionNone Action = iota
	// ActionRickroll toggles the music prank. The terminal closes itself.
	ActionRickroll
	// ActionContact opens the contact flow after a short delay.
	ActionContact
)

// Profile is the content the informational commands print.
type Profile struct {
	Owner    string
	Handle   string
	Whoami   string
	About    string
	Projects []string
	Skills   string
}

// DefaultProfile returns the stock portfolio content for owner and handle.
func DefaultProfile(owner, handle string) Profile {
	return Profile{
		Owner:  owner,
		Handle: handle,
		Whoami: "root_user_" + strings.ToLower(owner),
		About:  "AI Engineer & Web Developer. Currently studying at C.K. Pithawalla College. CGPA: 8.2.",
		Projects: []string{
			"SujalNotes Platform (Secure PDF Streaming)",
			"AI CCTV Surveillance (YOLOv8)",
			"CKPCET Chatbot (NLP/Flask)",
		},
		Skills: "Python, Flask, React, YOLOv8, OpenCV, SQL, MongoDB...",
	}
}

// Terminal holds the modal state, input buffer and history.
type Terminal struct {
	profile Profile
	open    bool
	input   []rune
	history []Line
}

func New(p Profile) *Terminal {
	return &Terminal{profile: p}
}

func (t *Terminal) Open()        { t.open = true }
func (t *Terminal) Close()       { t.open = false }
func (t *Terminal) IsOpen() bool { return t.open }

// Prompt is printed before echoed input.
func (t *Terminal) Prompt() string { return t.profile.Handle + ":~$" }

// Input returns the line being edited.
func (t *Terminal) Input() string { return string(t.input) }

// Type appends runes to the input line.
func (t *Terminal) Type(rs ...rune) {
	for _, r := range rs {
		if r < ' ' || r == 0x7f {
			continue
		}
		t.input = append(t.input, r)
	}
}

// Backspace removes the last input rune.
func (t *Terminal) Backspace() {
	if len(t.input) > 0 {
		t.input = t.input[:len(t.input)-1]
	}
}

// History returns a copy of the history lines.
func (t *Terminal) History() []Line {
	return append([]Line(nil), t.history...)
}

// Enter submits the current input line.
func (t *Terminal) Enter() Action {
	raw := string(t.input)
	t.input = t.input[:0]
	return t.Submit(raw)
}

// Submit echoes raw into the history and runs it.
func (t *Terminal) Submit(raw string) Action {
	t.history = append(t.history, Line{Kind: Input, Text: t.Prompt() + " " + raw})

	command := strings.ToLower(strings.TrimSpace(raw))
	switch command {
	case "help":
		t.print(Output,
			"Available Commands:",
			"  about    - Who is "+t.profile.Owner+"?",
			"  projects - List deployed modules",
			"  skills   - System capabilities",
			"  contact  - Initialize communication",
			"  rickroll - Do not run this...",
			"  clear    - Clear terminal",
		)
	case "about":
		t.print(Output, t.profile.About)
	case "whoami":
		t.print(Output, t.profile.Whoami)
	case "projects":
		for i, p := range t.profile.Projects {
			t.print(Output, fmt.Sprintf("%d. %s", i+1, p))
		}
	case "skills":
		t.print(Output, t.profile.Skills)
	case "rickroll":
		t.print(Output, "SYSTEM CRITICAL: EXECUTING PRANK SEQUENCE...")
		t.Close()
		return ActionRickroll
	case "contact":
		t.print(Output, "Opening mail client...")
		return ActionContact
	case "clear":
		t.history = nil
	default:
		t.print(Error, fmt.Sprintf("Command not found: %s. Type 'help' for list.", command))
	}
	return ActionNone
}

func (t *Terminal) print(k Kind, lines ...string) {
	for _, l := range lines {
		t.history = append(t.history, Line{Kind: k, Text: l})
	}
}
