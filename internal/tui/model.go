// Package tui implements the interactive terminal view of the puzzle.
//
// The view is a thin presentation layer: it polls the engine's cubelet
// read-model on every tick and renders a flattened net; all puzzle logic
// stays in the engine.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twistylab/twisty"
	"github.com/twistylab/twisty/internal/session"
)

const tickInterval = 33 * time.Millisecond

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	busyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stickerStyles = map[twisty.Color]lipgloss.Style{
		twisty.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
		twisty.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")),
		twisty.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("232")),
		twisty.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
		twisty.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
		twisty.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
	}
)

// Messages
type tickMsg time.Time

// Model is the bubbletea model driving the interactive cube.
type Model struct {
	ctrl     *twisty.Controller
	recorder *session.Recorder

	shuffleLen   int
	wasShuffling bool
	lastMoves    []twisty.Move
	err          error
	quitting     bool
}

// NewModel creates the interactive model. recorder may be nil to run
// without journaling.
func NewModel(ctrl *twisty.Controller, recorder *session.Recorder, shuffleLen int) *Model {
	m := &Model{
		ctrl:       ctrl,
		recorder:   recorder,
		shuffleLen: shuffleLen,
	}
	ctrl.OnTurn(m.turnCommitted)
	return m
}

// turnCommitted journals committed moves and keeps the recent-move strip.
func (m *Model) turnCommitted(mv twisty.Move) {
	m.lastMoves = append(m.lastMoves, mv)
	if len(m.lastMoves) > 12 {
		m.lastMoves = m.lastMoves[len(m.lastMoves)-12:]
	}
	if m.recorder != nil {
		if err := m.recorder.RecordMove(mv); err != nil {
			m.err = err
		}
	}
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.ctrl.Tick(time.Time(msg))
		m.noteShuffleEnd()
		if m.quitting {
			return m, tea.Quit
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// noteShuffleEnd closes the journal session when a scramble finishes on
// its own trailing step.
func (m *Model) noteShuffleEnd() {
	shuffling := m.ctrl.IsShuffling()
	if m.wasShuffling && !shuffling && m.recorder != nil {
		if err := m.recorder.End(false); err != nil {
			m.err = err
		}
	}
	m.wasShuffling = shuffling
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "s":
		if !m.ctrl.IsShuffling() && !m.ctrl.IsAnimating() && m.recorder != nil {
			if _, err := m.recorder.Start(); err != nil {
				m.err = err
			}
		}
		m.ctrl.Shuffle(m.shuffleLen)
		m.wasShuffling = m.ctrl.IsShuffling()

	case "x":
		if m.ctrl.IsShuffling() && m.recorder != nil {
			if err := m.recorder.End(true); err != nil {
				m.err = err
			}
		}
		m.ctrl.Stop()
		m.wasShuffling = false

	case "0":
		m.ctrl.Reset()
		m.wasShuffling = false
		m.lastMoves = nil

	default:
		if face, clockwise, ok := keyToMove(key); ok {
			m.ctrl.RotateFace(face, clockwise)
		}
	}
	return m, nil
}

// keyToMove maps face keys to turns: lowercase clockwise, uppercase
// counter-clockwise.
func keyToMove(key string) (twisty.Face, bool, bool) {
	switch key {
	case "f":
		return twisty.FaceFront, true, true
	case "F":
		return twisty.FaceFront, false, true
	case "b":
		return twisty.FaceBack, true, true
	case "B":
		return twisty.FaceBack, false, true
	case "l":
		return twisty.FaceLeft, true, true
	case "L":
		return twisty.FaceLeft, false, true
	case "r":
		return twisty.FaceRight, true, true
	case "R":
		return twisty.FaceRight, false, true
	case "u":
		return twisty.FaceTop, true, true
	case "U":
		return twisty.FaceTop, false, true
	case "d":
		return twisty.FaceBottom, true, true
	case "D":
		return twisty.FaceBottom, false, true
	}
	return 0, false, false
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("twisty") + "\n\n")
	b.WriteString(m.renderNet())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("f/b/l/r/u/d turn  shift = counter-clockwise  s scramble  x stop  0 reset  q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderNet draws the flattened net from the cube read-model.
func (m *Model) renderNet() string {
	cube := m.ctrl.Cube()
	var b strings.Builder

	pad := strings.Repeat(" ", 9)
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(m.renderRow(cube, twisty.FaceTop, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, f := range []twisty.Face{twisty.FaceLeft, twisty.FaceFront, twisty.FaceRight, twisty.FaceBack} {
			b.WriteString(m.renderRow(cube, f, row))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(m.renderRow(cube, twisty.FaceBottom, row))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderRow(cube *twisty.Cube, f twisty.Face, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		c := cube.Sticker(f, row, col)
		if style, ok := stickerStyles[c]; ok {
			b.WriteString(style.Render(" " + c.String() + " "))
		} else {
			b.WriteString(" " + c.String() + " ")
		}
	}
	return b.String()
}

func (m *Model) renderStatus() string {
	var parts []string
	switch {
	case m.ctrl.IsShuffling():
		parts = append(parts, busyStyle.Render("scrambling"))
	case m.ctrl.IsAnimating():
		parts = append(parts, busyStyle.Render("turning"))
	default:
		parts = append(parts, statusStyle.Render("idle"))
	}
	if m.ctrl.Cube().IsSolved() {
		parts = append(parts, statusStyle.Render("solved"))
	}
	if len(m.lastMoves) > 0 {
		notations := make([]string, len(m.lastMoves))
		for i, mv := range m.lastMoves {
			notations[i] = mv.String()
		}
		parts = append(parts, moveStyle.Render(strings.Join(notations, " ")))
	}
	if m.err != nil {
		parts = append(parts, statusStyle.Render(fmt.Sprintf("journal error: %v", m.err)))
	}
	return strings.Join(parts, "  ")
}

// Run starts the interactive program and blocks until it exits.
func Run(ctrl *twisty.Controller, recorder *session.Recorder, shuffleLen int) error {
	p := tea.NewProgram(NewModel(ctrl, recorder, shuffleLen))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive view: %w", err)
	}
	return nil
}
