package main

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brotheringbullshit/duonessy/duovm"
)

// terminalModel is the reference Display/InputSource implementation for
// DuoVM's core (spec.md §1 scopes the real terminal out of the core; this
// is the collaborator the CLI wires in). The CPU driver runs on its own
// goroutine and blocks on buttons chan whenever it hits the read-button
// opcode (spec.md §5: "purely blocking; no timer"); bubbletea drives the
// visible grid from the other side of a mutex.
type terminalModel struct {
	mu    sync.Mutex
	cells [duovm.ScreenHeight][duovm.ScreenWidth]byte

	buttons chan duovm.Button
	redraw  chan struct{}

	program *tea.Program
}

type redrawMsg struct{}

func newTerminalModel(mem *duovm.Memory, burstSize int) *terminalModel {
	m := &terminalModel{
		buttons: make(chan duovm.Button),
		redraw:  make(chan struct{}, 1),
	}
	for y := range m.cells {
		for x := range m.cells[y] {
			m.cells[y][x] = ' '
		}
	}

	cpu := duovm.NewCPU(mem, m, m)
	driver := duovm.NewDriver(cpu)
	if burstSize > 0 {
		driver.BurstSize = burstSize
	}
	go driver.RunForever()
	go m.pumpRedraws()

	return m
}

// pumpRedraws forwards redraw notifications from the CPU goroutine into
// bubbletea messages once m.program has been assigned.
func (m *terminalModel) pumpRedraws() {
	for range m.redraw {
		if m.program != nil {
			m.program.Send(redrawMsg{})
		}
	}
}

// Clear implements duovm.Display.
func (m *terminalModel) Clear() {
	m.mu.Lock()
	for y := range m.cells {
		for x := range m.cells[y] {
			m.cells[y][x] = ' '
		}
	}
	m.mu.Unlock()
	m.notify()
}

// PutChar implements duovm.Display.
func (m *terminalModel) PutChar(x, y int, ch byte) {
	m.mu.Lock()
	if y >= 0 && y < duovm.ScreenHeight && x >= 0 && x < duovm.ScreenWidth {
		m.cells[y][x] = ch
	}
	m.mu.Unlock()
	m.notify()
}

func (m *terminalModel) notify() {
	select {
	case m.redraw <- struct{}{}:
	default:
	}
}

// ReadButton implements duovm.InputSource; it blocks until a key arrives
// from the bubbletea Update loop.
func (m *terminalModel) ReadButton() duovm.Button {
	return <-m.buttons
}

func (m *terminalModel) Init() tea.Cmd { return nil }

func (m *terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b, ok := keyToButton(msg); ok {
			go func() { m.buttons <- b }() // never block the UI loop
			return m, nil
		}
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case redrawMsg:
		return m, nil
	}
	return m, nil
}

func (m *terminalModel) View() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var b strings.Builder
	for y := range m.cells {
		b.Write(m.cells[y][:])
		b.WriteByte('\n')
	}
	return screenStyle.Render(b.String())
}

var screenStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// keyToButton implements spec.md §6's keyboard mapping: arrow keys,
// a/w/s/d, and Enter (-> RIGHT). Every other key is ignored.
func keyToButton(msg tea.KeyMsg) (duovm.Button, bool) {
	switch msg.String() {
	case "left", "a":
		return duovm.ButtonLeft, true
	case "up", "w":
		return duovm.ButtonUp, true
	case "down", "s":
		return duovm.ButtonDown, true
	case "right", "d", "enter":
		return duovm.ButtonRight, true
	default:
		return 0, false
	}
}
