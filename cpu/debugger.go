package cpu

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"sidcpu/bus"
)

var (
	debugBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	debugTitle = lipgloss.NewStyle().Bold(true)
)

// debugModel is a bubbletea model wrapping a running Cpu, for interactive
// single-step inspection.
type debugModel struct {
	cpu  *Cpu
	ram  *bus.RAM
	page uint16
}

func (m debugModel) Init() tea.Cmd { return nil }

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n", " ":
			m.cpu.Step()
			m.ram.Tick()
		case "right":
			m.page++
		case "left":
			m.page--
		}
	}
	return m, nil
}

func (m debugModel) View() string {
	top := lipgloss.JoinHorizontal(lipgloss.Top, m.status(), m.inFlightStatus())
	return lipgloss.JoinVertical(lipgloss.Left, top, m.pageTable())
}

func (m debugModel) status() string {
	r := m.cpu.Regs
	body := fmt.Sprintf(
		"PC: $%04X\nA:  $%02X\nX:  $%02X\nY:  $%02X\nS:  $%02X\nP:  %s",
		r.PC, r.A, r.X, r.Y, r.S, flagString(r.P),
	)
	return debugBorder.Render(debugTitle.Render("registers") + "\n" + body)
}

func (m debugModel) inFlightStatus() string {
	f := m.cpu.inFlight
	var body string
	if f.opcode < 0 {
		body = "idle"
	} else {
		op := byte(f.opcode)
		body = fmt.Sprintf(
			"opcode: $%02X (%s)\nmode:   %v\ncycles: %d/%d",
			op, mnemonicName(mnemonicTable[op]), addressingModeTable[op],
			f.cyclesTotal-f.cyclesRemaining, f.cyclesTotal,
		)
	}
	return debugBorder.Render(debugTitle.Render("in flight") + "\n" + body + "\n\n" + spew.Sdump(m.cpu.irq) + spew.Sdump(m.cpu.nmi))
}

func (m debugModel) pageTable() string {
	start := m.page * 0x100
	var rows string
	for row := uint16(0); row < 16; row++ {
		rows += fmt.Sprintf("$%04X: ", start+row*16)
		for col := uint16(0); col < 16; col++ {
			rows += fmt.Sprintf("%02X ", m.ram.Mem[start+row*16+col])
		}
		rows += "\n"
	}
	return debugBorder.Render(debugTitle.Render(fmt.Sprintf("page $%02X00 (←/→ to page, n to step, q to quit)", byte(m.page))) + "\n" + rows)
}

func flagString(p byte) string {
	letters := "NV-BDIZC"
	masks := []byte{FlagN, FlagV, FlagB1, FlagB0, FlagD, FlagI, FlagZ, FlagC}
	out := make([]byte, 8)
	for i, mask := range masks {
		if p&mask != 0 {
			out[i] = letters[i]
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// Debug loads program into ram at offset, wires a fresh Cpu to it, and
// launches the interactive single-step debugger. isRSID selects NMI-driven
// (RSID) vs IRQ-driven (PSID) dispatch, same as Reset.
func Debug(program []byte, offset uint16, isRSID bool) error {
	ram := bus.NewRAM()
	ram.Load(program, offset)

	c := New(ram)
	c.Reset(isRSID)
	c.Regs.PC = offset

	m := debugModel{cpu: c, ram: ram, page: offset / 0x100}
	_, err := tea.NewProgram(m).Run()
	return err
}
