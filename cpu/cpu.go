// Package cpu implements a cycle-accurate MOS 6510 instruction core: per
// opcode decode, addressing, and execution (including the undocumented
// opcodes), per-cycle scheduling, and maskable/non-maskable interrupt
// dispatch arbitrated against an external video chip's bus-stun signal.
package cpu

import (
	"log/slog"

	"sidcpu/bus"
)

// Cpu owns all 6510 state and is driven one system clock cycle at a time
// via Step. The external collaborators (memory, interrupt lines, stun
// signal) are injected at construction through bus.System, never touched
// directly.
type Cpu struct {
	Regs Registers

	sys      bus.System
	inFlight inFlight

	irq irqState
	nmi nmiState

	leadTime int
	lastOpc  Mnemonic

	// isRSID enables NMI handling in Step (NMI + IRQ) when true. When
	// false (simpler song formats), Step services IRQ only: it runs the
	// same path and discards NMI state every tick, so it is not a separate
	// or cheaper step function.
	isRSID bool

	tracer *slog.Logger
}

// New constructs a Cpu bound to the given collaborator. Reset must be
// called before the first Step.
func New(sys bus.System) *Cpu {
	return &Cpu{sys: sys}
}

// Reset zeroes registers, clears the in-flight record and interrupt
// state, and selects the step variant.
func (c *Cpu) Reset(isRSID bool) {
	c.Regs = Registers{}
	c.inFlight = inFlight{opcode: -1}
	c.irq = irqState{}
	c.nmi = nmiState{}
	c.leadTime = 2
	c.lastOpc = NOP
	c.isRSID = isRSID
}

// SetProgramCounter initializes A and PC and pushes two zero sentinel
// bytes so that an eventual RTS returns to address 1, the "init-complete"
// sentinel IsValidPCSimple detects.
func (c *Cpu) SetProgramCounter(pc uint16, a byte) {
	c.Regs.A = a
	c.Regs.PC = pc
	c.Regs.push(c.sys, 0)
	c.Regs.push(c.sys, 0)
}

// SetProgramCounterSimple sets PC and clears I, for simple-format
// playback that drives the CPU without a reset-vector dance.
func (c *Cpu) SetProgramCounterSimple(pc uint16) {
	c.Regs.PC = pc
	c.Regs.setFlag(FlagI, false)
}

// IRQFlagSimple forces the I flag on or off, for simple-format playback
// that manages interrupt masking itself.
func (c *Cpu) IRQFlagSimple(on bool) {
	c.Regs.setFlag(FlagI, on)
}

// IsValidPCSimple reports whether PC is past the init-complete sentinel
// address pushed by SetProgramCounter.
func (c *Cpu) IsValidPCSimple() bool {
	return c.Regs.PC > 1
}

// Step advances the model by exactly one system clock cycle: sample
// interrupt lines, check stun, then either advance the in-flight
// instruction or dispatch/prefetch a new one.
func (c *Cpu) Step() {
	now := c.sys.Cycles()

	c.pollInterrupts(now)
	if !c.isRSID {
		// the reduced (PSID) step function never services NMI.
		c.nmi = nmiState{}
	}

	if !c.tickAllowed() {
		return
	}

	if c.inFlight.opcode < 0 {
		c.dispatchOrPrefetch(now)
		return
	}

	c.inFlight.cyclesRemaining--
	if c.inFlight.cyclesRemaining == 0 {
		op := byte(c.inFlight.opcode)
		c.complete()
		c.traceCompletion(op)
		c.inFlight.opcode = -1
	}
}

// dispatchOrPrefetch loads the in-flight record for an idle tick: a
// pending NMI beats a pending IRQ beats a freshly prefetched real opcode.
func (c *Cpu) dispatchOrPrefetch(now uint32) {
	switch {
	case c.isRSID && c.nmiPending(now):
		c.consumeNMI()
		c.inFlight = inFlight{
			opcode:          int16(StartNMIOp),
			cyclesTotal:     baseCycleTable[StartNMIOp],
			cyclesRemaining: baseCycleTable[StartNMIOp] - 1,
		}
	case c.irqPending(now):
		c.consumeIRQ()
		c.inFlight = inFlight{
			opcode:          int16(StartIRQOp),
			cyclesTotal:     baseCycleTable[StartIRQOp],
			cyclesRemaining: baseCycleTable[StartIRQOp] - 1,
		}
	default:
		pf := c.prefetch()
		c.leadTime = pf.leadTime
		c.inFlight = inFlight{
			opcode:          int16(pf.opcode),
			cyclesTotal:     pf.totalCycles,
			cyclesRemaining: pf.totalCycles - 1,
		}
	}
}
