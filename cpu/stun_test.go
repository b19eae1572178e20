package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidcpu/bus"
)

func TestFullyStunnedBlocksEverything(t *testing.T) {
	ram := bus.NewRAM()
	ram.Mem[0x1000] = 0xEA // NOP
	ram.Stun = bus.FullyStunned

	c := New(ram)
	c.Reset(true)
	c.Regs.PC = 0x1000

	c.Step()
	assert.EqualValues(t, -1, c.inFlight.opcode, "fully stunned must not dispatch")
}

func TestWriteAllowedBlocksBeforeWritePhase(t *testing.T) {
	ram := bus.NewRAM()
	ram.Mem[0x1000] = 0x20 // JSR (write starts at cycle 4, total 6)
	ram.Mem[0x1001] = 0x00
	ram.Mem[0x1002] = 0x20

	c := New(ram)
	c.Reset(true)
	c.Regs.PC = 0x1000
	ram.Stun = bus.NotStunned
	c.Step() // dispatch, not stunned yet
	ram.Tick()

	ram.Stun = bus.WriteAllowed
	before := c.inFlight.cyclesRemaining
	c.Step() // still before the write phase: should be suppressed
	assert.Equal(t, before, c.inFlight.cyclesRemaining)
}

func TestWriteAllowedPermitsWritePhase(t *testing.T) {
	ram := bus.NewRAM()
	ram.Mem[0x1000] = 0x85 // STA zp (writeStart=3, total 3)
	ram.Mem[0x1001] = 0x10

	c := New(ram)
	c.Reset(true)
	c.Regs.PC = 0x1000

	c.Step() // dispatch: position 2 of 3
	ram.Tick()
	c.Step() // position 3 of 3, the write-eligible cycle, not yet stunned
	ram.Tick()
	require := c.inFlight.cyclesRemaining
	assert.EqualValues(t, 1, require)

	ram.Stun = bus.WriteAllowed
	c.Step() // at writeStart: must proceed and complete
	assert.EqualValues(t, -1, c.inFlight.opcode)
}

// TestWriteAllowedPermitsInterruptDispatchWrites guards against the
// pseudo-opcodes' write-start cell being left at 0: a 0 there would make
// stun arbitration treat START_IRQ/START_NMI as never writing, suppressing
// an in-flight interrupt dispatch for its entire 7 cycles under a
// WriteAllowed stun.
func TestWriteAllowedPermitsInterruptDispatchWrites(t *testing.T) {
	ram := bus.NewRAM()
	ram.Mem[0x7000] = 0xEA // NOP
	ram.Mem[0xFFFE] = 0x00
	ram.Mem[0xFFFF] = 0x80
	ram.IRQ = true

	c := New(ram)
	c.Reset(true)
	c.Regs.PC = 0x7000

	stepN(c, ram, 2) // let the NOP at PC dispatch and complete
	c.Step()         // dispatch tick: IRQ recognized as pending
	require.EqualValues(t, StartIRQOp, c.inFlight.opcode)
	ram.Tick()

	// one cycle into the dispatch, position 2 of 7: before writeStart (3).
	ram.Stun = bus.WriteAllowed
	before := c.inFlight.cyclesRemaining
	c.Step()
	assert.Equal(t, before, c.inFlight.cyclesRemaining, "position 2 must still be suppressed")

	ram.Stun = bus.NotStunned
	c.Step() // advance to position 3, the write-eligible cycle
	ram.Tick()

	ram.Stun = bus.WriteAllowed
	before = c.inFlight.cyclesRemaining
	c.Step()
	assert.NotEqual(t, before, c.inFlight.cyclesRemaining, "position 3 must be allowed to proceed")
}

func TestNoInFlightIsTreatedAsStunned(t *testing.T) {
	ram := bus.NewRAM()
	ram.Stun = bus.WriteAllowed

	c := New(ram)
	c.Reset(true)

	assert.False(t, c.tickAllowed())
}
