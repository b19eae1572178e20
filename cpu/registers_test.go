package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sidcpu/bus"
)

func TestSetFlag(t *testing.T) {
	var r Registers
	r.setFlag(FlagC, true)
	assert.True(t, r.flag(FlagC))
	r.setFlag(FlagC, false)
	assert.False(t, r.flag(FlagC))
}

func TestSetNZ(t *testing.T) {
	var r Registers
	r.setNZ(0)
	assert.True(t, r.flag(FlagZ))
	assert.False(t, r.flag(FlagN))

	r.setNZ(0x80)
	assert.False(t, r.flag(FlagZ))
	assert.True(t, r.flag(FlagN))
}

// TestPushPopRoundtrip checks the push/pop roundtrip law: for any v,
// push(v); pop() == v, and the stack pointer is unchanged afterward.
func TestPushPopRoundtrip(t *testing.T) {
	ram := bus.NewRAM()
	var r Registers
	r.S = 0xFD

	before := r.S
	r.push(ram, 0x42)
	got := r.pop(ram)

	assert.Equal(t, byte(0x42), got)
	assert.Equal(t, before, r.S)
}

func TestPushPopWraps(t *testing.T) {
	ram := bus.NewRAM()
	var r Registers
	r.S = 0x00
	r.push(ram, 0xAA)
	assert.Equal(t, byte(0xFF), r.S)
	assert.Equal(t, byte(0xAA), ram.Mem[0x0100])
}

func TestPushPopWord(t *testing.T) {
	ram := bus.NewRAM()
	var r Registers
	r.S = 0xFF
	r.pushWord(ram, 0x1234)
	assert.Equal(t, uint16(0x1234), r.popWord(ram))
}
