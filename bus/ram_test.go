package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM()
	r.WriteMem(0x2000, 0x42)
	assert.Equal(t, byte(0x42), r.ReadMem(0x2000))
	assert.Equal(t, byte(0x42), r.ReadRAMRaw(0x2000))
}

func TestRAMLoad(t *testing.T) {
	r := NewRAM()
	r.Load([]byte{0xa9, 0x01, 0x00}, 0x8000)
	assert.Equal(t, byte(0xa9), r.Mem[0x8000])
	assert.Equal(t, byte(0x01), r.Mem[0x8001])
	assert.Equal(t, byte(0x00), r.Mem[0x8002])
}

func TestRAMLinesAndStun(t *testing.T) {
	r := NewRAM()
	assert.False(t, r.IRQLine())
	assert.False(t, r.NMILine())
	assert.Equal(t, NotStunned, r.StunMode())

	r.IRQ = true
	r.Stun = WriteAllowed
	assert.True(t, r.IRQLine())
	assert.Equal(t, WriteAllowed, r.StunMode())

	r.Tick()
	r.Tick()
	assert.Equal(t, uint32(2), r.Cycles())

	r.SetNMIMarker(true)
	assert.True(t, r.NMIMark)
}
