package bus

// RAM is a flat 64KB bus.System implementation, useful for tests, the
// interactive debugger, and the cmd/sidcpu-debug loader. It has no I/O
// mapping of its own: ReadMem/WriteMem and ReadRAMRaw/WriteRAMRaw both
// address the same backing array.
//
// IRQ, NMI, and stun are plain fields so tests can drive them directly;
// Cycle must be advanced by the caller in lock-step with Cpu.Step.
type RAM struct {
	Mem [64 * 1024]byte

	IRQ     bool
	NMI     bool
	Stun    StunMode
	Cycle   uint32
	NMIMark bool
}

func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) ReadMem(addr uint16) byte       { return r.Mem[addr] }
func (r *RAM) WriteMem(addr uint16, val byte) { r.Mem[addr] = val }

func (r *RAM) ReadRAMRaw(addr uint16) byte       { return r.Mem[addr] }
func (r *RAM) WriteRAMRaw(addr uint16, val byte) { r.Mem[addr] = val }

func (r *RAM) IRQLine() bool { return r.IRQ }
func (r *RAM) NMILine() bool { return r.NMI }

func (r *RAM) StunMode() StunMode { return r.Stun }

func (r *RAM) Cycles() uint32 { return r.Cycle }

func (r *RAM) SetNMIMarker(on bool) { r.NMIMark = on }

// Load copies program into Mem starting at addr.
func (r *RAM) Load(program []byte, addr uint16) {
	copy(r.Mem[int(addr):], program)
}

// Tick advances the cycle counter by one; the caller invokes it once per
// system clock cycle, alongside Cpu.Step.
func (r *RAM) Tick() {
	r.Cycle++
}
