package cpu

// irqState tracks the maskable-interrupt line: level-sensitive, with a
// "committed" latch and the timestamp of first observation used for
// lead-time arithmetic.
type irqState struct {
	committed bool
	lineTs    uint32
}

// nmiState tracks the non-maskable-interrupt line: edge-triggered, with an
// edge-detector guard (lineHeld) separate from the dispatch commitment.
type nmiState struct {
	committed bool
	lineHeld  bool
	lineTs    uint32
}

// pollInterrupts samples both interrupt lines. It must run once per tick,
// before the in-flight record is touched (spec ordering: sample lines,
// check stun, advance/dispatch).
func (c *Cpu) pollInterrupts(now uint32) {
	c.pollIRQ(now)
	c.pollNMI(now)
}

// inLastCycleOfSEI reports whether the currently in-flight instruction is
// SEI and this tick is the one that will complete it -- the window during
// which I is still clear but is about to be set.
func (c *Cpu) inLastCycleOfSEI() bool {
	return c.inFlight.opcode >= 0 &&
		mnemonicTable[byte(c.inFlight.opcode)] == SEI &&
		c.inFlight.cyclesRemaining == 1
}

func (c *Cpu) pollIRQ(now uint32) {
	asserted := c.sys.IRQLine()
	iClear := !c.Regs.flag(FlagI)

	if asserted && iClear && !c.inLastCycleOfSEI() {
		if !c.irq.committed {
			c.irq.lineTs = now
		}
		c.irq.committed = true
		return
	}
	if !c.irq.committed {
		c.irq.lineTs = 0
	}
}

func (c *Cpu) pollNMI(now uint32) {
	asserted := c.sys.NMILine()
	if asserted {
		if !c.nmi.lineHeld {
			c.nmi.lineHeld = true
			c.nmi.lineTs = now
			c.nmi.committed = true
		}
		return
	}
	c.nmi.lineHeld = false
}

// irqPending implements the IRQ dispatch-readiness rule: committed, and
// either the CPU just finished an SEI (one cycle is enough), or I is clear
// and the full lead time has elapsed since assertion.
func (c *Cpu) irqPending(now uint32) bool {
	if !c.irq.committed {
		return false
	}
	if c.lastOpc == SEI && now-c.irq.lineTs >= 1 {
		return true
	}
	if !c.Regs.flag(FlagI) && now-c.irq.lineTs >= uint32(c.leadTime) {
		return true
	}
	return false
}

// nmiPending implements the NMI half of the dispatch-readiness rule: committed, and the lead time
// has elapsed since the edge was observed. NMI ignores the I flag.
func (c *Cpu) nmiPending(now uint32) bool {
	return c.nmi.committed && now-c.nmi.lineTs >= uint32(c.leadTime)
}

// consumeIRQ clears the maskable commitment; called when START_IRQ is
// dispatched. A committed interrupt cannot be retracted before this point.
func (c *Cpu) consumeIRQ() {
	c.irq.committed = false
	c.irq.lineTs = 0
}

// consumeNMI clears the non-maskable commitment; called when START_NMI is
// dispatched.
func (c *Cpu) consumeNMI() {
	c.nmi.committed = false
}
