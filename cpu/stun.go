package cpu

import "sidcpu/bus"

// tickAllowed implements the CPU-stun arbitration rules. It is consulted before
// any other work happens on a tick.
func (c *Cpu) tickAllowed() bool {
	switch c.sys.StunMode() {
	case bus.NotStunned:
		return true
	case bus.FullyStunned:
		return false
	case bus.WriteAllowed:
		if c.inFlight.opcode < 0 {
			// no in-flight op: treated as fully stunned.
			return false
		}
		writeStart := busWriteStartTable[byte(c.inFlight.opcode)]
		if writeStart == 0 {
			return false
		}
		position := c.inFlight.cyclesTotal - c.inFlight.cyclesRemaining + 1
		return position >= writeStart
	default:
		return true
	}
}
