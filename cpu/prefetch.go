package cpu

// prefetchResult is the pure, non-mutating output of prefetch: the next
// opcode together with its fully-adjusted cycle count and the lead time
// that will govern interrupt dispatch during it.
type prefetchResult struct {
	opcode      byte
	totalCycles int8
	leadTime    int
}

// prefetch reads operand bytes to probe page-crossing
// and branch targets but never advances PC or writes any register --
// complete() re-reads the same bytes when the instruction actually runs.
func (c *Cpu) prefetch() prefetchResult {
	pc := c.Regs.PC
	opcode := c.sys.ReadMem(pc)
	mnem := mnemonicTable[opcode]
	mode := addressingModeTable[opcode]

	total := baseCycleTable[opcode]
	leadTime := 2

	if pagePenaltyMnemonics[mnem] {
		if crossed, ok := c.probePageCrossing(pc, mode); ok && crossed {
			total++
		}
	}

	if test, ok := conditionalBranches[mnem]; ok && test(c.Regs.P) {
		disp := int8(c.sys.ReadMem(pc + 1))
		nextPC := pc + 2
		target := uint16(int32(nextPC) + int32(disp))
		if target&0xFF00 == nextPC&0xFF00 {
			total++
			leadTime++
		} else {
			total += 2
		}
	}

	return prefetchResult{opcode: opcode, totalCycles: total, leadTime: leadTime}
}

// probePageCrossing computes the effective address for the three
// addressing modes subject to the page-penalty (absolute-X, absolute-Y,
// indirect-indexed-Y) and reports whether adding the index crossed a page.
// The bool result is false (with ok=false) for any other mode.
func (c *Cpu) probePageCrossing(pc uint16, mode AddressingMode) (crossed bool, ok bool) {
	var base uint16
	var index byte

	switch mode {
	case AbsoluteX:
		base = c.readWordOperand(pc + 1)
		index = c.Regs.X
	case AbsoluteY:
		base = c.readWordOperand(pc + 1)
		index = c.Regs.Y
	case IndirectIndexedY:
		zp := c.sys.ReadMem(pc + 1)
		base = c.readZeroPagePointer(zp)
		index = c.Regs.Y
	default:
		return false, false
	}

	eff := base + uint16(index)
	return (base & 0xFF00) != (eff & 0xFF00), true
}

// readWordOperand reads a little-endian 16-bit operand at addr, addr+1.
func (c *Cpu) readWordOperand(addr uint16) uint16 {
	lo := c.sys.ReadMem(addr)
	hi := c.sys.ReadMem(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// readZeroPagePointer reads a little-endian pointer stored at zero-page
// address zp, zp+1, wrapping within the zero page as real hardware does.
func (c *Cpu) readZeroPagePointer(zp byte) uint16 {
	lo := c.sys.ReadMem(uint16(zp))
	hi := c.sys.ReadMem(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}
