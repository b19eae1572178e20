package cpu

// Mnemonic identifies one of the 6510's instruction identities, including
// the illegal/undocumented opcodes and the three synthesized pseudo-ops
// that replace unusable JAM opcode slots.
type Mnemonic int

const (
	ADC Mnemonic = iota
	ALR          // aka ASR
	ANC
	AND
	ANE // aka XAA
	ARR
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DCP
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	ISB // aka ISC
	JAM
	JMP
	JSR
	LAE // aka LAS, LAR
	LAX
	LDA
	LDX
	LDY
	LSR
	LXA
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	RLA
	ROL
	ROR
	RRA
	RTI
	RTS
	SAX // aka AXS
	SBC
	SBX // aka AXS (the other one)
	SEC
	SED
	SEI
	SHA // aka AHX
	SHS // aka TAS
	SHX
	SHY
	SLO
	SRE // aka LSE
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// pseudo-ops, patched into the three unusable JAM slots 0x02/0x12/0x22
	STARTIRQ
	STARTNMI
	NULLBURN
)

var mnemonicNames = [...]string{
	ADC: "ADC", ALR: "ALR", ANC: "ANC", AND: "AND", ANE: "ANE", ARR: "ARR", ASL: "ASL",
	BCC: "BCC", BCS: "BCS", BEQ: "BEQ", BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL",
	BRK: "BRK", BVC: "BVC", BVS: "BVS", CLC: "CLC", CLD: "CLD", CLI: "CLI", CLV: "CLV",
	CMP: "CMP", CPX: "CPX", CPY: "CPY", DCP: "DCP", DEC: "DEC", DEX: "DEX", DEY: "DEY",
	EOR: "EOR", INC: "INC", INX: "INX", INY: "INY", ISB: "ISB", JAM: "JAM", JMP: "JMP",
	JSR: "JSR", LAE: "LAE", LAX: "LAX", LDA: "LDA", LDX: "LDX", LDY: "LDY", LSR: "LSR",
	LXA: "LXA", NOP: "NOP", ORA: "ORA", PHA: "PHA", PHP: "PHP", PLA: "PLA", PLP: "PLP",
	RLA: "RLA", ROL: "ROL", ROR: "ROR", RRA: "RRA", RTI: "RTI", RTS: "RTS", SAX: "SAX",
	SBC: "SBC", SBX: "SBX", SEC: "SEC", SED: "SED", SEI: "SEI", SHA: "SHA", SHS: "SHS",
	SHX: "SHX", SHY: "SHY", SLO: "SLO", SRE: "SRE", STA: "STA", STX: "STX", STY: "STY",
	TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA", TXS: "TXS", TYA: "TYA",
	STARTIRQ: "START_IRQ", STARTNMI: "START_NMI", NULLBURN: "NULL_BURN",
}

// mnemonicName returns the display name of a mnemonic, for tracing and the
// debugger.
func mnemonicName(m Mnemonic) string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return "???"
}

// AddressingMode identifies one of the 13 ways a 6510 opcode locates its
// operand.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Immediate
	Accumulator
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirectX // (zp,X)
	IndirectIndexedY // (zp),Y
	Relative
)

// StartIRQOp, StartNMIOp, and NullBurnOp are the three patched opcode
// values. The real 6510 jams (halts) on all three; this core reuses the
// slots so interrupt dispatch can flow through the same in-flight
// machinery used for real instructions.
const (
	StartIRQOp byte = 0x02
	StartNMIOp byte = 0x12
	NullBurnOp byte = 0x22
	seiOpcode  byte = 0x78
)

// mnemonicTable maps opcode -> mnemonic identity. Transcribed from the
// reference implementation's _mnemonics array (see DESIGN.md).
var mnemonicTable = [256]Mnemonic{
	BRK, ORA, STARTIRQ, SLO, NOP, ORA, ASL, SLO, PHP, ORA, ASL, ANC, NOP, ORA, ASL, SLO,
	BPL, ORA, STARTNMI, SLO, NOP, ORA, ASL, SLO, CLC, ORA, NOP, SLO, NOP, ORA, ASL, SLO,
	JSR, AND, NULLBURN, RLA, BIT, AND, ROL, RLA, PLP, AND, ROL, ANC, BIT, AND, ROL, RLA,
	BMI, AND, JAM, RLA, NOP, AND, ROL, RLA, SEC, AND, NOP, RLA, NOP, AND, ROL, RLA,
	RTI, EOR, JAM, SRE, NOP, EOR, LSR, SRE, PHA, EOR, LSR, ALR, JMP, EOR, LSR, SRE,
	BVC, EOR, JAM, SRE, NOP, EOR, LSR, SRE, CLI, EOR, NOP, SRE, NOP, EOR, LSR, SRE,
	RTS, ADC, JAM, RRA, NOP, ADC, ROR, RRA, PLA, ADC, ROR, ARR, JMP, ADC, ROR, RRA,
	BVS, ADC, JAM, RRA, NOP, ADC, ROR, RRA, SEI, ADC, NOP, RRA, NOP, ADC, ROR, RRA,
	NOP, STA, NOP, SAX, STY, STA, STX, SAX, DEY, NOP, TXA, ANE, STY, STA, STX, SAX,
	BCC, STA, JAM, SHA, STY, STA, STX, SAX, TYA, STA, TXS, SHS, SHY, STA, SHX, SHA,
	LDY, LDA, LDX, LAX, LDY, LDA, LDX, LAX, TAY, LDA, TAX, LXA, LDY, LDA, LDX, LAX,
	BCS, LDA, JAM, LAX, LDY, LDA, LDX, LAX, CLV, LDA, TSX, LAE, LDY, LDA, LDX, LAX,
	CPY, CMP, NOP, DCP, CPY, CMP, DEC, DCP, INY, CMP, DEX, SBX, CPY, CMP, DEC, DCP,
	BNE, CMP, JAM, DCP, NOP, CMP, DEC, DCP, CLD, CMP, NOP, DCP, NOP, CMP, DEC, DCP,
	CPX, SBC, NOP, ISB, CPX, SBC, INC, ISB, INX, SBC, NOP, SBC, CPX, SBC, INC, ISB,
	BEQ, SBC, JAM, ISB, NOP, SBC, INC, ISB, SED, SBC, NOP, ISB, NOP, SBC, INC, ISB,
}

// addressingModeTable maps opcode -> addressing mode. Transcribed from the
// reference's _modes array. The three pseudo-op slots are given Implied
// here since their dispatch bypasses addressing-mode decode entirely (see
// DESIGN.md); the reference's own table carries a now-meaningless "abs" for
// two of them, an artifact of never distinguishing pseudo-ops in that
// table.
var addressingModeTable = [256]AddressingMode{
	Implied, IndexedIndirectX, Implied, IndexedIndirectX, ZeroPage, ZeroPage, ZeroPage, ZeroPage, Implied, Immediate, Accumulator, Immediate, Absolute, Absolute, Absolute, Absolute,
	Relative, IndirectIndexedY, Implied, IndirectIndexedY, ZeroPageX, ZeroPageX, ZeroPageX, ZeroPageX, Implied, AbsoluteY, Implied, AbsoluteY, AbsoluteX, AbsoluteX, AbsoluteX, AbsoluteX,
	Absolute, IndexedIndirectX, Implied, IndexedIndirectX, ZeroPage, ZeroPage, ZeroPage, ZeroPage, Implied, Immediate, Accumulator, Immediate, Absolute, Absolute, Absolute, Absolute,
	Relative, IndirectIndexedY, Implied, IndirectIndexedY, ZeroPageX, ZeroPageX, ZeroPageX, ZeroPageX, Implied, AbsoluteY, Implied, AbsoluteY, AbsoluteX, AbsoluteX, AbsoluteX, AbsoluteX,
	Implied, IndexedIndirectX, Implied, IndexedIndirectX, ZeroPage, ZeroPage, ZeroPage, ZeroPage, Implied, Immediate, Accumulator, Immediate, Absolute, Absolute, Absolute, Absolute,
	Relative, IndirectIndexedY, Implied, IndirectIndexedY, ZeroPageX, ZeroPageX, ZeroPageX, ZeroPageX, Implied, AbsoluteY, Implied, AbsoluteY, AbsoluteX, AbsoluteX, AbsoluteX, AbsoluteX,
	Implied, IndexedIndirectX, Implied, IndexedIndirectX, ZeroPage, ZeroPage, ZeroPage, ZeroPage, Implied, Immediate, Accumulator, Immediate, Indirect, Absolute, Absolute, Absolute,
	Relative, IndirectIndexedY, Implied, IndirectIndexedY, ZeroPageX, ZeroPageX, ZeroPageX, ZeroPageX, Implied, AbsoluteY, Implied, AbsoluteY, AbsoluteX, AbsoluteX, AbsoluteX, AbsoluteX,
	Immediate, IndexedIndirectX, Immediate, IndexedIndirectX, ZeroPage, ZeroPage, ZeroPage, ZeroPage, Implied, Immediate, Implied, Immediate, Absolute, Absolute, Absolute, Absolute,
	Relative, IndirectIndexedY, Implied, IndirectIndexedY, ZeroPageX, ZeroPageX, ZeroPageY, ZeroPageY, Implied, AbsoluteY, Implied, AbsoluteY, AbsoluteX, AbsoluteX, AbsoluteY, AbsoluteY,
	Immediate, IndexedIndirectX, Immediate, IndexedIndirectX, ZeroPage, ZeroPage, ZeroPage, ZeroPage, Implied, Immediate, Implied, Immediate, Absolute, Absolute, Absolute, Absolute,
	Relative, IndirectIndexedY, Implied, IndirectIndexedY, ZeroPageX, ZeroPageX, ZeroPageY, ZeroPageY, Implied, AbsoluteY, Implied, AbsoluteY, AbsoluteX, AbsoluteX, AbsoluteY, AbsoluteY,
	Immediate, IndexedIndirectX, Immediate, IndexedIndirectX, ZeroPage, ZeroPage, ZeroPage, ZeroPage, Implied, Immediate, Implied, Immediate, Absolute, Absolute, Absolute, Absolute,
	Relative, IndirectIndexedY, Implied, IndirectIndexedY, ZeroPageX, ZeroPageX, ZeroPageX, ZeroPageX, Implied, AbsoluteY, Implied, AbsoluteY, AbsoluteX, AbsoluteX, AbsoluteX, AbsoluteX,
	Immediate, IndexedIndirectX, Immediate, IndexedIndirectX, ZeroPage, ZeroPage, ZeroPage, ZeroPage, Implied, Immediate, Implied, Immediate, Absolute, Absolute, Absolute, Absolute,
	Relative, IndirectIndexedY, Implied, IndirectIndexedY, ZeroPageX, ZeroPageX, ZeroPageX, ZeroPageX, Implied, AbsoluteY, Implied, AbsoluteY, AbsoluteX, AbsoluteX, AbsoluteX, AbsoluteX,
}

// baseCycleTable maps opcode -> base cycle count, before page-crossing or
// branch-taken adjustments. Transcribed from the reference's
// _opbase_frame_cycles array; patched in init() per spec.md's explicit
// "pseudo-opcodes get 7 cycles" rule and to keep the cycles-remaining
// invariant intact for the unpatched JAM slots (see DESIGN.md).
var baseCycleTable = [256]int8{
	7, 6, 7, 8, 3, 3, 5, 5, 3, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 7, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	6, 6, 0, 8, 3, 3, 5, 5, 3, 2, 2, 2, 3, 4, 6, 6,
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	6, 6, 0, 8, 3, 3, 5, 5, 4, 2, 2, 2, 5, 4, 6, 6,
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	2, 6, 0, 6, 4, 4, 4, 4, 2, 5, 2, 5, 5, 5, 5, 5,
	2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	2, 5, 0, 5, 4, 4, 4, 4, 2, 4, 2, 4, 4, 4, 4, 4,
	2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
}

// busWriteStartTable maps opcode -> the 1-based cycle at which that opcode
// first writes to the bus, or 0 if it performs no such write. Transcribed
// from the reference's _opbase_write_cycle array; used by stun
// arbitration (stun.go).
var busWriteStartTable = [256]int8{
	3, 0, 0, 7, 0, 0, 4, 4, 3, 0, 0, 0, 0, 0, 5, 5,
	0, 0, 0, 7, 0, 0, 5, 5, 0, 0, 0, 6, 0, 0, 6, 6,
	4, 0, 0, 7, 0, 0, 4, 4, 0, 0, 0, 0, 0, 0, 5, 5,
	0, 0, 0, 7, 0, 0, 5, 5, 0, 0, 0, 6, 0, 0, 6, 6,
	0, 0, 0, 7, 0, 0, 4, 4, 3, 0, 0, 0, 0, 0, 5, 5,
	0, 0, 0, 7, 0, 0, 5, 5, 0, 0, 0, 6, 0, 0, 6, 6,
	0, 0, 0, 7, 0, 0, 4, 4, 0, 0, 0, 0, 0, 0, 5, 5,
	0, 0, 0, 7, 0, 0, 5, 5, 0, 0, 0, 6, 0, 0, 6, 6,
	0, 6, 0, 6, 3, 3, 3, 3, 0, 0, 0, 0, 4, 4, 4, 4,
	0, 6, 0, 0, 4, 4, 4, 4, 0, 5, 0, 0, 0, 5, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 7, 0, 0, 4, 4, 0, 0, 0, 0, 0, 0, 5, 5,
	0, 0, 0, 7, 0, 0, 5, 5, 0, 0, 0, 6, 0, 0, 6, 6,
	0, 0, 0, 7, 0, 0, 4, 4, 0, 0, 0, 0, 0, 0, 5, 5,
	0, 0, 0, 7, 0, 0, 5, 5, 0, 0, 0, 6, 0, 0, 6, 6,
}

func init() {
	// Pseudo-opcodes get 7 cycles: the interrupt dispatch cost.
	// STARTIRQ/STARTNMI already carry 7 in the transcribed table; only
	// NULLBURN (inherited as the un-patched JAM opcode's 2) needs the
	// override.
	baseCycleTable[NullBurnOp] = 7

	// STARTIRQ/STARTNMI's write-start cells were transcribed as 0 (the
	// JAM slots they patch never write), but the reference's write-cycle
	// array gives both pseudo-ops 3: they push PC and P to the stack
	// partway through the 7-cycle dispatch, the same bus-write phase a
	// BRK goes through. A 0 here would make stun arbitration treat an
	// in-flight interrupt dispatch as having no write phase at all,
	// suppressing it for the entire 7 cycles under a WriteAllowed stun.
	busWriteStartTable[StartIRQOp] = 3
	busWriteStartTable[StartNMIOp] = 3

	// the ~9 JAM opcodes the reference leaves un-patched carry a base
	// cycle count of 0 (the real hardware never completes them). A 0
	// would break the cycles_remaining invariant and would never reach
	// the completion tick under the decrement-then-check-zero rule (the
	// dispatch tick alone sets cycles_remaining = cycles_total-1 without
	// checking it), so each is clamped to the minimum value for which
	// that rule still completes an instruction: 2.
	for op := 0; op < 256; op++ {
		if mnemonicTable[op] == JAM && baseCycleTable[op] == 0 {
			baseCycleTable[op] = 2
		}
	}
}

// pagePenaltyMnemonics is the set of mnemonics subject to a +1 cycle
// penalty when their absolute-X/absolute-Y/indirect-indexed addressing
// crosses a page boundary.
var pagePenaltyMnemonics = map[Mnemonic]bool{
	ADC: true, AND: true, CMP: true, EOR: true, LAE: true, LAX: true,
	LDA: true, LDX: true, LDY: true, NOP: true, ORA: true, SBC: true,
}

// conditionalBranches maps a branch mnemonic to the flag-test it performs.
// The closure reads the CPU's current P register and reports whether the
// branch is taken.
var conditionalBranches = map[Mnemonic]func(p byte) bool{
	BCC: func(p byte) bool { return p&FlagC == 0 },
	BCS: func(p byte) bool { return p&FlagC != 0 },
	BNE: func(p byte) bool { return p&FlagZ == 0 },
	BEQ: func(p byte) bool { return p&FlagZ != 0 },
	BPL: func(p byte) bool { return p&FlagN == 0 },
	BMI: func(p byte) bool { return p&FlagN != 0 },
	BVC: func(p byte) bool { return p&FlagV == 0 },
	BVS: func(p byte) bool { return p&FlagV != 0 },
}
