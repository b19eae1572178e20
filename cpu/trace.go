package cpu

import "log/slog"

// EnableTrace turns on per-completion structured logging to the given
// logger, or disables tracing if logger is nil. This is the one ambient
// concern in this package built directly on the standard library: no
// example repo in the corpus reaches for a third-party logging library at
// all (plain fmt.Println/ad hoc prints, or none), so there is no pack
// idiom to follow here; slog's zero-allocation-when-disabled design fits
// a tracer that may be called up to a million times a second.
func (c *Cpu) EnableTrace(logger *slog.Logger) {
	c.tracer = logger
}

// traceCompletion logs one completed instruction, if tracing is enabled.
func (c *Cpu) traceCompletion(op byte) {
	if c.tracer == nil {
		return
	}
	c.tracer.Debug("instruction",
		slog.String("mnemonic", mnemonicName(mnemonicTable[op])),
		slog.Int("opcode", int(op)),
		slog.Int("pc", int(c.Regs.PC)),
		slog.Int("a", int(c.Regs.A)),
		slog.Int("x", int(c.Regs.X)),
		slog.Int("y", int(c.Regs.Y)),
		slog.Int("s", int(c.Regs.S)),
		slog.Int("p", int(c.Regs.P)),
	)
}
