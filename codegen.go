// codegen.go - final address assignment, label resolution, and encoding.
//
// A linear walk fixes addresses, resolves symbols against the complete
// table, and appends encoded bytes; per-statement errors are collected
// rather than aborting the walk. The sizer's widths are authoritative
// here: an encoding whose length disagrees with its sized width is
// reported as an internal fault rather than silently shifting every
// downstream address.

package z80asm

// generate finalizes the intermediate list in place and returns the byte
// image. It re-walks the list twice: once assigning authoritative
// addresses and re-binding attached labels, once encoding every
// instruction against the finalized symbol table.
func generate(irs []IR, symbols SymbolTable, sink *diagnosticSink, start uint16) []byte {
	pc := start
	for i := range irs {
		ir := &irs[i]
		if ir.Kind == IROrg {
			pc = ir.Address
			continue
		}
		ir.Address = pc
		for _, name := range ir.Labels {
			symbols.rebind(name, pc, SymLabel)
		}
		if ir.Kind == IRData {
			pc += uint16(len(ir.Bytes))
		} else {
			pc += uint16(ir.Size)
		}
	}

	var out []byte
	for i := range irs {
		ir := &irs[i]
		switch ir.Kind {
		case IROrg:
			continue
		case IRData:
			out = append(out, ir.Bytes...)
			continue
		}

		ops, err := resolveOperands(ir.Operands, symbols)
		if err != nil {
			sink.addEvalError(decorate(err, ir.Address), ir.Line, ir.Column)
			continue
		}
		bytes, err := encodeInstruction(ir.Mnemonic, ops, ir.Address)
		if err != nil {
			sink.addEvalError(decorate(err, ir.Address), ir.Line, ir.Column)
			continue
		}
		if len(bytes) != ir.Size {
			sink.addError(ErrInternal, ir.Line, ir.Column,
				"%s at $%04X sized %d bytes but encoded %d",
				ir.Mnemonic, ir.Address, ir.Size, len(bytes))
			continue
		}
		ir.Bytes = bytes
		out = append(out, bytes...)
	}
	return out
}

// resolveOperands replaces every LabelRef with the symbol's address: a
// plain reference becomes an Immediate, a (label) reference becomes an
// IndirectAddr.
func resolveOperands(ops []Operand, symbols SymbolTable) ([]Operand, error) {
	out := make([]Operand, len(ops))
	for i, op := range ops {
		if op.Kind != OpLabelRef {
			out[i] = op
			continue
		}
		sym, ok := symbols.lookup(op.Name)
		if !ok {
			return nil, &assembleError{kind: ErrUndefinedSymbol,
				format: "undefined symbol %s", args: []interface{}{op.Name}}
		}
		kind := OpImmediate
		if op.Paren {
			kind = OpIndirectAddr
		}
		out[i] = Operand{Kind: kind, Immediate: int64(sym.Address), Line: op.Line, Column: op.Column}
	}
	return out, nil
}

// decorate tags a codegen-stage error with the instruction address.
func decorate(err error, addr uint16) error {
	if e, ok := err.(*assembleError); ok {
		return &assembleError{kind: e.kind, format: e.format + " at $%04X",
			args: append(append([]interface{}{}, e.args...), addr)}
	}
	return err
}
