package asm

import (
	"iter"

	"github.com/ezrec/vm16/vm"
)

// OpRecord maps one emitted instruction back to its source line.
type OpRecord struct {
	LineNo int
	Pc     int
	Words  []string
	Code   vm.Instruction
}

// Program is the output of the assembler: the encoded instructions in
// program order, with their source map and the resolved label table.
type Program struct {
	Ops    []OpRecord
	Labels map[string]int
}

// Binary returns the program as a byte image, ready to load at address 0.
func (prog *Program) Binary() (image []byte) {
	for _, op := range prog.Ops {
		pair := op.Code.Encode()
		image = append(image, pair[:]...)
	}

	return
}

// Codes iterates the program's instructions with their byte offsets.
func (prog *Program) Codes() iter.Seq2[uint16, vm.Instruction] {
	return func(yield func(pc uint16, code vm.Instruction) bool) {
		for _, op := range prog.Ops {
			if !yield(uint16(op.Pc), op.Code) {
				return
			}
		}
	}
}

// Debug returns the source record covering a byte offset, or nil.
func (prog *Program) Debug(pc uint16) (op *OpRecord) {
	for n := range prog.Ops {
		if int(pc) >= prog.Ops[n].Pc && int(pc) < prog.Ops[n].Pc+2 {
			op = &prog.Ops[n]
			break
		}
	}

	return
}

// LineNo returns the source line number for a byte offset, or 0.
func (prog *Program) LineNo(pc uint16) (lineno int) {
	op := prog.Debug(pc)
	if op != nil {
		lineno = op.LineNo
	}

	return
}
