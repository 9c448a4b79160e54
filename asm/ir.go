package asm

import (
	"strings"

	"github.com/ezrec/vm16/vm"
)

// InstructionKind tags the variants of the assembler's intermediate
// representation.
type InstructionKind int

//go:generate go tool stringer -linecomment -type=InstructionKind
const (
	IRNop          = InstructionKind(0) // nop
	IRPushImm      = InstructionKind(1) // push-imm
	IRPushLabel    = InstructionKind(2) // push-label
	IRPushRegister = InstructionKind(3) // push-register
	IRPop          = InstructionKind(4) // pop
	IRAddStack     = InstructionKind(5) // add-stack
	IRAddRegister  = InstructionKind(6) // add-register
	IRSignal       = InstructionKind(7) // signal
	IRLabel        = InstructionKind(8) // label
)

// Instruction is one parsed assembly statement, immutable once produced by
// the parser. Value carries immediates and signal codes, R1/R2 register
// operands, and Name label names (declared for IRLabel, referenced for
// IRPushLabel).
type Instruction struct {
	Kind   InstructionKind
	Value  uint8
	R1, R2 vm.Register
	Name   string

	LineNo int      // Source line of the statement.
	Words  []string // Source words, for listings and errors.
}

// EmitsCode reports whether the node occupies space in the binary image.
// Label declarations do not.
func (ins Instruction) EmitsCode() bool {
	return ins.Kind != IRLabel
}

// Source returns the statement as written.
func (ins Instruction) Source() string {
	return strings.Join(ins.Words, " ")
}
