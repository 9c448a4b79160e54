package vm

import (
	"fmt"
)

// Op selects a machine operation. The set is closed: Decode rejects any
// opcode byte outside this table.
//
// The numeric values follow the canonical opcode table; they are an
// implementation choice, not a wire-compatibility requirement.
type Op uint8

//go:generate go tool stringer -linecomment -type=Op
const (
	OpNop          = Op(0x00) // NOP
	OpPush         = Op(0x01) // PUSH
	OpPopRegister  = Op(0x02) // POP
	OpPushRegister = Op(0x03) // PUSHR
	OpAddRegister  = Op(0x04) // ADDR
	OpSignal       = Op(0x09) // SIG
	OpAddStack     = Op(0x0F) // ADDS
)

// Instruction is one decoded two-byte machine instruction.
// Byte 0 is the opcode, byte 1 the argument.
type Instruction struct {
	Op  Op
	Arg uint8
}

// PackRegisters packs two register indexes into one argument byte.
// The first register occupies the high nibble, the second the low nibble.
func PackRegisters(r1, r2 Register) uint8 {
	return (uint8(r1) << 4) | (uint8(r2) & 0x0f)
}

// Reg returns the argument interpreted as a single register index.
func (ins Instruction) Reg() (r Register, err error) {
	return RegisterFromIndex(ins.Arg)
}

// Regs returns the argument interpreted as two packed register indexes.
func (ins Instruction) Regs() (r1, r2 Register, err error) {
	r1, err = RegisterFromIndex(ins.Arg >> 4)
	if err != nil {
		return
	}
	r2, err = RegisterFromIndex(ins.Arg & 0x0f)
	return
}

// Encode returns the two-byte wire form of the instruction.
func (ins Instruction) Encode() [2]byte {
	return [2]byte{uint8(ins.Op), ins.Arg}
}

// Decode validates an opcode and argument pair as an instruction.
// Register-bearing opcodes have their register indexes validated here, so a
// decoded instruction is always executable as far as operand shape goes.
func Decode(opcode, arg uint8) (ins Instruction, err error) {
	ins = Instruction{Op: Op(opcode), Arg: arg}

	switch ins.Op {
	case OpNop, OpPush, OpSignal, OpAddStack:
		// Argument is an immediate, or unused.
	case OpPopRegister, OpPushRegister:
		_, err = ins.Reg()
	case OpAddRegister:
		_, _, err = ins.Regs()
	default:
		err = ErrOpcodeUnknown(opcode)
	}

	return
}

// String returns the assembly language representation of the instruction.
func (ins Instruction) String() (out string) {
	switch ins.Op {
	case OpNop, OpAddStack:
		out = ins.Op.String()
	case OpPush:
		out = fmt.Sprintf("%v #%d", ins.Op, ins.Arg)
	case OpSignal:
		out = fmt.Sprintf("%v $%02X", ins.Op, ins.Arg)
	case OpPopRegister, OpPushRegister:
		r, err := ins.Reg()
		if err != nil {
			out = fmt.Sprintf("%v ?%d", ins.Op, ins.Arg)
			break
		}
		out = fmt.Sprintf("%v %v", ins.Op, r)
	case OpAddRegister:
		r1, r2, err := ins.Regs()
		if err != nil {
			out = fmt.Sprintf("%v ?%d", ins.Op, ins.Arg)
			break
		}
		out = fmt.Sprintf("%v %v %v", ins.Op, r1, r2)
	default:
		out = fmt.Sprintf("%v 0x%02X", ins.Op, ins.Arg)
	}

	return
}
