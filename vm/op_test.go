package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		opcode uint8
		arg    uint8
		ins    Instruction
	}){
		{"nop", 0x00, 0x00, Instruction{OpNop, 0x00}},
		{"push", 0x01, 0x2A, Instruction{OpPush, 0x2A}},
		{"pop_b", 0x02, 0x01, Instruction{OpPopRegister, 0x01}},
		{"pushr_c", 0x03, 0x02, Instruction{OpPushRegister, 0x02}},
		{"addr_a_b", 0x04, 0x01, Instruction{OpAddRegister, 0x01}},
		{"sig_halt", 0x09, 0x09, Instruction{OpSignal, 0x09}},
		{"adds", 0x0F, 0x00, Instruction{OpAddStack, 0x00}},
	}

	for _, entry := range table {
		ins, err := Decode(entry.opcode, entry.arg)
		assert.NoError(err, entry.name)
		assert.Equal(entry.ins, ins, entry.name)
		assert.Equal([2]byte{entry.opcode, entry.arg}, ins.Encode(), entry.name)
	}
}

func TestDecode_UnknownOp(t *testing.T) {
	assert := assert.New(t)

	for _, opcode := range []uint8{0x05, 0x08, 0x10, 0xFF} {
		_, err := Decode(opcode, 0)
		assert.ErrorIs(err, ErrOpcodeUnknown(0))
	}
}

func TestDecode_RegisterIndex(t *testing.T) {
	assert := assert.New(t)

	// Register file has 13 entries; indexes 13..15 are invalid.
	_, err := Decode(uint8(OpPopRegister), 13)
	assert.ErrorIs(err, ErrRegisterIndex(0))

	_, err = Decode(uint8(OpPushRegister), 15)
	assert.ErrorIs(err, ErrRegisterIndex(0))

	_, err = Decode(uint8(OpAddRegister), PackRegisters(RegA, Register(14)))
	assert.ErrorIs(err, ErrRegisterIndex(0))

	_, err = Decode(uint8(OpAddRegister), uint8(13)<<4)
	assert.ErrorIs(err, ErrRegisterIndex(0))
}

func TestPackRegisters(t *testing.T) {
	assert := assert.New(t)

	arg := PackRegisters(RegR4, RegB)
	assert.Equal(uint8(0xC1), arg)

	ins, err := Decode(uint8(OpAddRegister), arg)
	assert.NoError(err)

	r1, r2, err := ins.Regs()
	assert.NoError(err)
	assert.Equal(RegR4, r1)
	assert.Equal(RegB, r2)
}

func TestRegisterFromName(t *testing.T) {
	assert := assert.New(t)

	// Names match case-insensitively.
	for _, name := range []string{"sp", "SP", "Sp"} {
		r, err := RegisterFromName(name)
		assert.NoError(err, name)
		assert.Equal(RegSP, r, name)
	}

	_, err := RegisterFromName("D")
	assert.ErrorIs(err, ErrRegisterName(""))
}

func TestRegisterRole(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(RoleGeneral, RegA.Role())
	assert.Equal(RoleGeneral, RegR0.Role())
	assert.Equal(RoleSystem, RegSP.Role())
	assert.Equal(RoleSystem, RegPC.Role())
	assert.Equal(RoleSystem, RegM.Role())
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("PUSH #10", Instruction{OpPush, 10}.String())
	assert.Equal("POP B", Instruction{OpPopRegister, 1}.String())
	assert.Equal("ADDR A B", Instruction{OpAddRegister, 0x01}.String())
	assert.Equal("SIG $09", Instruction{OpSignal, 9}.String())
	assert.Equal("ADDS", Instruction{OpAddStack, 0}.String())
}
