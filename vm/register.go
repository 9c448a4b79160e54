package vm

import (
	"strings"
)

// Register is an index into the machine register file.
// Each register is 16 bits wide.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	RegA     = Register(0)  // A
	RegB     = Register(1)  // B
	RegC     = Register(2)  // C
	RegM     = Register(3)  // M
	RegSP    = Register(4)  // SP
	RegPC    = Register(5)  // PC
	RegBP    = Register(6)  // BP
	RegFLAGS = Register(7)  // FLAGS
	RegR0    = Register(8)  // R0
	RegR1    = Register(9)  // R1
	RegR2    = Register(10) // R2
	RegR3    = Register(11) // R3
	RegR4    = Register(12) // R4
)

// RegisterCount is the size of the register file.
const RegisterCount = 13

// Role classifies a register as general purpose or reserved for the machine.
// Roles are advisory: the decoder only validates indexes, never identity.
type Role int

//go:generate go tool stringer -linecomment -type=Role
const (
	RoleGeneral = Role(0) // general
	RoleSystem  = Role(1) // system
)

// Role returns the role of the register.
func (r Register) Role() Role {
	switch r {
	case RegM, RegSP, RegPC, RegBP, RegFLAGS:
		return RoleSystem
	}

	return RoleGeneral
}

// registerMap maps register names, lower cased, to register indexes.
var registerMap = map[string]Register{
	"a":     RegA,
	"b":     RegB,
	"c":     RegC,
	"m":     RegM,
	"sp":    RegSP,
	"pc":    RegPC,
	"bp":    RegBP,
	"flags": RegFLAGS,
	"r0":    RegR0,
	"r1":    RegR1,
	"r2":    RegR2,
	"r3":    RegR3,
	"r4":    RegR4,
}

// RegisterFromName looks up a register by name, case-insensitively.
func RegisterFromName(name string) (r Register, err error) {
	r, ok := registerMap[strings.ToLower(name)]
	if !ok {
		err = ErrRegisterName(name)
	}

	return
}

// RegisterFromIndex validates a numeric register index.
func RegisterFromIndex(index uint8) (r Register, err error) {
	if int(index) >= RegisterCount {
		err = ErrRegisterIndex(index)
		return
	}

	r = Register(index)
	return
}
