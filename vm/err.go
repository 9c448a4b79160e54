package vm

import (
	"errors"

	"github.com/ezrec/vm16/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrHalted        = errors.New(f("machine halted"))
	ErrStackEmpty    = errors.New(f("stack underflow"))
	ErrStackFull     = errors.New(f("stack overflow"))
	ErrProgramTooBig = errors.New(f("program exceeds memory"))
)

// ErrBounds indicates a memory access outside of capacity.
type ErrBounds uint16

func (eb ErrBounds) Error() string {
	return f("memory access out of bounds - 0x%04X", uint16(eb))
}

func (eb ErrBounds) Is(err error) (ok bool) {
	_, ok = err.(ErrBounds)
	return
}

// ErrOpcodeUnknown indicates an opcode byte outside the closed operation set.
type ErrOpcodeUnknown uint8

func (eo ErrOpcodeUnknown) Error() string {
	return f("unknown op - 0x%02X", uint8(eo))
}

func (eo ErrOpcodeUnknown) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeUnknown)
	return
}

// ErrRegisterIndex indicates a register index outside the register file.
type ErrRegisterIndex uint8

func (er ErrRegisterIndex) Error() string {
	return f("unknown register - 0x%X", uint8(er))
}

func (er ErrRegisterIndex) Is(err error) (ok bool) {
	_, ok = err.(ErrRegisterIndex)
	return
}

// ErrRegisterName indicates an unknown register name.
type ErrRegisterName string

func (er ErrRegisterName) Error() string {
	return f("'%v' is not a register", string(er))
}

func (er ErrRegisterName) Is(err error) (ok bool) {
	_, ok = err.(ErrRegisterName)
	return
}

// ErrSignal indicates a signal code with no installed handler.
type ErrSignal uint8

func (es ErrSignal) Error() string {
	return f("unknown signal - 0x%02X", uint8(es))
}

func (es ErrSignal) Is(err error) (ok bool) {
	_, ok = err.(ErrSignal)
	return
}

// ErrFault locates a runtime error at the program counter of the failing
// instruction.
type ErrFault struct {
	PC  uint16
	Err error
}

func (ef *ErrFault) Error() string {
	return f("pc 0x%04X %v", ef.PC, ef.Err)
}

func (ef *ErrFault) Unwrap() error {
	return ef.Err
}
