package vm

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

const (
	MemorySize = 8 * 1024       // Total memory capacity, in bytes.
	StackBase  = uint16(0x1000) // First address of the stack region.
)

var _machine_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MemorySize),
	"STACK_BASE":  fmt.Sprintf("%#x", StackBase),
}

// SignalFunc handles a SIG instruction for one signal code.
type SignalFunc func(m *Machine, code uint8) error

// Machine is the virtual machine: a register file, linear memory, and a
// table of signal handlers. A Machine must not be shared between goroutines.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory Addressable // Machine memory; program text loads at 0.

	registers [RegisterCount]uint16
	halted    bool
	loaded    uint16 // Bytes of loaded program text.

	handlers       map[uint8]SignalFunc
	defaultHandler SignalFunc
}

// NewMachine creates a machine with fresh linear memory, SP at the stack
// base and PC at 0.
func NewMachine() (m *Machine) {
	m = &Machine{
		Memory: NewLinearMemory(MemorySize),
	}
	m.Reset()

	return
}

// Defines for the machine.
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// Reset clears the register file and the halt latch.
// SP returns to the stack base and PC to 0. Memory and signal handlers are
// left alone.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("vm: reset")
	}

	clear(m.registers[:])
	m.registers[RegSP] = StackBase
	m.registers[RegPC] = 0
	m.halted = false
}

// DefineSignal installs a handler for one signal code.
func (m *Machine) DefineSignal(code uint8, fn SignalFunc) {
	if m.handlers == nil {
		m.handlers = make(map[uint8]SignalFunc, 8)
	}
	m.handlers[code] = fn
}

// DefineSignalDefault installs a handler for signal codes with no dedicated
// handler. Without it, an unhandled signal is a runtime error.
func (m *Machine) DefineSignalDefault(fn SignalFunc) {
	m.defaultHandler = fn
}

// Register returns the value of a register.
func (m *Machine) Register(r Register) uint16 {
	return m.registers[r]
}

// SetRegister sets the value of a register.
func (m *Machine) SetRegister(r Register, value uint16) {
	m.registers[r] = value
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.registers[RegPC]
}

// SP returns the stack pointer.
func (m *Machine) SP() uint16 {
	return m.registers[RegSP]
}

// Halted returns true once the machine has stopped.
func (m *Machine) Halted() bool {
	return m.halted
}

// Halt latches the machine into the halted state.
func (m *Machine) Halt() {
	m.halted = true
}

// Done reports whether the external driver should stop stepping: either the
// machine halted, or PC has advanced past the loaded program text.
func (m *Machine) Done() bool {
	return m.halted || m.registers[RegPC] >= m.loaded
}

// LoadProgram copies a binary image to address 0 and records its extent.
func (m *Machine) LoadProgram(data []byte) (err error) {
	if len(data) > m.Memory.Size() {
		err = ErrProgramTooBig
		return
	}

	err = m.Memory.Load(data, 0)
	if err != nil {
		return
	}
	m.loaded = uint16(len(data))

	if m.Verbose {
		log.Printf("vm: loaded %d bytes (%d instructions)", len(data), len(data)/2)
	}

	return
}

// StackWindow returns up to n words of recent stack memory, deepest first.
// Intended for debugger use between Step calls; it does not mutate state.
func (m *Machine) StackWindow(n int) (values []uint16) {
	sp := m.registers[RegSP]

	depth := int(sp-StackBase) / 2
	if depth > n {
		depth = n
	}

	for i := depth; i > 0; i-- {
		value, err := m.Memory.Read2(sp - uint16(2*i))
		if err != nil {
			break
		}
		values = append(values, value)
	}

	return
}

// Push writes a word at SP, then advances SP by 2.
func (m *Machine) Push(value uint16) (err error) {
	sp := m.registers[RegSP]
	err = m.Memory.Write2(sp, value)
	if err != nil {
		err = errors.Join(ErrStackFull, err)
		return
	}
	m.registers[RegSP] = sp + 2

	return
}

// Pop retreats SP by 2 and reads the word there. SP may never drop below
// the stack base; SP is left untouched on error.
func (m *Machine) Pop() (value uint16, err error) {
	sp := m.registers[RegSP]
	if sp < StackBase+2 {
		err = ErrStackEmpty
		return
	}

	value, err = m.Memory.Read2(sp - 2)
	if err != nil {
		return
	}
	m.registers[RegSP] = sp - 2

	return
}

// Step executes a single instruction:
//
//  1. Fetch the opcode and argument bytes at PC.
//  2. Advance PC by 2.
//  3. Decode and execute the operation.
//
// Any error latches the halt flag; the machine stays inspectable but is not
// resumable. Stepping a halted machine returns ErrHalted.
func (m *Machine) Step() (err error) {
	if m.halted {
		return ErrHalted
	}

	pc := m.registers[RegPC]
	defer func() {
		if err != nil {
			m.halted = true
			err = &ErrFault{PC: pc, Err: err}
		}
	}()

	opcode, err := m.Memory.Read(pc)
	if err != nil {
		return
	}
	arg, err := m.Memory.Read(pc + 1)
	if err != nil {
		return
	}

	// PC advances before execution, so a future control-flow instruction
	// could override it.
	m.registers[RegPC] = pc + 2

	ins, err := Decode(opcode, arg)
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("vm: %04x: %v", pc, ins)
	}

	return m.execute(ins)
}

// execute applies the effect of a decoded instruction.
func (m *Machine) execute(ins Instruction) (err error) {
	switch ins.Op {
	case OpNop:
		// No state change.
	case OpPush:
		err = m.Push(uint16(ins.Arg))
	case OpPopRegister:
		r, _ := ins.Reg()
		var value uint16
		value, err = m.Pop()
		if err != nil {
			return
		}
		m.registers[r] = value
	case OpPushRegister:
		r, _ := ins.Reg()
		err = m.Push(m.registers[r])
	case OpAddStack:
		var top, next uint16
		top, err = m.Pop()
		if err != nil {
			return
		}
		next, err = m.Pop()
		if err != nil {
			return
		}
		err = m.Push(top + next)
	case OpAddRegister:
		r1, r2, _ := ins.Regs()
		m.registers[r1] += m.registers[r2]
	case OpSignal:
		fn, ok := m.handlers[ins.Arg]
		if !ok {
			fn = m.defaultHandler
		}
		if fn == nil {
			err = ErrSignal(ins.Arg)
			return
		}
		err = fn(m, ins.Arg)
	}

	return
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	for r := Register(0); r < RegisterCount; r++ {
		value := m.registers[r]
		text += fmt.Sprintf("% 6s: 0x%04X (%v)\n", r.String(), value, value)
	}

	text += " stack:"
	for _, value := range m.StackWindow(8) {
		text += fmt.Sprintf(" 0x%04X", value)
	}
	text += "\n"

	return
}
