// Package device provides the external effects behind the machine's SIG
// instruction. A device observes the machine through the narrow Bus surface
// and reacts to the signal codes routed to it.
package device

import (
	"github.com/ezrec/vm16/vm"
)

// Reserved signal codes.
const (
	SIG_HALT  = uint8(0x09) // Latch the machine into the halted state.
	SIG_WRITE = uint8(0x0A) // Write the low byte of A to the console.
)

// Bus is the machine surface a device may act on.
type Bus interface {
	// Register returns the value of a register.
	Register(r vm.Register) uint16
	// Halt latches the machine into the halted state.
	Halt()
}

var _ Bus = (*vm.Machine)(nil)

// Device reacts to signal codes.
type Device interface {
	// Signal applies the device's effect for one signal code.
	Signal(bus Bus, code uint8) error
	// Rewind resets the device to its initial state.
	Rewind()
}

// Halt is the device behind the reserved halt code.
type Halt struct{}

var _ Device = (*Halt)(nil)

// Signal stops the machine.
func (hd *Halt) Signal(bus Bus, code uint8) (err error) {
	bus.Halt()
	return
}

// Rewind does nothing; Halt is stateless.
func (hd *Halt) Rewind() {
}
