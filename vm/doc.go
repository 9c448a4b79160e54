// Package vm implements the 16-bit stack-and-register virtual machine.
//
// The machine owns 8 KiB of byte-addressable linear memory and a file of
// thirteen 16-bit registers. Instructions are two bytes wide: an opcode byte
// followed by a single argument byte. The argument encodes an immediate
// value, a register index, or two register indexes packed as nibbles.
//
// Program text is loaded at address 0. The stack lives at 0x1000 and grows
// toward higher addresses; SP always points at the next free slot. The
// SIG instruction dispatches to externally installed signal handlers, one of
// which conventionally halts the machine.
package vm
