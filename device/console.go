package device

import (
	"io"

	"github.com/ezrec/vm16/vm"
)

// Console writes the low byte of register A to an output stream, one byte
// per signal. A nil Output discards the bytes.
type Console struct {
	Output io.Writer

	written int
}

var _ Device = (*Console)(nil)

// Signal emits the low byte of register A.
func (cd *Console) Signal(bus Bus, code uint8) (err error) {
	if cd.Output == nil {
		return
	}

	_, err = cd.Output.Write([]byte{uint8(bus.Register(vm.RegA) & 0xff)})
	if err != nil {
		return
	}
	cd.written += 1

	return
}

// Rewind clears the byte counter. The output stream is not seekable and is
// left alone.
func (cd *Console) Rewind() {
	cd.written = 0
}

// Written returns the number of bytes emitted since the last Rewind.
func (cd *Console) Written() int {
	return cd.written
}
