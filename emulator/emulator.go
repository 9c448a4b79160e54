// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/vm16/asm"
	"github.com/ezrec/vm16/device"
	"github.com/ezrec/vm16/internal"
	"github.com/ezrec/vm16/vm"
)

var _emulator_defines = map[string]string{
	"SIG_HALT":  fmt.Sprintf("$%02X", device.SIG_HALT),
	"SIG_WRITE": fmt.Sprintf("$%02X", device.SIG_WRITE),
}

// Emulator state. Machine + devices + the program listing being run.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	*vm.Machine              // Reference to the machine simulation.
	Program     *asm.Program // Reference to the currently running program listing.

	Halt     device.Halt     // Halt device.
	Console  device.Console  // Console output device.
	Recorder device.Recorder // Fallback device recording undefined signals.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: vm.NewMachine(),
		Program: &asm.Program{},
	}

	emu.Machine.DefineSignal(device.SIG_HALT, emu.handler(&emu.Halt))
	emu.Machine.DefineSignal(device.SIG_WRITE, emu.handler(&emu.Console))
	emu.Machine.DefineSignalDefault(emu.handler(&emu.Recorder))

	return
}

// handler adapts a device into a machine signal handler.
func (emu *Emulator) handler(dev device.Device) vm.SignalFunc {
	return func(m *vm.Machine, code uint8) error {
		return dev.Signal(m, code)
	}
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Machine.Defines(),
	)
}

// Reset rewinds the devices, resets the machine, and loads the program
// image at address 0.
func (emu *Emulator) Reset() (err error) {
	emu.Machine.Verbose = emu.Verbose

	emu.Halt.Rewind()
	emu.Console.Rewind()
	emu.Recorder.Rewind()

	emu.Machine.Reset()

	return emu.Machine.LoadProgram(emu.Program.Binary())
}

// LineNo returns the source line number of the instruction PC points at.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Machine.PC())
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Machine.Done() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Machine.Step()
	if err != nil {
		return
	}

	done = emu.Machine.Done()
	return
}

// Run ticks the emulator until the program halts or runs off the end of the
// loaded image.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
