package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vm16/asm"
	"github.com/ezrec/vm16/vm"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.Equal(vm.StackBase, emu.Machine.SP())
}

// doRun assembles and runs a program to completion.
func doRun(emu *Emulator, program []string, t *testing.T) {
	assert := assert.New(t)

	a := &asm.Assembler{}
	for key, value := range emu.Defines() {
		a.Predefine(key, value)
	}

	prog, err := a.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}
	emu.Program = prog

	err = emu.Reset()
	assert.NoError(err)

	err = emu.Run()
	assert.NoError(err)
}

func TestEmulator_AddProgram(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doRun(emu, []string{
		"PUSH #10",
		"PUSH #24",
		"ADDS",
		"POP B",
		"SIG SIG_HALT",
	}, t)

	assert.True(emu.Machine.Halted())
	assert.Equal(uint16(34), emu.Machine.Register(vm.RegB))
	assert.Equal(vm.StackBase, emu.Machine.SP())
}

func TestEmulator_ConsoleOutput(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := &bytes.Buffer{}
	emu.Console.Output = output

	doRun(emu, []string{
		"PUSH #72", // 'H'
		"POP A",
		"SIG SIG_WRITE",
		"PUSH #105", // 'i'
		"POP A",
		"SIG SIG_WRITE",
		"SIG SIG_HALT",
	}, t)

	assert.Equal("Hi", output.String())
	assert.Equal(2, emu.Console.Written())
}

func TestEmulator_RecordedSignals(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doRun(emu, []string{
		"SIG $42",
		"SIG $07",
		"SIG SIG_HALT",
	}, t)

	assert.Equal([]uint8{0x42, 0x07}, emu.Recorder.Codes)
}

func TestEmulator_RunsOffEnd(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doRun(emu, []string{
		"PUSH #1",
		"POP A",
	}, t)

	// No halt signal: the run ends when PC passes the loaded image.
	assert.False(emu.Machine.Halted())
	assert.Equal(uint16(1), emu.Machine.Register(vm.RegA))
}

func TestEmulator_RuntimeErrorLine(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	a := &asm.Assembler{}
	prog, err := a.Parse(strings.NewReader(strings.Join([]string{
		"PUSH #1",
		"POP A",
		"POP B", // stack underflow
	}, "\n")))
	assert.NoError(err)
	emu.Program = prog

	assert.NoError(emu.Reset())

	err = emu.Run()
	assert.Error(err)
	assert.ErrorIs(err, vm.ErrStackEmpty)

	var rerr *ErrRuntime
	assert.ErrorAs(err, &rerr)
	assert.Equal(3, rerr.LineNo)
	assert.True(emu.Machine.Halted())
}

func TestEmulator_Restart(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"SIG $11",
		"SIG SIG_HALT",
	}

	doRun(emu, program, t)
	assert.Equal([]uint8{0x11}, emu.Recorder.Codes)

	// Reset rewinds devices and the machine for a clean rerun.
	doRun(emu, program, t)
	assert.Equal([]uint8{0x11}, emu.Recorder.Codes)
}
