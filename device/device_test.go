package device

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vm16/vm"
)

func TestHalt(t *testing.T) {
	assert := assert.New(t)

	m := vm.NewMachine()
	hd := &Halt{}

	assert.False(m.Halted())
	assert.NoError(hd.Signal(m, SIG_HALT))
	assert.True(m.Halted())
}

func TestConsole(t *testing.T) {
	assert := assert.New(t)

	m := vm.NewMachine()
	m.SetRegister(vm.RegA, 0x1248)

	output := &bytes.Buffer{}
	cd := &Console{Output: output}

	assert.NoError(cd.Signal(m, SIG_WRITE))
	assert.Equal([]byte{0x48}, output.Bytes())
	assert.Equal(1, cd.Written())

	cd.Rewind()
	assert.Equal(0, cd.Written())
}

func TestConsole_NilOutput(t *testing.T) {
	assert := assert.New(t)

	m := vm.NewMachine()
	cd := &Console{}

	assert.NoError(cd.Signal(m, SIG_WRITE))
	assert.Equal(0, cd.Written())
}

func TestRecorder(t *testing.T) {
	assert := assert.New(t)

	m := vm.NewMachine()
	rd := &Recorder{}

	assert.NoError(rd.Signal(m, 0x42))
	assert.NoError(rd.Signal(m, 0x07))
	assert.Equal([]uint8{0x42, 0x07}, rd.Codes)

	rd.Rewind()
	assert.Empty(rd.Codes)
}
