package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := NewLinearMemory(16)
	assert.Equal(16, mem.Size())

	err := mem.Write(0, 0xAA)
	assert.NoError(err)

	value, err := mem.Read(0)
	assert.NoError(err)
	assert.Equal(uint8(0xAA), value)

	value, err = mem.Read(15)
	assert.NoError(err)
	assert.Equal(uint8(0), value)
}

func TestLinearMemory_Bounds(t *testing.T) {
	assert := assert.New(t)

	mem := NewLinearMemory(16)

	_, err := mem.Read(16)
	assert.ErrorIs(err, ErrBounds(0))

	err = mem.Write(16, 1)
	assert.ErrorIs(err, ErrBounds(0))

	// 16-bit accesses also need addr+1 in bounds.
	_, err = mem.Read2(15)
	assert.ErrorIs(err, ErrBounds(0))

	err = mem.Write2(15, 0x1234)
	assert.ErrorIs(err, ErrBounds(0))

	err = mem.Write2(14, 0x1234)
	assert.NoError(err)
}

func TestLinearMemory_LittleEndian(t *testing.T) {
	assert := assert.New(t)

	mem := NewLinearMemory(16)

	err := mem.Write2(4, 0x1234)
	assert.NoError(err)

	lo, err := mem.Read(4)
	assert.NoError(err)
	assert.Equal(uint8(0x34), lo)

	hi, err := mem.Read(5)
	assert.NoError(err)
	assert.Equal(uint8(0x12), hi)

	value, err := mem.Read2(4)
	assert.NoError(err)
	assert.Equal(uint16(0x1234), value)
}

func TestLinearMemory_Load(t *testing.T) {
	assert := assert.New(t)

	mem := NewLinearMemory(8)

	err := mem.Load([]byte{1, 2, 3}, 2)
	assert.NoError(err)

	value, err := mem.Read(3)
	assert.NoError(err)
	assert.Equal(uint8(2), value)

	err = mem.Load([]byte{1, 2, 3}, 6)
	assert.ErrorIs(err, ErrBounds(0))
}
