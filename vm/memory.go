package vm

// Addressable is the memory bus of the machine. All multi-byte accesses are
// little-endian. Every access is bounds checked; there is no implicit growth.
type Addressable interface {
	// Read returns the byte at addr.
	Read(addr uint16) (uint8, error)
	// Write stores a byte at addr.
	Write(addr uint16, value uint8) error
	// Read2 returns the little-endian word at addr, addr+1.
	Read2(addr uint16) (uint16, error)
	// Write2 stores a little-endian word at addr, addr+1.
	Write2(addr uint16, value uint16) error
	// Load copies data into memory starting at addr.
	Load(data []byte, addr uint16) error
	// Size returns the memory capacity in bytes.
	Size() int
}

// LinearMemory is a flat, fixed-capacity byte store.
type LinearMemory struct {
	bytes []uint8
}

var _ Addressable = (*LinearMemory)(nil)

// NewLinearMemory creates a zeroed linear memory of the given size.
func NewLinearMemory(size int) *LinearMemory {
	return &LinearMemory{
		bytes: make([]uint8, size),
	}
}

// Size returns the memory capacity in bytes.
func (mem *LinearMemory) Size() int {
	return len(mem.bytes)
}

// Read returns the byte at addr.
func (mem *LinearMemory) Read(addr uint16) (value uint8, err error) {
	if int(addr) >= len(mem.bytes) {
		err = ErrBounds(addr)
		return
	}

	value = mem.bytes[addr]
	return
}

// Write stores a byte at addr.
func (mem *LinearMemory) Write(addr uint16, value uint8) (err error) {
	if int(addr) >= len(mem.bytes) {
		err = ErrBounds(addr)
		return
	}

	mem.bytes[addr] = value
	return
}

// Read2 returns the little-endian word stored at addr, addr+1.
func (mem *LinearMemory) Read2(addr uint16) (value uint16, err error) {
	if int(addr)+1 >= len(mem.bytes) {
		err = ErrBounds(addr)
		return
	}

	value = uint16(mem.bytes[addr]) | (uint16(mem.bytes[addr+1]) << 8)
	return
}

// Write2 stores value at addr, addr+1 in little-endian order.
func (mem *LinearMemory) Write2(addr uint16, value uint16) (err error) {
	if int(addr)+1 >= len(mem.bytes) {
		err = ErrBounds(addr)
		return
	}

	mem.bytes[addr] = uint8(value & 0xff)
	mem.bytes[addr+1] = uint8(value >> 8)
	return
}

// Load copies data into memory starting at addr.
func (mem *LinearMemory) Load(data []byte, addr uint16) (err error) {
	if int(addr)+len(data) > len(mem.bytes) {
		err = ErrBounds(uint16(int(addr) + len(data) - 1))
		return
	}

	copy(mem.bytes[addr:], data)
	return
}
