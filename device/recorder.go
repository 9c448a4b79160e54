package device

// Recorder records signal codes without any further effect. It backs the
// signal codes that are reserved but not yet defined.
type Recorder struct {
	Codes []uint8
}

var _ Device = (*Recorder)(nil)

// Signal appends the code to the record.
func (rd *Recorder) Signal(bus Bus, code uint8) (err error) {
	rd.Codes = append(rd.Codes, code)
	return
}

// Rewind clears the record.
func (rd *Recorder) Rewind() {
	rd.Codes = rd.Codes[:0]
}
