package asm

import (
	"github.com/ezrec/vm16/vm"
)

// CodeGen is the two-pass translator from the parsed instruction list to
// the binary image. Pass 1 lays out byte offsets and fills the label table;
// pass 2 emits encodings against the completed table, so a label may be
// referenced before its declaration.
type CodeGen struct {
	Labels map[string]int // Map of label names to byte offsets.
}

// layout is pass 1: walk the list tracking a running byte offset, recording
// each label at the offset it occupies in program order. Every code-emitting
// instruction is exactly two bytes; label declarations are zero.
func (cg *CodeGen) layout(list []Instruction) (err error) {
	cg.Labels = make(map[string]int, 16)

	offset := 0
	for _, ins := range list {
		if !ins.EmitsCode() {
			_, ok := cg.Labels[ins.Name]
			if ok {
				err = &ErrSyntax{LineNo: ins.LineNo, Line: ins.Source(), Err: ErrLabelDuplicate}
				return
			}
			cg.Labels[ins.Name] = offset
			continue
		}
		offset += 2
	}

	return
}

// encode is the pass 2 step for a single node.
func (cg *CodeGen) encode(ins Instruction) (code vm.Instruction, err error) {
	switch ins.Kind {
	case IRNop:
		code = vm.Instruction{Op: vm.OpNop}
	case IRPushImm:
		code = vm.Instruction{Op: vm.OpPush, Arg: ins.Value}
	case IRPushLabel:
		offset, ok := cg.Labels[ins.Name]
		if !ok {
			err = ErrLabelMissing(ins.Name)
			return
		}
		if offset > 0xff {
			err = ErrLabelRange
			return
		}
		code = vm.Instruction{Op: vm.OpPush, Arg: uint8(offset)}
	case IRPushRegister:
		code = vm.Instruction{Op: vm.OpPushRegister, Arg: uint8(ins.R1)}
	case IRPop:
		code = vm.Instruction{Op: vm.OpPopRegister, Arg: uint8(ins.R1)}
	case IRAddStack:
		code = vm.Instruction{Op: vm.OpAddStack}
	case IRAddRegister:
		code = vm.Instruction{Op: vm.OpAddRegister, Arg: vm.PackRegisters(ins.R1, ins.R2)}
	case IRSignal:
		code = vm.Instruction{Op: vm.OpSignal, Arg: ins.Value}
	}

	return
}

// Generate runs both passes over the instruction list and returns the
// assembled program.
func (cg *CodeGen) Generate(list []Instruction) (prog *Program, err error) {
	err = cg.layout(list)
	if err != nil {
		return
	}

	prog = &Program{
		Labels: cg.Labels,
	}

	pc := 0
	for _, ins := range list {
		if !ins.EmitsCode() {
			continue
		}

		var code vm.Instruction
		code, err = cg.encode(ins)
		if err != nil {
			err = &ErrSyntax{LineNo: ins.LineNo, Line: ins.Source(), Err: err}
			prog = nil
			return
		}

		prog.Ops = append(prog.Ops, OpRecord{
			LineNo: ins.LineNo,
			Pc:     pc,
			Words:  ins.Words,
			Code:   code,
		})
		pc += 2
	}

	return
}
