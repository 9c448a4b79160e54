package asm

import (
	"github.com/ezrec/vm16/vm"
)

// expectNone checks that an instruction has no operands.
func expectNone(operands []Token) (err error) {
	if len(operands) != 0 {
		err = ErrOperandExtra
	}

	return
}

// expectOne checks that an instruction has exactly one operand.
func expectOne(operands []Token) (t Token, err error) {
	if len(operands) == 0 {
		err = ErrOperandMissing
		return
	}
	if len(operands) > 1 {
		err = ErrOperandExtra
		return
	}

	t = operands[0]
	return
}

// expectTwo checks that an instruction has exactly two operands.
func expectTwo(operands []Token) (a, b Token, err error) {
	if len(operands) < 2 {
		err = ErrOperandMissing
		return
	}
	if len(operands) > 2 {
		err = ErrOperandExtra
		return
	}

	a = operands[0]
	b = operands[1]
	return
}

// expectRegister checks that a token names a register.
func expectRegister(t Token) (r vm.Register, err error) {
	if t.Kind != TokenRegister {
		err = &ErrOperand{Expected: "register", Found: t}
		return
	}

	return vm.RegisterFromName(t.Text)
}

// parseLine shapes one line's tokens into IR nodes: zero or more label
// declarations followed by at most one instruction. Label references are
// recognized but deliberately not resolved here; that is the code
// generator's job, which is what makes forward references legal.
func parseLine(tokens []Token) (list []Instruction, err error) {
	i := 0
	for i < len(tokens) && tokens[i].Kind == TokenLabel {
		list = append(list, Instruction{
			Kind:   IRLabel,
			Name:   tokens[i].Text,
			LineNo: tokens[i].LineNo,
		})
		i++
	}

	if i == len(tokens) {
		return
	}

	head := tokens[i]
	if head.Kind != TokenKeyword {
		err = ErrMnemonic(head.Text)
		return
	}
	operands := tokens[i+1:]

	ins := Instruction{LineNo: head.LineNo}

	switch head.Text {
	case "NOP":
		err = expectNone(operands)
		ins.Kind = IRNop
	case "ADDS":
		err = expectNone(operands)
		ins.Kind = IRAddStack
	case "PUSH":
		var t Token
		t, err = expectOne(operands)
		if err != nil {
			return
		}
		switch t.Kind {
		case TokenInt, TokenHex:
			ins.Kind = IRPushImm
			ins.Value = t.Value
		case TokenRegister:
			ins.Kind = IRPushRegister
			ins.R1, err = expectRegister(t)
		case TokenIdent:
			ins.Kind = IRPushLabel
			ins.Name = t.Text
		default:
			err = &ErrOperand{Expected: "value, register or label", Found: t}
		}
	case "PUSHR":
		var t Token
		t, err = expectOne(operands)
		if err != nil {
			return
		}
		ins.Kind = IRPushRegister
		ins.R1, err = expectRegister(t)
	case "POP":
		var t Token
		t, err = expectOne(operands)
		if err != nil {
			return
		}
		ins.Kind = IRPop
		ins.R1, err = expectRegister(t)
	case "ADDR":
		var a, b Token
		a, b, err = expectTwo(operands)
		if err != nil {
			return
		}
		ins.Kind = IRAddRegister
		ins.R1, err = expectRegister(a)
		if err != nil {
			return
		}
		ins.R2, err = expectRegister(b)
	case "SIG":
		var t Token
		t, err = expectOne(operands)
		if err != nil {
			return
		}
		if t.Kind != TokenInt && t.Kind != TokenHex {
			err = &ErrOperand{Expected: "value", Found: t}
			return
		}
		ins.Kind = IRSignal
		ins.Value = t.Value
	default:
		err = ErrMnemonic(head.Text)
	}
	if err != nil {
		return
	}

	list = append(list, ins)
	return
}
