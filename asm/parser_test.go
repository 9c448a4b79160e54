package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vm16/vm"
)

// lex is a test helper that tokenizes one line with a fresh lexer.
func lex(t *testing.T, line string) []Token {
	t.Helper()

	tokens, err := NewLexer().TokenizeLine(line, 1)
	assert.NoError(t, err)
	return tokens
}

func TestParse_Instructions(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		line string
		ins  Instruction
	}){
		{"nop", "NOP", Instruction{Kind: IRNop, LineNo: 1}},
		{"push_imm", "PUSH #10", Instruction{Kind: IRPushImm, Value: 10, LineNo: 1}},
		{"push_hex", "PUSH $18", Instruction{Kind: IRPushImm, Value: 24, LineNo: 1}},
		{"push_reg", "PUSH C", Instruction{Kind: IRPushRegister, R1: vm.RegC, LineNo: 1}},
		{"pushr", "PUSHR A", Instruction{Kind: IRPushRegister, R1: vm.RegA, LineNo: 1}},
		{"pop", "POP B", Instruction{Kind: IRPop, R1: vm.RegB, LineNo: 1}},
		{"adds", "ADDS", Instruction{Kind: IRAddStack, LineNo: 1}},
		{"addr", "ADDR A B", Instruction{Kind: IRAddRegister, R1: vm.RegA, R2: vm.RegB, LineNo: 1}},
		{"sig", "SIG $09", Instruction{Kind: IRSignal, Value: 9, LineNo: 1}},
		{"push_label", "PUSH loop", Instruction{Kind: IRPushLabel, Name: "loop", LineNo: 1}},
	}

	for _, entry := range table {
		list, err := parseLine(lex(t, entry.line))
		assert.NoError(err, entry.name)
		assert.Equal([]Instruction{entry.ins}, list, entry.name)
	}
}

func TestParse_Labels(t *testing.T) {
	assert := assert.New(t)

	list, err := parseLine(lex(t, "start: PUSH #1"))
	assert.NoError(err)
	assert.Equal([]Instruction{
		{Kind: IRLabel, Name: "start", LineNo: 1},
		{Kind: IRPushImm, Value: 1, LineNo: 1},
	}, list)

	list, err = parseLine(lex(t, "alone:"))
	assert.NoError(err)
	assert.Equal([]Instruction{{Kind: IRLabel, Name: "alone", LineNo: 1}}, list)
}

func TestParse_Arity(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"PUSH", ErrOperandMissing},
		{"PUSH #1 #2", ErrOperandExtra},
		{"POP", ErrOperandMissing},
		{"NOP #1", ErrOperandExtra},
		{"ADDS A", ErrOperandExtra},
		{"ADDR A", ErrOperandMissing},
		{"ADDR A B C", ErrOperandExtra},
		{"SIG", ErrOperandMissing},
	}

	for _, entry := range table {
		_, err := parseLine(lex(t, entry.line))
		assert.ErrorIs(err, entry.err, entry.line)
	}
}

func TestParse_OperandKind(t *testing.T) {
	assert := assert.New(t)

	for _, line := range []string{
		"POP #1",    // immediate where a register is required
		"PUSHR #1",  // immediate where a register is required
		"ADDR A #1", // immediate where a register is required
		"SIG B",     // register where a value is required
		"SIG target",
	} {
		_, err := parseLine(lex(t, line))
		assert.Error(err, line)

		var operr *ErrOperand
		assert.ErrorAs(err, &operr, line)
	}
}

func TestParse_UnknownMnemonic(t *testing.T) {
	assert := assert.New(t)

	_, err := parseLine(lex(t, "FROB A"))
	assert.ErrorIs(err, ErrMnemonic(""))
}
