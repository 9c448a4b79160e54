package asm

import (
	"errors"

	"github.com/ezrec/vm16/translate"
)

var f = translate.From

var (
	// Directive errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))

	// Label errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrLabelRange     = errors.New(f("label offset exceeds immediate range"))

	// Operand arity errors
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("excessive operands"))
)

// ErrLabelMissing indicates a reference to a label that is never declared.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

func (el ErrLabelMissing) Is(err error) (ok bool) {
	_, ok = err.(ErrLabelMissing)
	return
}

// ErrNumber indicates a malformed numeric literal.
type ErrNumber string

func (en ErrNumber) Error() string {
	return f("'%v' is not a number", string(en))
}

func (en ErrNumber) Is(err error) (ok bool) {
	_, ok = err.(ErrNumber)
	return
}

// ErrToken indicates text that matches no token class.
type ErrToken string

func (et ErrToken) Error() string {
	return f("'%v' is not a valid token", string(et))
}

func (et ErrToken) Is(err error) (ok bool) {
	_, ok = err.(ErrToken)
	return
}

// ErrExpression indicates an invalid $() compile-time expression.
type ErrExpression string

func (ee ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(ee))
}

func (ee ErrExpression) Is(err error) (ok bool) {
	_, ok = err.(ErrExpression)
	return
}

// ErrMnemonic indicates an unknown instruction mnemonic.
type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("'%v' is not an instruction", string(em))
}

func (em ErrMnemonic) Is(err error) (ok bool) {
	_, ok = err.(ErrMnemonic)
	return
}

// ErrOperand indicates an operand of the wrong kind.
type ErrOperand struct {
	Expected string
	Found    Token
}

func (eo *ErrOperand) Error() string {
	return f("expected %v, found %v '%v'", eo.Expected, eo.Found.Kind, eo.Found.Text)
}

// ErrSyntax locates a compile-time error at its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
