package asm

import (
	"errors"

	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	// Encoding errors
	ErrUnresolvedMnemonic = errors.New(f("unresolved mnemonic"))
	ErrMalformedOperand   = errors.New(f("malformed operand"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrDestInvalid        = errors.New(f("destination invalid"))

	// Symbol errors
	ErrLabelEmpty      = errors.New(f("label name empty"))
	ErrSymbolDuplicate = errors.New(f("symbol duplicated"))
	ErrSymbolEmpty     = errors.New(f("symbol name empty"))
)

// ErrMnemonic reports a computation or jump field missing from its table.
type ErrMnemonic struct {
	Field    string // "comp" or "jump"
	Mnemonic string
}

func (err *ErrMnemonic) Error() string {
	return f("%v '%v' unknown", err.Field, err.Mnemonic)
}

func (err *ErrMnemonic) Unwrap() error {
	return ErrUnresolvedMnemonic
}

// ErrOperand is an address operand that is neither a number nor a bound symbol.
type ErrOperand string

func (err ErrOperand) Error() string {
	return f("'%v' is not a number or symbol", string(err))
}

func (err ErrOperand) Unwrap() error {
	return ErrMalformedOperand
}

// ErrAddressRange is a numeric value that does not fit in 15 bits.
type ErrAddressRange int64

func (err ErrAddressRange) Error() string {
	return f("address %d out of range 0..%d", int64(err), ADDRESS_MAX)
}

// ErrParseExpression is a predefine expression that does not evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}

// ErrSyntax locates an error in the source program.
type ErrSyntax struct {
	Pass   Pass
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("%v: line %d '%v' %v", err.Pass, err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrPredefine reports a failed command line symbol definition.
type ErrPredefine struct {
	Name string
	Err  error
}

func (err *ErrPredefine) Error() string {
	return f("predefine %v: %v", err.Name, err.Err)
}

func (err *ErrPredefine) Unwrap() error {
	return err.Err
}
