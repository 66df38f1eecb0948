// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"slices"
)

// Pass is the state of an assembly run.
type Pass int

//go:generate go tool stringer -linecomment -type=Pass
const (
	PASS_LABELS = Pass(0) // labels
	PASS_ENCODE = Pass(1) // encode
	PASS_DONE   = Pass(2) // done
)

// Source is a normalized, non-label line of the instruction stream.
type Source struct {
	LineNo int    // Line number in the source file.
	Text   string // Normalized instruction text.
}

type predefine struct {
	name string
	expr string
}

// Assembler is a two pass assembler for the Hack machine.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Strict  bool // If set, unknown destination characters are errors.

	Pass    Pass         // Current state.
	Stream  []Source     // Instruction stream built by the label pass.
	Symbols *SymbolTable // Symbol table of the current run.

	predefine []predefine
}

// Predefine adds a symbol bound before the label pass. The expression may
// refer to any symbol bound before it, e.g. "SCREEN + 32".
func (asm *Assembler) Predefine(name string, expr string) {
	asm.predefine = append(asm.predefine, predefine{name: name, expr: expr})
}

// applyPredefines binds the predefines, in the order they were added.
func (asm *Assembler) applyPredefines() (err error) {
	for _, pd := range asm.predefine {
		var value int64
		switch {
		case len(pd.name) == 0:
			err = ErrSymbolEmpty
		default:
			value, err = evalExpr(pd.expr, asm.Symbols)
		}
		if err == nil && (value < 0 || value > ADDRESS_MAX) {
			err = ErrAddressRange(value)
		}
		if err == nil && !asm.Symbols.Define(pd.name, uint16(value)) {
			err = ErrSymbolDuplicate
		}
		if err != nil {
			return &ErrPredefine{Name: pd.name, Err: err}
		}
		if asm.Verbose {
			log.Printf("predefine %v = %v\n", pd.name, value)
		}
	}

	return
}

// Parse reads all of input and assembles it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}

// Assemble translates source lines into a program. The label pass runs over
// every line before the encode pass starts, so labels may be used before
// they are declared.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	asm.Pass = PASS_LABELS
	asm.Stream = asm.Stream[:0]
	asm.Symbols = NewSymbolTable()

	err = asm.applyPredefines()
	if err != nil {
		return
	}

	var source Source

	defer func() {
		if err != nil {
			err = &ErrSyntax{Pass: asm.Pass, LineNo: source.LineNo, Line: source.Text, Err: err}
			prog = nil
		}
	}()

	// Label pass.
	for n, line := range lines {
		source = Source{LineNo: n + 1, Text: Normalize(line)}
		if len(source.Text) == 0 {
			continue
		}

		// Instruction memory holds ADDRESS_MAX+1 words.
		if len(asm.Stream) > ADDRESS_MAX {
			err = ErrAddressRange(len(asm.Stream))
			return
		}

		kind, label := Classify(source.Text)
		if kind != KIND_LABEL {
			asm.Stream = append(asm.Stream, source)
			continue
		}

		if len(label) == 0 {
			err = ErrLabelEmpty
			return
		}

		address := uint16(len(asm.Stream))
		bound := asm.Symbols.DefineLabel(label, address)
		if asm.Verbose {
			log.Printf("%v: %v: (%v) = %v, bound %v\n", asm.Pass, source.LineNo, label, address, bound)
		}
	}

	// Encode pass.
	asm.Pass = PASS_ENCODE
	instructions := make([]Instruction, 0, len(asm.Stream))
	for n, src := range asm.Stream {
		source = src

		var code Word
		kind, arg := Classify(source.Text)
		switch kind {
		case KIND_ADDRESS:
			if len(arg) > 0 && !IsLiteral(arg) {
				asm.Symbols.AllocateVariable(arg)
			}
			code, err = EncodeAddress(arg, asm.Symbols)
		default:
			code, err = EncodeCompute(arg, asm.Strict)
		}
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("%v: %v: %v %v\n", asm.Pass, source.LineNo, code, source.Text)
		}

		instructions = append(instructions, Instruction{
			LineNo:  source.LineNo,
			Address: uint16(n),
			Text:    source.Text,
			Code:    code,
		})
	}

	asm.Pass = PASS_DONE
	prog = &Program{
		Instructions: slices.Clip(instructions),
		Symbols:      asm.Symbols,
	}

	return
}
