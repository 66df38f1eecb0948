package asm

import (
	"iter"
)

// Instruction is a single encoded source instruction.
type Instruction struct {
	LineNo  int    // Source line number, starting at 1.
	Address uint16 // Instruction memory address.
	Text    string // Normalized source text.
	Code    Word   // Encoded machine word.
}

// Program is the output of a successful assembly run.
type Program struct {
	Instructions []Instruction
	Symbols      *SymbolTable // Final symbol bindings.
}

// Debug returns the instruction at an instruction memory address.
func (prog *Program) Debug(address uint16) (ins Instruction, ok bool) {
	if int(address) >= len(prog.Instructions) {
		return
	}

	return prog.Instructions[address], true
}

// Binary returns one 16 digit binary string per instruction.
func (prog *Program) Binary() (bins []string) {
	bins = make([]string, 0, len(prog.Instructions))
	for _, code := range prog.Codes() {
		bins = append(bins, code.String())
	}

	return
}

// Codes iterates the program words by instruction address.
func (prog *Program) Codes() iter.Seq2[uint16, Word] {
	return func(yield func(address uint16, code Word) bool) {
		for _, ins := range prog.Instructions {
			if !yield(ins.Address, ins.Code) {
				return
			}
		}
	}
}
