package asm

import (
	"fmt"
)

// Word is a single 16-bit machine instruction.
type Word uint16

// String returns the word as 16 binary digits, most significant first.
func (w Word) String() string {
	return fmt.Sprintf("%016b", uint16(w))
}

const (
	OP_COMPUTE = Word(0b111 << 13) // Compute instruction prefix.

	COMP_SHIFT = 6 // Position of the 7-bit computation field.
	DEST_SHIFT = 3 // Position of the 3-bit destination field.
)

// CodeDest is a destination flag set.
type CodeDest uint8

const (
	DEST_M = CodeDest(0b001)
	DEST_D = CodeDest(0b010)
	DEST_A = CodeDest(0b100)
)

// destMap maps destination characters to their flag bit.
var destMap = map[rune]CodeDest{
	'M': DEST_M,
	'D': DEST_D,
	'A': DEST_A,
}

// CodeJump is a jump condition code.
type CodeJump uint8

// jumpMap maps jump mnemonics to codes. No jump is the empty mnemonic.
var jumpMap = map[string]CodeJump{
	"":    0b000,
	"JGT": 0b001,
	"JEQ": 0b010,
	"JGE": 0b011,
	"JLT": 0b100,
	"JNE": 0b101,
	"JLE": 0b110,
	"JMP": 0b111,
}

// CodeComp is a computation code: the a-bit followed by the six ALU control bits.
type CodeComp uint8

// compMap maps upper case computation expressions to codes.
var compMap = map[string]CodeComp{
	"0":   0b0101010,
	"1":   0b0111111,
	"-1":  0b0111010,
	"D":   0b0001100,
	"A":   0b0110000,
	"!D":  0b0001101,
	"!A":  0b0110001,
	"-D":  0b0001111,
	"-A":  0b0110011,
	"D+1": 0b0011111,
	"A+1": 0b0110111,
	"D-1": 0b0001110,
	"A-1": 0b0110010,
	"D+A": 0b0000010,
	"A+D": 0b0000010,
	"D-A": 0b0010011,
	"A-D": 0b0000111,
	"D&A": 0b0000000,
	"D|A": 0b0010101,

	"M":   0b1110000,
	"!M":  0b1110001,
	"-M":  0b1110011,
	"M+1": 0b1110111,
	"M-1": 0b1110010,
	"D+M": 0b1000010,
	"M+D": 0b1000010,
	"D-M": 0b1010011,
	"M-D": 0b1000111,
	"D&M": 0b1000000,
	"D|M": 0b1010101,
}

// MakeCompute assembles a compute instruction from its fields.
func MakeCompute(comp CodeComp, dest CodeDest, jump CodeJump) Word {
	return OP_COMPUTE |
		Word(comp&0x7f)<<COMP_SHIFT |
		Word(dest&0x7)<<DEST_SHIFT |
		Word(jump&0x7)
}

// MakeAddress assembles an address instruction.
func MakeAddress(address uint16) Word {
	return Word(address & ADDRESS_MAX)
}
