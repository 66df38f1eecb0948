// Package asm implements the two-pass assembler for the 16-bit Hack machine.
//
// Source lines are normalized (whitespace and // comments removed) and
// classified as label declarations, address instructions (@value) or compute
// instructions (dest=comp;jump). The first pass binds every label to the
// index of the instruction that follows it, so labels may be referenced
// before they are declared. The second pass allocates data addresses for
// unknown symbols, starting at 16, and encodes each instruction as a 16-bit
// word.
//
// Any error aborts the whole run; partial output is never returned.
package asm
