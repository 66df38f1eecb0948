// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/hackasm/asm"
)

const (
	MEMORY_SIZE = asm.KEYBOARD + 1 // Data memory, screen and keyboard.

	CODE_COMPUTE = 0b111 << 13 // Compute instruction prefix.
	CODE_A_BIT   = 1 << 12     // Computation reads M instead of A.
)

// ALU control bits, within the 6 bit computation field.
const (
	ALU_ZX = 1 << (5 - iota) // Zero x.
	ALU_NX                   // Negate x.
	ALU_ZY                   // Zero y.
	ALU_NY                   // Negate y.
	ALU_F                    // Add if set, else and.
	ALU_NO                   // Negate output.
)

// Jump condition bits.
const (
	JUMP_LT = 0b100
	JUMP_EQ = 0b010
	JUMP_GT = 0b001
)

// Emulator executes an assembled program, one instruction per tick.
type Emulator struct {
	Verbose bool         // If set, logs every executed instruction.
	Program *asm.Program // Program to execute.

	A, D     uint16   // Registers.
	PC       uint16   // Program counter.
	RAM      []uint16 // Data memory.
	Keyboard uint16   // Value presented at the keyboard address.
	Ticks    int      // Instructions executed since reset.

	rom []asm.Word
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &asm.Program{},
		RAM:     make([]uint16, MEMORY_SIZE),
	}

	return
}

// Load replaces the program and resets the machine.
func (emu *Emulator) Load(prog *asm.Program) {
	emu.Program = prog
	emu.Reset()
}

// Reset clears registers and memory and reloads the program.
func (emu *Emulator) Reset() {
	emu.A, emu.D, emu.PC = 0, 0, 0
	emu.Ticks = 0
	clear(emu.RAM)

	emu.rom = emu.rom[:0]
	for _, code := range emu.Program.Codes() {
		emu.rom = append(emu.rom, code)
	}
}

// LineNo returns the source line number of the next instruction.
func (emu *Emulator) LineNo() int {
	ins, ok := emu.Program.Debug(emu.PC)
	if !ok {
		return 0
	}

	return ins.LineNo
}

// alu computes the output of the ALU for the 6 control bits.
func alu(x, y uint16, control uint16) (out uint16) {
	if control&ALU_ZX != 0 {
		x = 0
	}
	if control&ALU_NX != 0 {
		x = ^x
	}
	if control&ALU_ZY != 0 {
		y = 0
	}
	if control&ALU_NY != 0 {
		y = ^y
	}
	if control&ALU_F != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if control&ALU_NO != 0 {
		out = ^out
	}

	return
}

// jumps reports whether the jump condition holds for an ALU output.
func jumps(out uint16, cond uint16) bool {
	value := int16(out)
	switch {
	case value < 0:
		return cond&JUMP_LT != 0
	case value == 0:
		return cond&JUMP_EQ != 0
	default:
		return cond&JUMP_GT != 0
	}
}

// load reads data memory.
func (emu *Emulator) load(address uint16) (value uint16, err error) {
	if int(address) >= len(emu.RAM) {
		err = ErrAddressInvalid
		return
	}
	if address == asm.KEYBOARD {
		value = emu.Keyboard
		return
	}

	value = emu.RAM[address]
	return
}

// store writes data memory.
func (emu *Emulator) store(address uint16, value uint16) (err error) {
	if int(address) >= len(emu.RAM) {
		err = ErrAddressInvalid
		return
	}

	emu.RAM[address] = value
	return
}

// idle reports whether a jump from the current instruction to target would
// spin forever: a jump without destinations either to itself, or to an
// instruction that reloads its own address into A and falls through to it.
func (emu *Emulator) idle(target uint16, dest uint16) bool {
	if dest != 0 || int(target) >= len(emu.rom) {
		return false
	}

	if target == emu.PC {
		return true
	}

	return target+1 == emu.PC && emu.rom[target] == asm.MakeAddress(target)
}

// Tick executes a single instruction. done is set once the program counter
// leaves the program, or the program enters an idle loop.
func (emu *Emulator) Tick() (done bool, err error) {
	if int(emu.PC) >= len(emu.rom) {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	code := uint16(emu.rom[emu.PC])
	if emu.Verbose {
		log.Printf("%04x: %v A=%04x D=%04x\n", emu.PC, asm.Word(code), emu.A, emu.D)
	}
	emu.Ticks++

	// Address instruction
	if code&0x8000 == 0 {
		emu.A = code
		emu.PC++
		return
	}

	if code&CODE_COMPUTE != CODE_COMPUTE {
		err = ErrInstructionInvalid
		return
	}

	y := emu.A
	if code&CODE_A_BIT != 0 {
		y, err = emu.load(emu.A)
		if err != nil {
			return
		}
	}

	control := (code >> asm.COMP_SHIFT) & 0x3f
	dest := (code >> asm.DEST_SHIFT) & 0x7
	cond := code & 0x7

	out := alu(emu.D, y, control)

	if dest&uint16(asm.DEST_M) != 0 {
		err = emu.store(emu.A, out)
		if err != nil {
			return
		}
	}
	target := emu.A
	if dest&uint16(asm.DEST_A) != 0 {
		emu.A = out
	}
	if dest&uint16(asm.DEST_D) != 0 {
		emu.D = out
	}

	if !jumps(out, cond) {
		emu.PC++
		return
	}

	if emu.idle(target, dest) {
		done = true
		return
	}

	emu.PC = target
	return
}

// Run executes the program until it is done or limit instructions have run.
func (emu *Emulator) Run(limit int) (done bool, err error) {
	for range limit {
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	return
}
