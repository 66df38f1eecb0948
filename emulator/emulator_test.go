package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hackasm/asm"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.Equal(MEMORY_SIZE, len(emu.RAM))

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func doAssemble(program string, t *testing.T) (emu *Emulator) {
	asm := &asm.Assembler{}
	prog, err := asm.Parse(strings.NewReader(program))
	if err != nil {
		t.Fatal(err)
	}

	emu = NewEmulator()
	emu.Load(prog)
	return
}

func TestEmulatorAdd(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble("@2\nD=A\n@3\nD=D+A\n@0\nM=D\n", t)

	done, err := emu.Run(100)
	assert.NoError(err)
	assert.True(done)
	assert.Equal(uint16(5), emu.RAM[0])
	assert.Equal(6, emu.Ticks)
}

const maxProgram = `
// R2 = max(R0, R1)
@R0
D=M
@R1
D=D-M
@OUTPUT_FIRST
D;JGT
@R1
D=M
@OUTPUT_D
0;JMP
(OUTPUT_FIRST)
@R0
D=M
(OUTPUT_D)
@R2
M=D
(INFINITE_LOOP)
@INFINITE_LOOP
0;JMP
`

func TestEmulatorMax(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble(maxProgram, t)

	table := []struct {
		r0, r1, r2 uint16
	}{
		{3, 9, 9},
		{9, 3, 9},
		{7, 7, 7},
		{0xfffe, 1, 1}, // -2
	}

	for _, entry := range table {
		emu.Reset()
		emu.RAM[0] = entry.r0
		emu.RAM[1] = entry.r1

		done, err := emu.Run(100)
		assert.NoError(err)
		assert.True(done)
		assert.Equal(entry.r2, emu.RAM[2], entry)
	}
}

const sumProgram = `
// R1 = 1 + 2 + ... + R0
    @i
    M=1   // i = 1
    @sum
    M=0   // sum = 0
(LOOP)
    @i
    D=M
    @R0
    D=D-M
    @STOP
    D;JGT // if i > R0 goto STOP
    @i
    D=M
    @sum
    M=D+M // sum += i
    @i
    M=M+1
    @LOOP
    0;JMP
(STOP)
    @sum
    D=M
    @R1
    M=D
(END)
    @END
    0;JMP
`

func TestEmulatorSum(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble(sumProgram, t)
	emu.RAM[0] = 10

	done, err := emu.Run(1000)
	assert.NoError(err)
	assert.True(done)
	assert.Equal(uint16(55), emu.RAM[1])
	assert.Equal(uint16(11), emu.RAM[16]) // i
	assert.Equal(uint16(55), emu.RAM[17]) // sum

	// Not enough ticks to finish.
	emu.Reset()
	emu.RAM[0] = 10
	done, err = emu.Run(10)
	assert.NoError(err)
	assert.False(done)
	assert.Equal(10, emu.Ticks)
}

func TestEmulatorKeyboard(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble("@KBD\nD=M\n@SCREEN\nM=D\n", t)
	emu.Keyboard = 'A'

	done, err := emu.Run(10)
	assert.NoError(err)
	assert.True(done)
	assert.Equal(uint16('A'), emu.RAM[asm.SCREEN_BASE])
}

func TestEmulatorErr(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble("@1\n@32767\nM=1\n", t)
	_, err := emu.Run(10)
	assert.ErrorIs(err, ErrAddressInvalid)
	var er *ErrRuntime
	assert.True(errors.As(err, &er))
	assert.Equal(3, er.LineNo)

	emu = doAssemble("@32767\nD=M\n", t)
	_, err = emu.Run(10)
	assert.ErrorIs(err, ErrAddressInvalid)

	emu = NewEmulator()
	emu.Load(&asm.Program{
		Instructions: []asm.Instruction{
			{LineNo: 7, Address: 0, Text: "?", Code: 0x8000},
		},
	})
	_, err = emu.Run(10)
	assert.ErrorIs(err, ErrInstructionInvalid)
	assert.True(errors.As(err, &er))
	assert.Equal(7, er.LineNo)
}

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	const x, y = 5, 3

	table := map[string]uint16{
		"0":   0,
		"1":   1,
		"-1":  0xffff,
		"D":   5,
		"A":   3,
		"!D":  ^uint16(5),
		"!A":  ^uint16(3),
		"-D":  0xfffb,
		"-A":  0xfffd,
		"D+1": 6,
		"A+1": 4,
		"D-1": 4,
		"A-1": 2,
		"D+A": 8,
		"D-A": 2,
		"A-D": 0xfffe,
		"D&A": 1,
		"D|A": 7,
	}

	for expr, expected := range table {
		code, err := asm.Comp(expr)
		assert.NoError(err, expr)
		assert.Equal(expected, alu(x, y, uint16(code)&0x3f), expr)
	}
}

func TestJumps(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		jump string
		lt   bool
		eq   bool
		gt   bool
	}{
		{"", false, false, false},
		{"JGT", false, false, true},
		{"JEQ", false, true, false},
		{"JGE", false, true, true},
		{"JLT", true, false, false},
		{"JNE", true, false, true},
		{"JLE", true, true, false},
		{"JMP", true, true, true},
	}

	for _, entry := range table {
		cond, err := asm.Jump(entry.jump)
		assert.NoError(err)
		assert.Equal(entry.lt, jumps(0x8000, uint16(cond)), entry.jump)
		assert.Equal(entry.eq, jumps(0, uint16(cond)), entry.jump)
		assert.Equal(entry.gt, jumps(1, uint16(cond)), entry.jump)
	}
}
