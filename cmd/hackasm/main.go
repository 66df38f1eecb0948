// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/hackasm/asm"
	"github.com/ezrec/hackasm/emulator"
	"github.com/ezrec/hackasm/io"
)

const usage = "hackasm [-o out.hack] [-D NAME=EXPR]... [-strict] [-symbols] [-run N] [-v] file.asm"

func main() {
	var output string
	var strict bool
	var symbols bool
	var run int
	var verbose bool

	assembler := &asm.Assembler{}

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v\n", usage)
		flag.PrintDefaults()
	}
	flag.StringVar(&output, "o", "", "Output .hack file ('-' for stdout)")
	flag.BoolVar(&strict, "strict", false, "Reject unknown destination characters")
	flag.BoolVar(&symbols, "symbols", false, "List the symbol table")
	flag.IntVar(&run, "run", 0, "Execute at most N instructions after assembly")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine symbol NAME as EXPR", func(def string) error {
		name, expr, ok := strings.Cut(def, "=")
		if !ok {
			return fmt.Errorf("%v: expected NAME=EXPR", def)
		}
		assembler.Predefine(strings.TrimSpace(name), expr)
		return nil
	})

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	input := flag.Arg(0)

	var lines []string
	var err error
	if input == "-" {
		lines, err = io.ReadLines(os.Stdin)
	} else {
		lines, err = io.ReadSource(os.DirFS(filepath.Dir(input)), filepath.Base(input))
	}
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	assembler.Verbose = verbose
	assembler.Strict = strict

	prog, err := assembler.Assemble(lines)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if symbols {
		for name, address := range prog.Symbols.All() {
			fmt.Printf("%-16v %5d\n", name, address)
		}
	}

	if len(output) == 0 {
		output = io.OutputName(input)
	}

	if output == "-" {
		err = io.WriteLines(os.Stdout, prog.Binary())
		if err == nil {
			fmt.Println()
		}
	} else {
		err = io.WriteBinary(io.DirFS(filepath.Dir(output)), filepath.Base(output), prog.Binary())
		if err == nil {
			fmt.Printf("Generated %v\n", output)
		}
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if run > 0 {
		emu := emulator.NewEmulator()
		emu.Verbose = verbose
		emu.Load(prog)

		done, err := emu.Run(run)
		if err != nil {
			log.Fatal(err)
		}
		if !done {
			log.Printf("%v: not halted after %d instructions", input, emu.Ticks)
		}

		log.Printf("A=%d D=%d PC=%d ticks=%d", emu.A, emu.D, emu.PC, emu.Ticks)
		for n, value := range emu.RAM[:asm.VARIABLE_BASE] {
			log.Printf("R%d=%d", n, int16(value))
		}
	}
}
