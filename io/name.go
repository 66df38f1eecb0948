package io

import (
	"strings"
)

const (
	DEFAULT_OUTPUT = "a.hack" // Output name for inputs too short to rename.
	OUTPUT_EXT     = "hack"   // Replaces the three character input extension.
)

// OutputName derives the output file name from the input file name by
// replacing its final three characters, normally "asm", with "hack".
func OutputName(input string) string {
	input = strings.TrimSpace(input)
	if len(input) <= 4 {
		return DEFAULT_OUTPUT
	}

	return input[:len(input)-3] + OUTPUT_EXT
}
