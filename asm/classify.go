package asm

import (
	"strings"
)

// Kind is the syntactic class of a normalized source line.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_LABEL   = Kind(0) // label
	KIND_ADDRESS = Kind(1) // address
	KIND_COMPUTE = Kind(2) // compute
)

// Classify determines the kind of a normalized, non-empty token.
// For labels the argument is the label name, for address instructions it is
// the operand after '@', and for compute instructions it is the whole token.
func Classify(token string) (kind Kind, arg string) {
	switch {
	case len(token) >= 2 && strings.HasPrefix(token, "(") && strings.HasSuffix(token, ")"):
		kind = KIND_LABEL
		arg = token[1 : len(token)-1]
	case strings.HasPrefix(token, "@"):
		kind = KIND_ADDRESS
		arg = token[1:]
	default:
		kind = KIND_COMPUTE
		arg = token
	}

	return
}
