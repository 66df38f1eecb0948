package asm

import (
	"strconv"
	"strings"
	"unicode"
)

// Dest encodes a destination field. Order and repetition of the characters
// are irrelevant. Unknown characters are ignored unless strict is set.
func Dest(field string, strict bool) (dest CodeDest, err error) {
	for _, ch := range field {
		flag, ok := destMap[ch]
		if !ok {
			if strict && !unicode.IsSpace(ch) {
				err = ErrDestInvalid
				return
			}
			continue
		}
		dest |= flag
	}

	return
}

// Comp encodes a computation field. Case and surrounding whitespace are ignored.
func Comp(field string) (comp CodeComp, err error) {
	key := strings.ToUpper(strings.TrimSpace(field))
	comp, ok := compMap[key]
	if !ok {
		err = &ErrMnemonic{Field: "comp", Mnemonic: key}
	}

	return
}

// Jump encodes a jump field. Surrounding whitespace is ignored.
func Jump(field string) (jump CodeJump, err error) {
	key := strings.TrimSpace(field)
	jump, ok := jumpMap[key]
	if !ok {
		err = &ErrMnemonic{Field: "jump", Mnemonic: key}
	}

	return
}

// SplitCompute splits a dest=comp;jump token into its three fields.
// Missing dest and jump fields are empty.
func SplitCompute(token string) (dest, comp, jump string) {
	rest := token
	if before, after, ok := strings.Cut(rest, "="); ok {
		dest = before
		rest = after
	}
	comp, jump, _ = strings.Cut(rest, ";")

	return
}

// EncodeCompute encodes a compute instruction token.
func EncodeCompute(token string, strict bool) (word Word, err error) {
	destField, compField, jumpField := SplitCompute(token)

	dest, err := Dest(destField, strict)
	if err != nil {
		return
	}

	comp, err := Comp(compField)
	if err != nil {
		return
	}

	jump, err := Jump(jumpField)
	if err != nil {
		return
	}

	word = MakeCompute(comp, dest, jump)
	return
}

// parseLiteral parses a base 10 address literal, ignoring surrounding
// whitespace. ok is false when the operand is not a number at all.
func parseLiteral(operand string) (address uint16, ok bool, err error) {
	v64, perr := strconv.ParseInt(strings.TrimSpace(operand), 10, 64)
	if perr != nil {
		if ne, isNum := perr.(*strconv.NumError); isNum && ne.Err == strconv.ErrRange {
			ok = true
			err = ErrAddressRange(v64)
		}
		return
	}

	ok = true
	if v64 < 0 || v64 > ADDRESS_MAX {
		err = ErrAddressRange(v64)
		return
	}

	address = uint16(v64)
	return
}

// IsLiteral reports whether an address operand is numeric.
func IsLiteral(operand string) bool {
	_, ok, _ := parseLiteral(operand)
	return ok
}

// EncodeAddress encodes an address instruction operand, resolving symbols
// through st. Symbols must already be bound.
func EncodeAddress(operand string, st *SymbolTable) (word Word, err error) {
	if len(operand) == 0 {
		err = ErrOperandMissing
		return
	}

	address, ok, err := parseLiteral(operand)
	if err != nil {
		return
	}

	if !ok {
		address, ok = st.Lookup(operand)
		if !ok {
			err = ErrOperand(operand)
			return
		}
		if address > ADDRESS_MAX {
			err = ErrAddressRange(address)
			return
		}
	}

	word = MakeAddress(address)
	return
}
