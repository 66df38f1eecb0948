package asm

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/hackasm/internal"
)

const (
	ADDRESS_MAX   = 0x7fff // Largest address encodable in an A-instruction.
	VARIABLE_BASE = 16     // First address handed out to variables.
	SCREEN_BASE   = 0x4000 // Memory mapped screen.
	KEYBOARD      = 0x6000 // Memory mapped keyboard.
)

// Predefined machine symbols.
var sysSymbol = map[string]uint16{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"R0":     0,
	"R1":     1,
	"R2":     2,
	"R3":     3,
	"R4":     4,
	"R5":     5,
	"R6":     6,
	"R7":     7,
	"R8":     8,
	"R9":     9,
	"R10":    10,
	"R11":    11,
	"R12":    12,
	"R13":    13,
	"R14":    14,
	"R15":    15,
	"SCREEN": SCREEN_BASE,
	"KBD":    KEYBOARD,
}

// SymbolTable binds symbol names to 15-bit addresses.
// A binding never changes once made: the first writer wins.
type SymbolTable struct {
	Predefined map[string]uint16 // Machine symbols and predefines.
	Label      map[string]uint16 // Labels, bound to instruction addresses.
	Variable   map[string]uint16 // Variables, bound to data addresses.

	next uint16 // Next free variable address.
}

// NewSymbolTable creates a table seeded with the machine symbols.
func NewSymbolTable() (st *SymbolTable) {
	st = &SymbolTable{
		Predefined: maps.Clone(sysSymbol),
		Label:      make(map[string]uint16, 16),
		Variable:   make(map[string]uint16, 16),
		next:       VARIABLE_BASE,
	}

	return
}

// Lookup returns the address bound to name.
func (st *SymbolTable) Lookup(name string) (address uint16, ok bool) {
	for _, group := range []map[string]uint16{st.Predefined, st.Label, st.Variable} {
		address, ok = group[name]
		if ok {
			return
		}
	}

	return
}

// bind inserts name into group, unless it is already bound anywhere.
func (st *SymbolTable) bind(group map[string]uint16, name string, address uint16) bool {
	if _, ok := st.Lookup(name); ok {
		return false
	}

	group[name] = address
	return true
}

// Define binds a predefined symbol, reporting false if name was already bound.
func (st *SymbolTable) Define(name string, address uint16) bool {
	return st.bind(st.Predefined, name, address)
}

// DefineLabel binds a label, reporting false if name was already bound.
func (st *SymbolTable) DefineLabel(name string, address uint16) bool {
	return st.bind(st.Label, name, address)
}

// AllocateVariable returns the address of name, binding it to the next free
// data address if it is not yet bound.
func (st *SymbolTable) AllocateVariable(name string) (address uint16) {
	address, ok := st.Lookup(name)
	if ok {
		return
	}

	address = st.next
	st.Variable[name] = address
	st.next++

	return
}

// sorted iterates a symbol group in name order.
func sorted(group map[string]uint16) iter.Seq2[string, uint16] {
	return func(yield func(string, uint16) bool) {
		for _, name := range slices.Sorted(maps.Keys(group)) {
			if !yield(name, group[name]) {
				return
			}
		}
	}
}

// All iterates every binding: predefined symbols, then labels, then variables.
func (st *SymbolTable) All() iter.Seq2[string, uint16] {
	return internal.IterSeq2Concat(
		sorted(st.Predefined),
		sorted(st.Label),
		sorted(st.Variable),
	)
}

// Len returns the number of bound symbols.
func (st *SymbolTable) Len() int {
	return len(st.Predefined) + len(st.Label) + len(st.Variable)
}
