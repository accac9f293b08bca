// Package wiki implements the Automata-Wiki interchange model: a
// serialisation-oriented parallel of the internal ra model, the guard
// mini-language's lexer/parser/pretty-printers, and encoding/xml-based
// marshalling of the wire format.
package wiki

import (
	"strconv"

	"github.com/ra-bench/ra-gen/guard"
)

// ExpressionKind distinguishes the two leaves a Wiki guard expression may
// be.
type ExpressionKind int

const (
	ExprVariable ExpressionKind = iota
	ExprConstant
)

// Expression is the leaf type of a WikiGuard: unlike the internal guard
// theory's Symbol, it may directly hold an integer literal.
type Expression struct {
	Kind  ExpressionKind
	Name  string // valid when Kind == ExprVariable
	Value int64  // valid when Kind == ExprConstant
}

// Variable builds a variable-leaf expression.
func Variable(name string) Expression { return Expression{Kind: ExprVariable, Name: name} }

// Constant builds a constant-leaf expression.
func Constant(v int64) Expression { return Expression{Kind: ExprConstant, Value: v} }

func (e Expression) String() string {
	if e.Kind == ExprConstant {
		return strconv.FormatInt(e.Value, 10)
	}
	return e.Name
}

// WikiGuard is the Wiki dialect's guard type: the same generic sum type as
// the internal guard theory, instantiated over Expression leaves.
type WikiGuard = guard.Node[Expression]

// WikiSymbol is an alphabet letter: a name plus its ordered parameter
// names (all implicitly typed int).
type WikiSymbol struct {
	Name   string
	Params []string
}

// Alphabet splits the Wiki alphabet into input and output symbols.
type Alphabet struct {
	Inputs  []WikiSymbol
	Outputs []WikiSymbol
}

// RegisterKind names the Wiki register dialect's only supported type.
const RegisterKindInt = "int"

// WikiRegister is a constant or global register: name, type (always "int"
// in this generator), and a textual initial value.
type WikiRegister struct {
	Name  string
	Type  string
	Value string
}

// WikiLocation is a location: name, and whether it is the automaton's
// unique initial location.
type WikiLocation struct {
	Name    string
	Initial bool
}

// Assignment maps a target register's name to the expression (a parameter
// or register name, or an integer literal) assigned to it when the owning
// transition fires.
type Assignment struct {
	To   string
	From Expression
}

// WikiTransition is a guarded, assigning edge keyed by symbol name. Params
// lists the transition's own bound parameter names (positional, matching
// the symbol's declared arity).
type WikiTransition struct {
	From        string
	To          string
	Symbol      string
	Params      []string
	Guard       WikiGuard // nil means "absent", equivalent to True
	Assignments []Assignment
}

// WikiRA is the full Wiki-form automaton.
type WikiRA struct {
	Alphabet    Alphabet
	Constants   []WikiRegister
	Globals     []WikiRegister
	Locations   []WikiLocation
	Transitions []WikiTransition
}

// InitialLocation returns the unique location marked initial, or ok=false
// if none (or more than one) is present.
func (w *WikiRA) InitialLocation() (WikiLocation, bool) {
	var found WikiLocation
	count := 0
	for _, l := range w.Locations {
		if l.Initial {
			found = l
			count++
		}
	}
	return found, count == 1
}
