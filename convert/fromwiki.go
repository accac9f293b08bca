package convert

import (
	"fmt"
	"strconv"

	"github.com/ra-bench/ra-gen/guard"
	"github.com/ra-bench/ra-gen/ra"
	"github.com/ra-bench/ra-gen/symbol"
	"github.com/ra-bench/ra-gen/wiki"
)

// FromWiki converts a WikiRA into the internal model. Constants and globals
// both become registers (constants additionally populate a value-to-register
// side table, so that integer literals in guards/assignments resolve to the
// register that represents them); acceptance is always false in the
// converted model, since the Wiki form carries no acceptance attribute of
// its own (it is reconstructed on the wire via OAccept/OReject, see ToWiki).
func FromWiki(w *wiki.WikiRA) (*ra.RegisterAutomaton, error) {
	initLoc, ok := w.InitialLocation()
	if !ok {
		return nil, ErrNoUniqueInitialLocation
	}

	b := ra.NewBuilder(initLoc.Name)
	for _, loc := range w.Locations {
		if loc.Name == initLoc.Name {
			continue
		}
		if _, err := b.AddLocation(loc.Name, false); err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}
	}

	valueToRegister := make(map[int64]string)
	registerNames := make(map[string]symbol.Symbol)
	for _, c := range w.Constants {
		v, err := strconv.ParseInt(c.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("convert: constant %q: %w", c.Name, err)
		}
		initial, err := guard.NumFromInt64(v)
		if err != nil {
			return nil, fmt.Errorf("convert: constant %q: %w", c.Name, err)
		}
		if _, err := b.AddRegister(c.Name, &initial); err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}
		valueToRegister[v] = c.Name
		registerNames[c.Name] = symbol.Register(c.Name)
	}
	for _, g := range w.Globals {
		var initialPtr *guard.Num
		if g.Value != "" {
			v, err := strconv.ParseInt(g.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("convert: global %q: %w", g.Name, err)
			}
			initial, err := guard.NumFromInt64(v)
			if err != nil {
				return nil, fmt.Errorf("convert: global %q: %w", g.Name, err)
			}
			initialPtr = &initial
		}
		if _, err := b.AddRegister(g.Name, initialPtr); err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}
		registerNames[g.Name] = symbol.Register(g.Name)
	}

	for _, t := range w.Transitions {
		sym, err := symbol.NewLabeledSymbol(t.Symbol, t.Params...)
		if err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}

		nameToSymbol := make(map[string]symbol.Symbol, len(registerNames)+len(t.Params))
		for name, s := range registerNames {
			nameToSymbol[name] = s
		}
		for _, p := range t.Params {
			nameToSymbol[p] = symbol.Parameter(p)
		}

		g, err := wikiGuardToInternal(t.Guard, nameToSymbol, valueToRegister)
		if err != nil {
			return nil, fmt.Errorf("convert: transition %s--%s-->%s: %w", t.From, t.Symbol, t.To, err)
		}

		var assignment map[string]symbol.Symbol
		if len(t.Assignments) > 0 {
			assignment = make(map[string]symbol.Symbol, len(t.Assignments))
			for _, a := range t.Assignments {
				src, err := resolveExpression(a.From, nameToSymbol, valueToRegister)
				if err != nil {
					return nil, fmt.Errorf("convert: assignment to %q: %w", a.To, err)
				}
				assignment[a.To] = src
			}
		}

		if _, err := b.AddTransition(t.From, sym, g, assignment, t.To); err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}
	}

	return b.Done(), nil
}
