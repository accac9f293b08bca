package convert

import (
	"fmt"
	"sort"

	"github.com/ra-bench/ra-gen/guard"
	"github.com/ra-bench/ra-gen/ra"
	"github.com/ra-bench/ra-gen/wiki"
)

const (
	outAccept = "OAccept"
	outReject = "OReject"
	outError  = "OError"

	trapLocation   = "trap"
	ioTrapLocation = "io_trap"
)

// ToWiki totalises and signal-encodes a into the Wiki interchange model:
// the fixed zero-arity output alphabet {OAccept, OReject, OError}, an input
// alphabet of I<label> symbols (one per distinct LabeledSymbol used in a,
// plus any caller-supplied bonusInputs), every original transition split
// into an input-then-output pair through a fresh intermediate location, and
// a trap/io_trap pair making the result input-complete over its declared
// alphabet. All internal registers are emitted as globals valued "0";
// constants is always empty in the emitted form.
func ToWiki(a *ra.RegisterAutomaton, bonusInputs ...wiki.WikiSymbol) (*wiki.WikiRA, error) {
	inputs, paramsByLabel := collectInputSymbols(a)
	inputs = append(inputs, bonusInputs...)

	w := &wiki.WikiRA{
		Alphabet: wiki.Alphabet{
			Inputs: inputs,
			Outputs: []wiki.WikiSymbol{
				{Name: outAccept}, {Name: outReject}, {Name: outError},
			},
		},
	}

	for _, reg := range a.Registers() {
		w.Globals = append(w.Globals, wiki.WikiRegister{Name: reg.Name, Type: wiki.RegisterKindInt, Value: "0"})
	}

	initName := a.InitialLocation().Name
	for _, loc := range a.Locations() {
		w.Locations = append(w.Locations, wiki.WikiLocation{Name: loc.Name, Initial: loc.Name == initName})
	}

	// Existing Wiki "Is" transitions emitted per (location, label), needed
	// by the sink-insertion pass below to decide coverage per symbol.
	existingBySymbolAtLocation := make(map[string][]wiki.WikiGuard)

	for id, t := range a.Transitions() {
		ioName := fmt.Sprintf("io_%d_%s_%s_%s", id, t.From, t.Symbol.Label, t.To)
		w.Locations = append(w.Locations, wiki.WikiLocation{Name: ioName})

		paramNames := paramsByLabel[t.Symbol.Label]
		wg := internalGuardToWiki(t.Guard)

		w.Transitions = append(w.Transitions, wiki.WikiTransition{
			From:   t.From,
			To:     ioName,
			Symbol: "I" + t.Symbol.Label,
			Params: paramNames,
			Guard:  wg,
		})

		toLoc, _ := a.Location(t.To)
		outSym := outReject
		if toLoc != nil && toLoc.IsAccepting {
			outSym = outAccept
		}
		w.Transitions = append(w.Transitions, wiki.WikiTransition{
			From:   ioName,
			To:     toLoc.Name,
			Symbol: outSym,
			Guard:  guard.True[wiki.Expression]{},
		})

		key := t.From + "\x00" + "I" + t.Symbol.Label
		existingBySymbolAtLocation[key] = append(existingBySymbolAtLocation[key], wg)
	}

	w.Locations = append(w.Locations, wiki.WikiLocation{Name: trapLocation}, wiki.WikiLocation{Name: ioTrapLocation})

	labels := make([]string, 0, len(paramsByLabel))
	for _, sym := range inputs {
		labels = append(labels, sym.Name)
	}
	sort.Strings(labels) // a fixed, deterministic scan order over the declared input alphabet

	for _, loc := range a.Locations() {
		for _, inSym := range labels {
			key := loc.Name + "\x00" + inSym
			guards, ok := existingBySymbolAtLocation[key]
			params := paramNamesFor(inputs, inSym)

			if !ok {
				w.Transitions = append(w.Transitions, wiki.WikiTransition{
					From: loc.Name, To: ioTrapLocation, Symbol: inSym, Params: params,
					Guard: guard.True[wiki.Expression]{},
				})
				continue
			}
			if allTrue(guards) {
				continue
			}
			combined := guard.And[wiki.Expression]{Children: guards}
			inverted, err := guard.Invert[wiki.Expression](combined)
			if err != nil {
				return nil, fmt.Errorf("convert: negating coverage guard at %s on %s: %w", loc.Name, inSym, err)
			}
			w.Transitions = append(w.Transitions, wiki.WikiTransition{
				From: loc.Name, To: ioTrapLocation, Symbol: inSym, Params: params,
				Guard: inverted,
			})
		}
	}

	w.Transitions = append(w.Transitions, wiki.WikiTransition{
		From: ioTrapLocation, To: trapLocation, Symbol: outError,
		Guard: guard.True[wiki.Expression]{},
	})

	return w, nil
}

// collectInputSymbols returns one WikiSymbol per distinct LabeledSymbol
// label used across a's transitions, in first-use order, alongside a
// label->paramNames lookup used when emitting coverage transitions.
func collectInputSymbols(a *ra.RegisterAutomaton) ([]wiki.WikiSymbol, map[string][]string) {
	var inputs []wiki.WikiSymbol
	paramsByLabel := make(map[string][]string)
	seen := make(map[string]bool)
	for _, t := range a.Transitions() {
		if seen[t.Symbol.Label] {
			continue
		}
		seen[t.Symbol.Label] = true
		names := make([]string, t.Symbol.Arity())
		for i := range names {
			names[i] = t.Symbol.At(i).Name
		}
		paramsByLabel[t.Symbol.Label] = names
		inputs = append(inputs, wiki.WikiSymbol{Name: "I" + t.Symbol.Label, Params: names})
	}
	return inputs, paramsByLabel
}

func paramNamesFor(inputs []wiki.WikiSymbol, name string) []string {
	for _, s := range inputs {
		if s.Name == name {
			return s.Params
		}
	}
	return nil
}

func allTrue(guards []wiki.WikiGuard) bool {
	for _, g := range guards {
		if _, ok := g.(guard.True[wiki.Expression]); !ok {
			return false
		}
	}
	return true
}
