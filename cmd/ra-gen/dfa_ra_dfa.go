package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ra-bench/ra-gen/compose"
	"github.com/ra-bench/ra-gen/guard"
	"github.com/ra-bench/ra-gen/ra"
	"github.com/ra-bench/ra-gen/sampler"
)

// dfaRaDfa implements the "dfa-ra-dfa" subcommand: sample a left DFA, a
// gadget, and a right DFA, then concatenate them left-gadget-right via two
// Concat calls — the DFA∘gadgets∘DFA structure.
func dfaRaDfa(args []string) error {
	fs := flag.NewFlagSet("dfa-ra-dfa", flag.ExitOnError)
	common := addCommonFlags(fs)

	nLeft := fs.String("n-left", "5", "left DFA location count range")
	nGadget := fs.String("n-gadget", "3", "gadget location count range")
	nRight := fs.String("n-right", "5", "right DFA location count range")
	alphabet := fs.String("alphabet", "2", "alphabet size range")
	nparams := fs.String("nparams", "0", "parameter count per input symbol, range")
	acceptProb := fs.Float64("accept-prob", 0.5, "per-location acceptance probability")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ra-gen dfa-ra-dfa [options]

Generates DFA-gadgets-DFA structures: Concat(Concat(left, gadget), right).

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	paramOrder := []string{"n_left", "n_gadget", "n_right", "alphabet", "nparams"}
	spec, err := buildTaskSpec(paramOrder, []string{*nLeft, *nGadget, *nRight, *alphabet, *nparams})
	if err != nil {
		return err
	}
	seeds, err := parseSeedRange(*common.seedRange)
	if err != nil {
		return err
	}
	tasks := expandTasks(spec, seeds)

	build := func(params map[string]int64, seed int64) (*ra.RegisterAutomaton, error) {
		rng := seededRand(params, paramOrder, seed)
		letters := alphabetLetters(int(params["alphabet"]))

		left, err := sampler.GenerateRA(sampler.Options{
			NLocations: int(params["n_left"]), Alphabet: letters, NParameters: int(params["nparams"]),
			DefaultGuard: guard.TrueGuard(), AcceptProbability: *acceptProb, RootName: "q0", Seed: rng.Int63(),
		})
		if err != nil {
			return nil, fmt.Errorf("sample left: %w", err)
		}
		gadget, err := sampler.GenerateRA(sampler.Options{
			NLocations: int(params["n_gadget"]), Alphabet: letters, NParameters: int(params["nparams"]),
			DefaultGuard: guard.TrueGuard(), AcceptProbability: *acceptProb, RootName: "g0", Seed: rng.Int63(),
		})
		if err != nil {
			return nil, fmt.Errorf("sample gadget: %w", err)
		}
		right, err := sampler.GenerateRA(sampler.Options{
			NLocations: int(params["n_right"]), Alphabet: letters, NParameters: int(params["nparams"]),
			DefaultGuard: guard.TrueGuard(), AcceptProbability: *acceptProb, RootName: "r0", Seed: rng.Int63(),
		})
		if err != nil {
			return nil, fmt.Errorf("sample right: %w", err)
		}

		mid, err := compose.Concat(left, gadget)
		if err != nil {
			return nil, fmt.Errorf("concat left,gadget: %w", err)
		}
		whole, err := compose.Concat(mid, right)
		if err != nil {
			return nil, fmt.Errorf("concat mid,right: %w", err)
		}
		return whole, nil
	}

	return runBatch(paramOrder, tasks, common, build)
}
