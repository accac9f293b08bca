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

// dfaReplaceWithRA implements the "dfa-replace-with-ra" subcommand: sample
// a base DFA and a pool of replacement gadgets, then splice a share of the
// base's transitions out for gadget copies via PartialReplacement.
func dfaReplaceWithRA(args []string) error {
	fs := flag.NewFlagSet("dfa-replace-with-ra", flag.ExitOnError)
	common := addCommonFlags(fs)

	n := fs.String("n", "8", "base DFA location count range")
	nReplacement := fs.String("n-replacement", "3", "replacement gadget location count range")
	alphabet := fs.String("alphabet", "2", "alphabet size range")
	nparams := fs.String("nparams", "0", "parameter count per input symbol, range")
	acceptProb := fs.Float64("accept-prob", 0.5, "per-location acceptance probability")
	share := fs.Float64("share", 0.5, "fraction in [0,1] of the independent edge set to replace")
	nReplacements := fs.Int("replacements", 1, "number of distinct replacement gadgets to round-robin over")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ra-gen dfa-replace-with-ra [options]

Generates a DFA with a share of transitions replaced by gadgets
(compose.PartialReplacement).

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *nReplacements < 1 {
		return fmt.Errorf("ra-gen: --replacements must be at least 1")
	}

	paramOrder := []string{"n", "n_replacement", "alphabet", "nparams"}
	spec, err := buildTaskSpec(paramOrder, []string{*n, *nReplacement, *alphabet, *nparams})
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

		base, err := sampler.GenerateRA(sampler.Options{
			NLocations: int(params["n"]), Alphabet: letters, NParameters: int(params["nparams"]),
			DefaultGuard: guard.TrueGuard(), AcceptProbability: *acceptProb, RootName: "q0", Seed: rng.Int63(),
		})
		if err != nil {
			return nil, fmt.Errorf("sample base: %w", err)
		}

		replacements := make([]*ra.RegisterAutomaton, *nReplacements)
		for i := range replacements {
			r, err := sampler.GenerateRA(sampler.Options{
				NLocations: int(params["n_replacement"]), Alphabet: letters, NParameters: int(params["nparams"]),
				DefaultGuard: guard.TrueGuard(), AcceptProbability: *acceptProb,
				RootName: fmt.Sprintf("g%d_0", i), Seed: rng.Int63(),
			})
			if err != nil {
				return nil, fmt.Errorf("sample replacement %d: %w", i, err)
			}
			replacements[i] = r
		}

		return compose.PartialReplacement(base, *share, replacements, rng)
	}

	return runBatch(paramOrder, tasks, common, build)
}
