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

// dfaSingleDiscriminator implements the "dfa-single-discriminator"
// subcommand: sample a base DFA and a discriminator gadget, then split one
// eligible location of the base into four and splice in two discriminator
// copies (compose.SplitSingle).
func dfaSingleDiscriminator(args []string) error {
	fs := flag.NewFlagSet("dfa-single-discriminator", flag.ExitOnError)
	common := addCommonFlags(fs)

	n := fs.String("n", "8", "base DFA location count range")
	nDiscriminator := fs.String("n-discriminator", "3", "discriminator gadget location count range")
	alphabet := fs.String("alphabet", "2", "alphabet size range")
	nparams := fs.String("nparams", "0", "parameter count per input symbol, range")
	acceptProb := fs.Float64("accept-prob", 0.5, "per-location acceptance probability")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ra-gen dfa-single-discriminator [options]

Generates a DFA with one location split by a discriminator
(compose.SplitSingle). The base DFA must contain at least one non-initial,
non-accepting location with >= 2 non-loop incoming and >= 2 non-loop
outgoing transitions; otherwise the task fails with NoSplittableLocation.

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	paramOrder := []string{"n", "n_discriminator", "alphabet", "nparams"}
	spec, err := buildTaskSpec(paramOrder, []string{*n, *nDiscriminator, *alphabet, *nparams})
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
		discriminator, err := sampler.GenerateRA(sampler.Options{
			NLocations: int(params["n_discriminator"]), Alphabet: letters, NParameters: int(params["nparams"]),
			DefaultGuard: guard.TrueGuard(), AcceptProbability: *acceptProb, RootName: "d0", Seed: rng.Int63(),
		})
		if err != nil {
			return nil, fmt.Errorf("sample discriminator: %w", err)
		}

		return compose.SplitSingle(base, discriminator, rng)
	}

	return runBatch(paramOrder, tasks, common, build)
}
