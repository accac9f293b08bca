// Command ra-gen is the benchmark-corpus generator CLI: one executable
// dispatching to subcommands by name, each driving the same
// sample-compose-convert-serialise-write pipeline over a Cartesian product
// of integer-range parameters. Modeled on cmd/pflow's manual os.Args switch
// (main.go) and per-subcommand flag.FlagSet (sweep.go).
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ra-bench/ra-gen/convert"
	"github.com/ra-bench/ra-gen/monitor"
	"github.com/ra-bench/ra-gen/paramrange"
	"github.com/ra-bench/ra-gen/ra"
	"github.com/ra-bench/ra-gen/runledger"
	"github.com/ra-bench/ra-gen/taskrunner"
	"github.com/ra-bench/ra-gen/wiki"
)

// commonFlags holds the flags every subcommand shares: output location,
// seeding, concurrency, and the optional progress/monitor/ledger wiring.
type commonFlags struct {
	outputDir   *string
	seedRange   *string
	concurrency *int
	force       *bool
	progress    *bool
	monitorAddr *string
	ledgerPath  *string
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		outputDir:   fs.String("out", "out", "output directory for generated XML files"),
		seedRange:   fs.String("seeds", "0", "seed range: 'a', 'a..b', 'a..<b', optionally 'step k'"),
		concurrency: fs.Int("concurrency", 0, "worker pool size (0 = runtime.NumCPU())"),
		force:       fs.Bool("force", false, "overwrite outputs that already exist"),
		progress:    fs.Bool("progress", false, "print a progress line per task"),
		monitorAddr: fs.String("monitor-addr", "", "ws://host:port/path of a monitor.Broadcaster to report progress to"),
		ledgerPath:  fs.String("ledger", "", "path to a runledger SQLite database (default <out>/.ra-gen-ledger.sqlite)"),
	}
}

// pipelineTask is one fully-resolved unit of generation work: a parameter
// assignment plus a seed.
type pipelineTask struct {
	params map[string]int64
	seed   int64
}

// expandTasks takes the Cartesian product of spec's named ranges with the
// seed range, in lexicographic order with the seed varying fastest (so
// runs of a fixed parameter combination are adjacent in the output, and the
// seed is genuinely the innermost axis per the file-layout's naming
// convention).
func expandTasks(spec paramrange.TaskSpec, seeds []int64) []pipelineTask {
	paramCombos := spec.Product()
	tasks := make([]pipelineTask, 0, len(paramCombos)*len(seeds))
	for _, p := range paramCombos {
		for _, s := range seeds {
			tasks = append(tasks, pipelineTask{params: p, seed: s})
		}
	}
	return tasks
}

// outputPathFor builds <outputDir>/<v1>/<v2>/.../<v1>_<v2>..._<seed>.xml,
// with one directory level per parameter in paramOrder and a final filename
// encoding every parameter value plus the seed — so no two tasks ever share
// a path.
func outputPathFor(outputDir string, paramOrder []string, params map[string]int64, seed int64) string {
	segments := make([]string, 0, len(paramOrder)+1)
	nameParts := make([]string, 0, len(paramOrder)+1)
	for _, name := range paramOrder {
		v := strconv.FormatInt(params[name], 10)
		segments = append(segments, v)
		nameParts = append(nameParts, v)
	}
	nameParts = append(nameParts, strconv.FormatInt(seed, 10))
	filename := strings.Join(nameParts, "_") + ".xml"
	return filepath.Join(append([]string{outputDir}, append(segments, filename)...)...)
}

// runBatch drives tasks through build (sampling/composition), conversion to
// Wiki form, XML marshalling, the ledger, and taskrunner's atomic,
// concurrent writer. paramsJSON is used only for the ledger record.
func runBatch(paramOrder []string, tasks []pipelineTask, common *commonFlags, build func(params map[string]int64, seed int64) (*ra.RegisterAutomaton, error)) error {
	if err := os.MkdirAll(*common.outputDir, 0o755); err != nil {
		return fmt.Errorf("ra-gen: create output directory: %w", err)
	}

	ledgerPath := *common.ledgerPath
	if ledgerPath == "" {
		ledgerPath = filepath.Join(*common.outputDir, ".ra-gen-ledger.sqlite")
	}
	ledger, err := runledger.Open(ledgerPath)
	if err != nil {
		return fmt.Errorf("ra-gen: open ledger: %w", err)
	}
	defer ledger.Close()

	var sender *monitor.Sender
	if *common.monitorAddr != "" {
		s, err := monitor.Dial(*common.monitorAddr)
		if err != nil {
			return fmt.Errorf("ra-gen: dial monitor: %w", err)
		}
		defer s.Close()
		sender = s
	}

	total := len(tasks)
	runnerTasks := make([]taskrunner.Task, 0, total)
	for i := range tasks {
		task := tasks[i]
		outputPath := outputPathFor(*common.outputDir, paramOrder, task.params, task.seed)
		runnerTasks = append(runnerTasks, taskrunner.Task{
			OutputPath: outputPath,
			Run: func() ([]byte, error) {
				automaton, err := build(task.params, task.seed)
				if err != nil {
					return nil, fmt.Errorf("build: %w", err)
				}
				w, err := convert.ToWiki(automaton)
				if err != nil {
					return nil, fmt.Errorf("convert to wiki: %w", err)
				}
				data, err := wiki.MarshalXML(w)
				if err != nil {
					return nil, fmt.Errorf("marshal xml: %w", err)
				}
				entry := runledger.Entry{
					OutputPath:   outputPath,
					ParamsJSON:   paramsToJSON(task.params, task.seed),
					Seed:         task.seed,
					NLocations:   len(automaton.Locations()),
					NTransitions: len(automaton.Transitions()),
					CompletedAt:  time.Now().UTC(),
				}
				if err := ledger.Record(entry); err != nil {
					return nil, fmt.Errorf("record ledger: %w", err)
				}
				return data, nil
			},
		})
	}

	opts := taskrunner.Options{
		Concurrency: *common.concurrency,
		Force:       *common.force,
	}
	if *common.progress {
		opts.Progress = os.Stdout
	}
	if sender != nil {
		var completed atomic.Int64
		opts.OnComplete = func(r taskrunner.Result) {
			n := completed.Add(1)
			event := monitor.NewEvent(r.Task.OutputPath, r.Skipped, r.Err, int(n), total, time.Now())
			if err := sender.Send(event); err != nil {
				fmt.Fprintf(os.Stderr, "ra-gen: monitor send: %v\n", err)
			}
		}
	}

	return taskrunner.Run(context.Background(), runnerTasks, opts)
}

// seededRand derives a per-task RNG deterministically from the task's
// parameters and seed (FNV-1a-style mix), so identical invocations always
// sample identical automata regardless of worker-pool scheduling order.
func seededRand(params map[string]int64, paramOrder []string, seed int64) *rand.Rand {
	const fnvPrime = 1099511628211
	h := int64(-3750763034362895579) // FNV-1a 64-bit offset basis, as a signed int64
	for _, name := range paramOrder {
		h = (h ^ params[name]) * fnvPrime
	}
	h = (h ^ seed) * fnvPrime
	return rand.New(rand.NewSource(h))
}

// buildTaskSpec parses one range string per name (same order) into a
// paramrange.TaskSpec, failing on the first malformed range.
func buildTaskSpec(names []string, raws []string) (paramrange.TaskSpec, error) {
	spec := paramrange.TaskSpec{Params: make([]paramrange.NamedRange, 0, len(names))}
	for i, name := range names {
		r, err := paramrange.ParseRange(raws[i])
		if err != nil {
			return paramrange.TaskSpec{}, fmt.Errorf("ra-gen: parse range for %s: %w", name, err)
		}
		spec.Params = append(spec.Params, paramrange.NamedRange{Name: name, Range: r})
	}
	return spec, nil
}

// parseSeedRange parses the --seeds flag into its concrete list of values.
func parseSeedRange(raw string) ([]int64, error) {
	r, err := paramrange.ParseRange(raw)
	if err != nil {
		return nil, fmt.Errorf("ra-gen: parse seed range: %w", err)
	}
	return r.Values(), nil
}

func paramsToJSON(params map[string]int64, seed int64) string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range params {
		if !first {
			b.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&b, "%q:%d", k, v)
	}
	if !first {
		b.WriteByte(',')
	}
	fmt.Fprintf(&b, "%q:%d", "seed", seed)
	b.WriteByte('}')
	return b.String()
}
