// Package taskrunner executes a batch of independent generation pipelines
// across a bounded worker pool (golang.org/x/sync/errgroup), writes each
// task's output atomically, and reports plain-text progress the way the
// teacher's CLI commands report results (fmt.Fprintf to stdout, no curses
// or TUI library).
package taskrunner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Task is one concrete (parameter combination, seed) unit of work: Run
// produces the bytes to write at OutputPath, or an error.
type Task struct {
	OutputPath string
	Run        func() ([]byte, error)
}

// Options configures a Run call.
type Options struct {
	// Concurrency bounds the worker pool. Zero defaults to runtime.NumCPU().
	Concurrency int

	// Force overwrites outputs that already exist on disk (by default an
	// existing output file is left untouched and its task is skipped).
	Force bool

	// Progress, if non-nil, receives one line per completed, skipped or
	// failed task.
	Progress io.Writer

	// OnComplete, if non-nil, is called after each task finishes
	// (succeeded, failed, or was skipped) — the hook the monitor package's
	// websocket broadcaster attaches to.
	OnComplete func(Result)
}

// Result reports the outcome of one task.
type Result struct {
	Task    Task
	Skipped bool
	Err     error
}

// Run executes tasks across a bounded worker pool. A task whose output file
// already exists is skipped unless opts.Force is set. The first task error
// is returned and cancels the group's context, matching errgroup.Group's
// fail-fast semantics: tasks that have not started yet return without
// running, while tasks already running finish; already-written outputs are not
// rolled back (each is atomic individually, per Task).
func Run(ctx context.Context, tasks []Task, opts Options) error {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	total := len(tasks)
	var completed atomic.Int64

	for i := range tasks {
		task := tasks[i]
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			if !opts.Force {
				if _, err := os.Stat(task.OutputPath); err == nil {
					reportProgress(opts, task, total, &completed, Result{Task: task, Skipped: true})
					return nil
				}
			}

			data, err := task.Run()
			if err != nil {
				result := Result{Task: task, Err: fmt.Errorf("taskrunner: %s: %w", task.OutputPath, err)}
				reportProgress(opts, task, total, &completed, result)
				return result.Err
			}
			if err := writeAtomic(task.OutputPath, data); err != nil {
				result := Result{Task: task, Err: fmt.Errorf("taskrunner: %s: %w", task.OutputPath, err)}
				reportProgress(opts, task, total, &completed, result)
				return result.Err
			}

			reportProgress(opts, task, total, &completed, Result{Task: task})
			return nil
		})
	}

	return g.Wait()
}

func reportProgress(opts Options, _ Task, total int, completed *atomic.Int64, result Result) {
	n := completed.Add(1)
	if opts.Progress != nil {
		status := "done"
		if result.Skipped {
			status = "skip"
		} else if result.Err != nil {
			status = "fail"
		}
		fmt.Fprintf(opts.Progress, "[%d/%d] %s %s\n", n, total, status, result.Task.OutputPath)
	}
	if opts.OnComplete != nil {
		opts.OnComplete(result)
	}
}

// writeAtomic writes data to path via a sibling temp file named after the
// current process id, then renames it into place, so a crash or
// cancellation never leaves a partially written output at path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp := filepath.Join(dir, fmt.Sprintf("~%s.%d", filepath.Base(path), os.Getpid()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s -> %s: %w", tmp, path, err)
	}
	return nil
}
