package taskrunner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestRunWritesOutputsAtomically(t *testing.T) {
	dir := t.TempDir()
	var tasks []Task
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, "sub", "out"+string(rune('a'+i))+".txt")
		payload := []byte{byte(i)}
		tasks = append(tasks, Task{
			OutputPath: path,
			Run:        func() ([]byte, error) { return payload, nil },
		})
	}

	if err := Run(context.Background(), tasks, Options{Concurrency: 2}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i, task := range tasks {
		data, err := os.ReadFile(task.OutputPath)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", task.OutputPath, err)
		}
		if len(data) != 1 || data[0] != byte(i) {
			t.Fatalf("contents = %v, want [%d]", data, i)
		}
		entries, err := os.ReadDir(filepath.Dir(task.OutputPath))
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		for _, e := range entries {
			if bytes.HasPrefix([]byte(e.Name()), []byte("~")) {
				t.Fatalf("leftover temp file %q", e.Name())
			}
		}
	}
}

func TestRunSkipsExistingOutputsUnlessForced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "existing.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ran := false
	task := Task{OutputPath: path, Run: func() ([]byte, error) {
		ran = true
		return []byte("new"), nil
	}}

	if err := Run(context.Background(), []Task{task}, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ran {
		t.Fatal("Run invoked Task.Run for an existing output without Force")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "old" {
		t.Fatalf("contents = %q, want unchanged %q", data, "old")
	}

	if err := Run(context.Background(), []Task{task}, Options{Force: true}); err != nil {
		t.Fatalf("Run (forced): %v", err)
	}
	if !ran {
		t.Fatal("Run did not invoke Task.Run with Force set")
	}
	data, _ = os.ReadFile(path)
	if string(data) != "new" {
		t.Fatalf("contents = %q, want %q after forced rerun", data, "new")
	}
}

func TestRunPropagatesTaskError(t *testing.T) {
	dir := t.TempDir()
	wantErr := errors.New("boom")
	task := Task{
		OutputPath: filepath.Join(dir, "bad.txt"),
		Run:        func() ([]byte, error) { return nil, wantErr },
	}
	err := Run(context.Background(), []Task{task}, Options{})
	if err == nil || !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapping %v", err, wantErr)
	}
}

func TestRunReportsProgressAndCompletionHook(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	var mu sync.Mutex
	var results []Result

	tasks := []Task{
		{OutputPath: filepath.Join(dir, "a.txt"), Run: func() ([]byte, error) { return []byte("a"), nil }},
		{OutputPath: filepath.Join(dir, "b.txt"), Run: func() ([]byte, error) { return []byte("b"), nil }},
	}

	err := Run(context.Background(), tasks, Options{
		Progress: &buf,
		OnComplete: func(r Result) {
			mu.Lock()
			defer mu.Unlock()
			results = append(results, r)
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("OnComplete fired %d times, want 2", len(results))
	}
	if buf.Len() == 0 {
		t.Fatal("Progress writer received no output")
	}
}
