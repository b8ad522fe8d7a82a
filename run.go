package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
)

const (
	logDate string = `2006-01-02T15:04:05.000-07:00`
)

// finalizer hands the store to the signal watcher once it exists. A signal
// can arrive while the operator is still typing names, before any artifact
// has been created; tearing down a not-yet-registered store is a no-op.
type finalizer struct {
	mu sync.Mutex
	st *store
}

func (f *finalizer) register(st *store) {
	f.mu.Lock()
	f.st = st
	f.mu.Unlock()
}

func (f *finalizer) teardown() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.st == nil {
		return nil
	}

	return f.st.Teardown()
}

// watchInterrupts ends the process as soon as the run context is canceled,
// removing the artifact first. It runs for the whole session: every prompt
// blocks on stdin, so nothing else observes the context.
func watchInterrupts(ctx context.Context, fin *finalizer, exit func(int)) {
	go func() {
		<-ctx.Done()
		_ = fin.teardown()
		exit(0)
	}()
}

func run(ctx context.Context, cfg *Config, args []string) error {
	logf(cfg, "START: trustee v%s", releaseVersion)

	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout
	scr := &screen{out: out, external: true}

	fin := &finalizer{}
	watchInterrupts(ctx, fin, os.Exit)

	fmt.Fprintln(out, "Secret Santa Trustee")

	names, err := collectNames(args, in, out)
	if err != nil {
		return err
	}

	assignments, err := newDeranger(cfg.seed, cfg.seeded).assign(names)
	if err != nil {
		return err
	}

	st, err := newStore(assignments)
	if err != nil {
		return err
	}
	fin.register(st)
	defer st.Teardown()

	logf(cfg, "STORE: %d assignments written to %s", len(assignments), st.path)

	scr.clear()

	fmt.Fprintln(out, "Assignments generated. Private reveal mode started.")
	fmt.Fprintln(out, "Type your NAME to see whom you gift to (case-insensitive).")
	fmt.Fprintln(out, "Type 'exit' or 'quit' to end (temporary file will be deleted).")

	sess := newSession(cfg, assignments, names, in, out, scr)

	if err := sess.run(); err != nil {
		return err
	}

	return st.Teardown()
}
