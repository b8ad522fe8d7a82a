package main

// The reveal session owns all sensitive run state: the immutable assignment
// map, the case-insensitive lookup index, and the ledger of participants who
// have already viewed. Everything lives on the single control goroutine and
// dies with the process.
//
// States:
// - AwaitingQuery: the main prompt. Empty input re-prompts, exit/quit or
//   end-of-input terminates, anything else is a lookup.
// - Disambiguating: entered when a query matches several participants that
//   differ only by letter case. An inner loop accepts a 1-based number, an
//   exact name, or a cancel keyword.
// - Revealing: clears the screen, shows the recipient to exactly one
//   participant, records the view, then waits and clears again.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

type session struct {
	cfg         *Config
	assignments map[string]string
	index       map[string][]string // lowercase -> original spellings, entry order
	viewed      map[string]bool
	in          *bufio.Scanner
	out         io.Writer
	screen      *screen
	sleep       func(time.Duration)
}

func newSession(cfg *Config, assignments map[string]string, names []string, in *bufio.Scanner, out io.Writer, scr *screen) *session {
	index := make(map[string][]string, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		index[key] = append(index[key], name)
	}

	return &session{
		cfg:         cfg,
		assignments: assignments,
		index:       index,
		viewed:      make(map[string]bool),
		in:          in,
		out:         out,
		screen:      scr,
		sleep:       time.Sleep,
	}
}

func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}

	return s.in.Text(), true
}

func isExitWord(query string) bool {
	switch strings.ToLower(query) {
	case "exit", "quit":
		return true
	}

	return false
}

func isCancelWord(selection string) bool {
	switch strings.ToLower(selection) {
	case "cancel", "abort", "back":
		return true
	}

	return false
}

func (s *session) run() error {
	for {
		fmt.Fprint(s.out, "\nEnter your name: ")

		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out, "\nInput closed. Exiting.")
			return nil
		}

		query := strings.TrimSpace(line)

		if query == "" {
			fmt.Fprintln(s.out, "Please enter a non-empty name.")
			continue
		}

		if isExitWord(query) {
			fmt.Fprintln(s.out, "Exiting. Temporary file cleaned up. Happy holidays!")
			return nil
		}

		name, err := s.resolve(query)
		if errors.Is(err, ErrAmbiguousName) {
			name, err = s.disambiguate(s.index[strings.ToLower(query)])
		}

		switch {
		case errors.Is(err, errInputClosed):
			fmt.Fprintln(s.out, "\nInput closed. Exiting.")
			return nil
		case errors.Is(err, ErrSelectionCanceled):
			continue
		case errors.Is(err, ErrNameNotFound):
			fmt.Fprintln(s.out, "Name not found. Please re-check spelling and try again.")
			continue
		}

		if err := s.reveal(name); errors.Is(err, ErrAlreadyViewed) {
			fmt.Fprintln(s.out, "You have already viewed your assignment.")
		}
	}
}

// resolve maps a query to a single participant: an exact match wins
// outright, a unique case-insensitive match resolves to its one spelling,
// and several case-variant spellings require disambiguation.
func (s *session) resolve(query string) (string, error) {
	candidates := s.index[strings.ToLower(query)]

	switch {
	case len(candidates) == 0:
		return "", ErrNameNotFound
	case slices.Contains(candidates, query):
		return query, nil
	case len(candidates) == 1:
		return candidates[0], nil
	}

	return "", ErrAmbiguousName
}

func (s *session) disambiguate(candidates []string) (string, error) {
	fmt.Fprintln(s.out, "Multiple participants match that entry:")
	for i, candidate := range candidates {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, candidate)
	}

	for {
		fmt.Fprint(s.out, "Enter the number or exact name (or type 'cancel' to abort): ")

		line, ok := s.readLine()
		if !ok {
			return "", errInputClosed
		}

		selection := strings.TrimSpace(line)

		if selection == "" {
			fmt.Fprintln(s.out, "Please enter a selection.")
			continue
		}

		if isCancelWord(selection) {
			fmt.Fprintln(s.out, "Selection canceled. Returning to main prompt.")
			return "", ErrSelectionCanceled
		}

		if idx, err := strconv.Atoi(selection); err == nil {
			if idx >= 1 && idx <= len(candidates) {
				return candidates[idx-1], nil
			}

			fmt.Fprintln(s.out, "Number out of range. Try again.")
			continue
		}

		if slices.Contains(candidates, selection) {
			return selection, nil
		}

		fmt.Fprintln(s.out, "Input did not match any option. Try again.")
	}
}

func (s *session) reveal(name string) error {
	if !s.cfg.allowRepeat && s.viewed[name] {
		return ErrAlreadyViewed
	}

	s.screen.clear()
	fmt.Fprintf(s.out, "*** ONLY FOR %s ***\n", name)
	fmt.Fprintf(s.out, "You will gift to: %s\n", s.assignments[name])
	s.viewed[name] = true

	s.waitThenClear()

	return nil
}

func (s *session) waitThenClear() {
	switch {
	case !s.cfg.autoClear:
		fmt.Fprint(s.out, "\n(Press Enter to clear, and pass to next person)")
		_, _ = s.readLine()
	case s.cfg.timeout == 0:
		fmt.Fprintln(s.out, "\n(Clearing now. Please pass the device to the next person.)")
	default:
		fmt.Fprintf(s.out, "\n(This message will be automatically cleared in %d seconds. Please pass the device to the next person afterward.)\n", s.cfg.timeout)
		s.sleep(time.Duration(s.cfg.timeout) * time.Second)
	}

	s.screen.clear()
}
