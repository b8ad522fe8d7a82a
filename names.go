package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// parseNames splits a comma-separated entry into trimmed, non-empty names.
func parseNames(raw string) []string {
	var names []string

	for _, field := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(field); name != "" {
			names = append(names, name)
		}
	}

	return names
}

// dedupeNames drops exact duplicates, preserving first-seen order. Names
// differing only by letter case remain distinct participants.
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	uniq := make([]string, 0, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		uniq = append(uniq, name)
	}

	return uniq
}

// collectNames returns the de-duplicated participant list, taken from the
// command line when arguments were given and prompted for otherwise.
func collectNames(args []string, in *bufio.Scanner, out io.Writer) ([]string, error) {
	var names []string

	if len(args) > 0 {
		for _, arg := range args {
			if name := strings.TrimSpace(arg); name != "" {
				names = append(names, name)
			}
		}
	} else {
		fmt.Fprintln(out, "Enter all participant names, comma-separated (at least 2):")
		fmt.Fprint(out, "> ")

		if !in.Scan() {
			return nil, ErrInsufficientParticipants
		}

		names = parseNames(in.Text())
	}

	names = dedupeNames(names)

	if len(names) < 2 {
		return nil, ErrInsufficientParticipants
	}

	return names, nil
}
