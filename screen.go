package main

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// ansiClear wipes the visible screen, homes the cursor, and erases the
// scrollback buffer, so earlier reveals cannot be recovered by scrolling.
const ansiClear = "\x1b[2J\x1b[H\x1b[3J"

type screen struct {
	out io.Writer

	// external also invokes the platform clear command, for terminals
	// that ignore the scrollback-erase sequence.
	external bool
}

func (s *screen) clear() {
	fmt.Fprint(s.out, ansiClear)

	if !s.external {
		return
	}

	name := "clear"
	if runtime.GOOS == "windows" {
		name = "cls"
	}

	cmd := exec.Command(name)
	cmd.Stdout = s.out
	_ = cmd.Run()
}
