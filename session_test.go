package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestSession builds a session over scripted input, capturing output and
// recording sleeps instead of performing them.
func newTestSession(cfg *Config, assignments map[string]string, names []string, input string) (*session, *bytes.Buffer, *[]time.Duration) {
	var out bytes.Buffer
	var slept []time.Duration

	s := newSession(cfg, assignments, names, bufio.NewScanner(strings.NewReader(input)), &out, &screen{out: &out})
	s.sleep = func(d time.Duration) {
		slept = append(slept, d)
	}

	return s, &out, &slept
}

var (
	testNames       = []string{"Alice", "alice", "Bob"}
	testAssignments = map[string]string{"Alice": "alice", "alice": "Bob", "Bob": "Alice"}
)

func TestResolve(t *testing.T) {
	s, _, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "")

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr error
	}{
		{"exact match", "Bob", "Bob", nil},
		{"case-insensitive unique", "BOB", "Bob", nil},
		{"exact match among case variants", "alice", "alice", nil},
		{"ambiguous case variants", "ALICE", "", ErrAmbiguousName},
		{"unknown name", "Carol", "", ErrNameNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.resolve(tt.query)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRunRevealsRecipient(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "bob\nexit\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "*** ONLY FOR Bob ***")
	require.Contains(t, out.String(), "You will gift to: Alice")
	require.Contains(t, out.String(), "Clearing now")
}

func TestRunDisambiguationByOrdinal(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "ALICE\n2\nexit\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "Multiple participants match that entry:")
	require.Contains(t, out.String(), "1. Alice")
	require.Contains(t, out.String(), "2. alice")
	require.Contains(t, out.String(), "*** ONLY FOR alice ***")
	require.Contains(t, out.String(), "You will gift to: Bob")
}

func TestRunDisambiguationByExactName(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "ALICE\nAlice\nexit\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "*** ONLY FOR Alice ***")
	require.Contains(t, out.String(), "You will gift to: alice")
}

func TestRunDisambiguationCancel(t *testing.T) {
	for _, word := range []string{"cancel", "abort", "BACK"} {
		s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "ALICE\n"+word+"\nexit\n")

		require.NoError(t, s.run())
		require.Contains(t, out.String(), "Selection canceled. Returning to main prompt.")
		require.NotContains(t, out.String(), "You will gift to:")
	}
}

func TestRunDisambiguationRejectsBadSelections(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "ALICE\n9\nCarol\n\n1\nexit\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "Number out of range. Try again.")
	require.Contains(t, out.String(), "Input did not match any option. Try again.")
	require.Contains(t, out.String(), "Please enter a selection.")
	require.Contains(t, out.String(), "*** ONLY FOR Alice ***")
}

func TestRunExactMatchSkipsDisambiguation(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "alice\nexit\n")

	require.NoError(t, s.run())
	require.NotContains(t, out.String(), "Multiple participants match that entry:")
	require.Contains(t, out.String(), "*** ONLY FOR alice ***")
}

func TestRunNameNotFound(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "Zed\nexit\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "Name not found. Please re-check spelling and try again.")
	require.NotContains(t, out.String(), "You will gift to:")
}

func TestRunEmptyQueryReprompts(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "\nexit\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "Please enter a non-empty name.")
}

func TestRunOneShot(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "Bob\nBob\nexit\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "You have already viewed your assignment.")
	require.Equal(t, 1, strings.Count(out.String(), "You will gift to:"))
}

func TestRunAllowRepeat(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true, allowRepeat: true}, testAssignments, testNames, "Bob\nBob\nexit\n")

	require.NoError(t, s.run())
	require.NotContains(t, out.String(), "You have already viewed your assignment.")
	require.Equal(t, 2, strings.Count(out.String(), "You will gift to: Alice"))
}

func TestRunExitWords(t *testing.T) {
	for _, word := range []string{"exit", "quit", "EXIT", "Quit"} {
		s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, word+"\n")

		require.NoError(t, s.run())
		require.Contains(t, out.String(), "Exiting.")
	}
}

func TestRunTerminatesOnClosedInput(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "Input closed. Exiting.")
}

func TestRunTerminatesOnClosedInputDuringDisambiguation(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "ALICE\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "Input closed. Exiting.")
	require.NotContains(t, out.String(), "You will gift to:")
}

func TestWaitForEnterMode(t *testing.T) {
	s, out, slept := newTestSession(&Config{}, testAssignments, testNames, "Bob\n\nexit\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "(Press Enter to clear, and pass to next person)")
	require.Empty(t, *slept)
}

func TestTimedAutoClearImmediate(t *testing.T) {
	s, out, slept := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "Bob\nexit\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "(Clearing now. Please pass the device to the next person.)")
	require.Empty(t, *slept)
}

func TestTimedAutoClearCountdown(t *testing.T) {
	s, out, slept := newTestSession(&Config{autoClear: true, timeout: 5}, testAssignments, testNames, "Bob\nexit\n")

	require.NoError(t, s.run())
	require.Contains(t, out.String(), "cleared in 5 seconds")
	require.Equal(t, []time.Duration{5 * time.Second}, *slept)
}

func TestRevealClearsBeforeAndAfter(t *testing.T) {
	s, out, _ := newTestSession(&Config{autoClear: true}, testAssignments, testNames, "Bob\nexit\n")

	require.NoError(t, s.run())

	output := out.String()
	reveal := strings.Index(output, "*** ONLY FOR Bob ***")
	require.GreaterOrEqual(t, reveal, 0)
	require.Contains(t, output[:reveal], ansiClear)
	require.Contains(t, output[reveal:], ansiClear)
}
