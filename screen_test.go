package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScreenClearErasesScrollback(t *testing.T) {
	var out bytes.Buffer

	(&screen{out: &out}).clear()

	require.Equal(t, ansiClear, out.String())
}
