package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"slices"
)

// deranger draws giver→recipient assignments with no fixed points.
type deranger struct {
	rng *rand.Rand
}

// newDeranger returns a seeded generator when seeded is true, making the
// whole assignment process reproducible; otherwise the PCG is keyed from
// crypto/rand so concurrent sessions never share an assignment.
func newDeranger(seed int64, seeded bool) *deranger {
	if seeded {
		return &deranger{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
	}

	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(err)
	}

	return &deranger{rng: rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	))}
}

// assign produces a derangement of names by rejection sampling: shuffle the
// recipient list until no giver is paired with themselves. Expected attempts
// approach e for large N, and N=2 always resolves to the swap.
func (d *deranger) assign(names []string) (map[string]string, error) {
	if len(names) < 2 {
		return nil, ErrInsufficientParticipants
	}

	recipients := slices.Clone(names)

	for {
		d.rng.Shuffle(len(recipients), func(i, j int) {
			recipients[i], recipients[j] = recipients[j], recipients[i]
		})

		if hasFixedPoint(names, recipients) {
			continue
		}

		assignments := make(map[string]string, len(names))
		for i, giver := range names {
			assignments[giver] = recipients[i]
		}

		return assignments, nil
	}
}

func hasFixedPoint(givers, recipients []string) bool {
	for i := range givers {
		if givers[i] == recipients[i] {
			return true
		}
	}

	return false
}
