package mutagens

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	m "mutsol.dev/pkg/mutsol/internal/model"
	"mutsol.dev/pkg/mutsol/internal/solast"
)

// assignment replaces the right-hand side of an assignment with a random
// literal: true, false, 0, 1, or a random 64-bit integer.
type assignment struct{}

func (assignment) Type() m.MutationType {
	return m.MutationAssignment
}

func (assignment) Applies(node solast.Node) bool {
	return nodeTypeIs(node, "Assignment")
}

func (assignment) Mutate(node solast.Node, source []byte, rng *rand.Rand) (string, error) {
	// The random integer is drawn before the candidate pick so the stream
	// advances in a fixed order for a given seed.
	candidates := []string{
		"true",
		"false",
		"0",
		"1",
		strconv.FormatUint(rng.Uint64(), 10),
	}

	rhs := node.RightHandSide()
	if rhs.Value().IsAbsent() {
		return "", fmt.Errorf("assignment has no right-hand side: %w", solast.ErrNoSource)
	}

	return rhs.ReplaceInSource(source, choose(rng, candidates))
}
