package mutagens

import (
	"math/rand/v2"

	m "mutsol.dev/pkg/mutsol/internal/model"
	"mutsol.dev/pkg/mutsol/internal/solast"
)

// ifStatement rewrites an if condition: half the time it becomes a random
// boolean literal, otherwise the original condition is negated.
type ifStatement struct{}

func (ifStatement) Type() m.MutationType {
	return m.MutationIfStatement
}

func (ifStatement) Applies(node solast.Node) bool {
	return nodeTypeIs(node, "IfStatement")
}

func (ifStatement) Mutate(node solast.Node, source []byte, rng *rand.Rand) (string, error) {
	cond := node.Condition()
	literals := []string{"true", "false"}

	if rng.IntN(2) == 0 {
		return cond.ReplaceInSource(source, choose(rng, literals))
	}

	text, err := cond.Text(source)
	if err != nil {
		return "", err
	}

	return cond.ReplaceInSource(source, "!("+text+")")
}
