package mutagens

import (
	"fmt"
	"math/rand/v2"

	m "mutsol.dev/pkg/mutsol/internal/model"
	"mutsol.dev/pkg/mutsol/internal/solast"
)

// unaryOperator replaces the operator token of a unary operation. Whether
// the operator is prefix or postfix is decided by comparing the first byte
// of the node's span against the operator's first byte.
type unaryOperator struct{}

func (unaryOperator) Type() m.MutationType {
	return m.MutationUnaryOperator
}

func (unaryOperator) Applies(node solast.Node) bool {
	return nodeTypeIs(node, "UnaryOperation")
}

func (unaryOperator) Mutate(node solast.Node, source []byte, rng *rand.Rand) (string, error) {
	prefixOps := []string{"++", "--", "~"}
	postfixOps := []string{"++", "--"}

	start, end, err := node.Bounds()
	if err != nil {
		return "", err
	}

	op, ok := node.Operator()
	if !ok || op == "" {
		return "", fmt.Errorf("unary operation has no operator: %w", solast.ErrNoSource)
	}

	if source[start] == op[0] {
		return solast.ReplacePart(source, choose(rng, prefixOps), start, start+len(op)), nil
	}

	return solast.ReplacePart(source, choose(rng, postfixOps), end-len(op), end), nil
}
