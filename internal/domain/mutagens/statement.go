package mutagens

import (
	"math/rand/v2"

	m "mutsol.dev/pkg/mutsol/internal/model"
	"mutsol.dev/pkg/mutsol/internal/solast"
)

// deleteExpression comments out a whole expression statement.
type deleteExpression struct{}

func (deleteExpression) Type() m.MutationType {
	return m.MutationDeleteExpression
}

func (deleteExpression) Applies(node solast.Node) bool {
	return nodeTypeIs(node, "ExpressionStatement")
}

func (deleteExpression) Mutate(node solast.Node, source []byte, _ *rand.Rand) (string, error) {
	return node.CommentOut(source)
}

// swapLines shuffles the statements of a block and swaps the first two
// texts. Blocks with more than two statements are left untouched, same
// pairwise-only rule as swapArgumentsFunction.
type swapLines struct{}

func (swapLines) Type() m.MutationType {
	return m.MutationSwapLines
}

func (swapLines) Applies(node solast.Node) bool {
	return nodeTypeIs(node, "Block") && len(node.Statements()) > 1
}

func (swapLines) Mutate(node solast.Node, source []byte, rng *rand.Rand) (string, error) {
	return swapPair(node.Statements(), source, rng)
}
