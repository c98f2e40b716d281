package mutagens

import (
	"math/rand/v2"

	m "mutsol.dev/pkg/mutsol/internal/model"
	"mutsol.dev/pkg/mutsol/internal/solast"
)

// functionCall collapses a call expression into one of its arguments, picked
// uniformly at random.
type functionCall struct{}

func (functionCall) Type() m.MutationType {
	return m.MutationFunctionCall
}

func (functionCall) Applies(node solast.Node) bool {
	return nodeTypeIs(node, "FunctionCall") && len(node.Arguments()) > 0
}

func (functionCall) Mutate(node solast.Node, source []byte, rng *rand.Rand) (string, error) {
	arg := choose(rng, node.Arguments())

	text, err := arg.Text(source)
	if err != nil {
		return "", err
	}

	return node.ReplaceInSource(source, text)
}

// swapArgumentsFunction shuffles call arguments and swaps the first two
// texts. Calls with more than two arguments are left untouched; the pairwise
// swap is the only case the rewrite defines.
type swapArgumentsFunction struct{}

func (swapArgumentsFunction) Type() m.MutationType {
	return m.MutationSwapArgumentsFunction
}

func (swapArgumentsFunction) Applies(node solast.Node) bool {
	return nodeTypeIs(node, "FunctionCall") && len(node.Arguments()) > 1
}

func (swapArgumentsFunction) Mutate(node solast.Node, source []byte, rng *rand.Rand) (string, error) {
	return swapPair(node.Arguments(), source, rng)
}

// elimDelegate rewrites a delegatecall member access into a plain call.
type elimDelegate struct{}

func (elimDelegate) Type() m.MutationType {
	return m.MutationElimDelegate
}

func (elimDelegate) Applies(node solast.Node) bool {
	if !nodeTypeIs(node, "FunctionCall") {
		return false
	}

	callee := node.Expression()
	if !nodeTypeIs(callee, "MemberAccess") {
		return false
	}

	member, ok := callee.MemberName()

	return ok && member == "delegatecall"
}

func (elimDelegate) Mutate(node solast.Node, source []byte, _ *rand.Rand) (string, error) {
	callee := node.Expression()

	_, baseEnd, err := callee.Expression().Bounds()
	if err != nil {
		return "", err
	}

	_, calleeEnd, err := callee.Bounds()
	if err != nil {
		return "", err
	}

	// baseEnd+1 skips the dot, leaving exactly the member-name token.
	return solast.ReplacePart(source, "call", baseEnd+1, calleeEnd), nil
}

// swapPair shuffles the nodes and exchanges the texts of the first two when
// there are exactly two; anything longer is returned byte-identical.
func swapPair(nodes []solast.Node, source []byte, rng *rand.Rand) (string, error) {
	shuffled := make([]solast.Node, len(nodes))
	copy(shuffled, nodes)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) != 2 {
		return string(source), nil
	}

	firstText, err := shuffled[0].Text(source)
	if err != nil {
		return "", err
	}

	secondText, err := shuffled[1].Text(source)
	if err != nil {
		return "", err
	}

	return solast.ReplaceMultiple(source, []solast.Replacement{
		{Node: shuffled[0], New: secondText},
		{Node: shuffled[1], New: firstText},
	})
}
