package mutagens

import (
	"math/rand/v2"

	m "mutsol.dev/pkg/mutsol/internal/model"
	"mutsol.dev/pkg/mutsol/internal/solast"
)

// requireCall wraps the first argument of a require call in a logical
// negation, turning the guard into its opposite.
type requireCall struct{}

func (requireCall) Type() m.MutationType {
	return m.MutationRequire
}

func (requireCall) Applies(node solast.Node) bool {
	if !nodeTypeIs(node, "FunctionCall") {
		return false
	}

	callee, ok := node.Expression().Name()
	if !ok || callee != "require" {
		return false
	}

	return len(node.Arguments()) > 0
}

func (requireCall) Mutate(node solast.Node, source []byte, _ *rand.Rand) (string, error) {
	arg := node.Arguments()[0]

	text, err := arg.Text(source)
	if err != nil {
		return "", err
	}

	return arg.ReplaceInSource(source, "!("+text+")")
}
