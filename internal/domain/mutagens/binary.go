package mutagens

import (
	"math/rand/v2"

	m "mutsol.dev/pkg/mutsol/internal/model"
	"mutsol.dev/pkg/mutsol/internal/solast"
)

// binaryOp swaps the operator of a binary operation for a random arithmetic
// operator, keeping both operand texts intact.
type binaryOp struct{}

func (binaryOp) Type() m.MutationType {
	return m.MutationBinaryOp
}

func (binaryOp) Applies(node solast.Node) bool {
	return nodeTypeIs(node, "BinaryOperation")
}

func (binaryOp) Mutate(node solast.Node, source []byte, rng *rand.Rand) (string, error) {
	ops := []string{"+", "-", "*", "/", "%", "**"}

	_, leftEnd, err := node.LeftExpression().Bounds()
	if err != nil {
		return "", err
	}

	rightStart, _, err := node.RightExpression().Bounds()
	if err != nil {
		return "", err
	}

	// The operator token lives between the operand spans, whitespace included.
	return solast.ReplacePart(source, " "+choose(rng, ops)+" ", leftEnd, rightStart), nil
}

// nonCommutativeOps are the operators for which swapping operands changes
// the meaning of the expression.
var nonCommutativeOps = []string{"-", "/", "%", "**", ">", "<", ">=", "<=", "<<", ">>"}

// swapArgumentsOperator exchanges the operand texts of a non-commutative
// binary operation.
type swapArgumentsOperator struct{}

func (swapArgumentsOperator) Type() m.MutationType {
	return m.MutationSwapArgumentsOperator
}

func (swapArgumentsOperator) Applies(node solast.Node) bool {
	if !nodeTypeIs(node, "BinaryOperation") {
		return false
	}

	op, ok := node.Operator()
	if !ok {
		return false
	}

	for _, candidate := range nonCommutativeOps {
		if op == candidate {
			return true
		}
	}

	return false
}

func (swapArgumentsOperator) Mutate(node solast.Node, source []byte, _ *rand.Rand) (string, error) {
	left := node.LeftExpression()
	right := node.RightExpression()

	leftText, err := left.Text(source)
	if err != nil {
		return "", err
	}

	rightText, err := right.Text(source)
	if err != nil {
		return "", err
	}

	return solast.ReplaceMultiple(source, []solast.Replacement{
		{Node: left, New: rightText},
		{Node: right, New: leftText},
	})
}
