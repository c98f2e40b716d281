// Package mutagens implements the catalog of Solidity mutation operators.
//
// Every operator is a (predicate, generator) pair over an AST node: Applies
// reports whether the operator can rewrite the node, Mutate produces the full
// mutated source text. Generators assume their predicate holds and are never
// invoked otherwise. The catalog is closed; the scheduler depends on being
// able to enumerate every kind up front.
package mutagens

import (
	"fmt"
	"math/rand/v2"

	m "mutsol.dev/pkg/mutsol/internal/model"
	"mutsol.dev/pkg/mutsol/internal/solast"
)

// Mutagen is one mutation operator.
type Mutagen interface {
	// Type identifies the operator.
	Type() m.MutationType

	// Applies reports whether the operator can rewrite this node.
	Applies(node solast.Node) bool

	// Mutate returns the complete mutated source. The random stream is the
	// single one owned by the run and must be advanced only through it.
	Mutate(node solast.Node, source []byte, rng *rand.Rand) (string, error)
}

var catalog = map[m.MutationType]Mutagen{
	m.MutationBinaryOp:              binaryOp{},
	m.MutationRequire:               requireCall{},
	m.MutationAssignment:            assignment{},
	m.MutationDeleteExpression:      deleteExpression{},
	m.MutationFunctionCall:          functionCall{},
	m.MutationIfStatement:           ifStatement{},
	m.MutationSwapArgumentsFunction: swapArgumentsFunction{},
	m.MutationSwapArgumentsOperator: swapArgumentsOperator{},
	m.MutationSwapLines:             swapLines{},
	m.MutationUnaryOperator:         unaryOperator{},
	m.MutationElimDelegate:          elimDelegate{},
}

// ForType resolves a mutation type to its operator.
func ForType(mutationType m.MutationType) (Mutagen, error) {
	mutagen, ok := catalog[mutationType]
	if !ok {
		return nil, fmt.Errorf("unsupported mutation type: %s", mutationType)
	}

	return mutagen, nil
}

// Resolve maps mutation types to operators, defaulting to the full catalog
// when none are given.
func Resolve(mutationTypes []m.MutationType) ([]Mutagen, error) {
	if len(mutationTypes) == 0 {
		mutationTypes = m.AllMutationTypes()
	}

	mutagens := make([]Mutagen, 0, len(mutationTypes))

	for _, mutationType := range mutationTypes {
		mutagen, err := ForType(mutationType)
		if err != nil {
			return nil, err
		}

		mutagens = append(mutagens, mutagen)
	}

	return mutagens, nil
}

// choose picks one element uniformly, advancing the run's random stream.
func choose[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func nodeTypeIs(node solast.Node, want string) bool {
	nodeType, ok := node.NodeType()

	return ok && nodeType == want
}
