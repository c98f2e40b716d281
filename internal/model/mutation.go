// Package model defines the data structures for Solidity mutation generation.
package model

// MutationType represents one fixed rewrite strategy.
type MutationType string

const (
	// MutationBinaryOp replaces a binary operator with a random arithmetic operator.
	MutationBinaryOp MutationType = "BinaryOpMutation"
	// MutationRequire negates the first argument of a require call.
	MutationRequire MutationType = "RequireMutation"
	// MutationAssignment replaces the right-hand side of an assignment with a random literal.
	MutationAssignment MutationType = "AssignmentMutation"
	// MutationDeleteExpression comments out an expression statement.
	MutationDeleteExpression MutationType = "DeleteExpressionMutation"
	// MutationFunctionCall replaces a call with one of its arguments.
	MutationFunctionCall MutationType = "FunctionCallMutation"
	// MutationIfStatement replaces or negates an if condition.
	MutationIfStatement MutationType = "IfStatementMutation"
	// MutationSwapArgumentsFunction swaps the two arguments of a call.
	MutationSwapArgumentsFunction MutationType = "SwapArgumentsFunctionMutation"
	// MutationSwapArgumentsOperator swaps the operands of a non-commutative operator.
	MutationSwapArgumentsOperator MutationType = "SwapArgumentsOperatorMutation"
	// MutationSwapLines swaps the two statements of a block.
	MutationSwapLines MutationType = "SwapLinesMutation"
	// MutationUnaryOperator replaces a unary operator.
	MutationUnaryOperator MutationType = "UnaryOperatorMutation"
	// MutationElimDelegate turns a delegatecall into a plain call.
	MutationElimDelegate MutationType = "ElimDelegateMutation"
)

// AllMutationTypes lists every supported mutation type. The catalog is a
// closed enumeration: the scheduler relies on being able to enumerate all
// kinds at once, so new kinds must be added here and nowhere else.
func AllMutationTypes() []MutationType {
	return []MutationType{
		MutationBinaryOp,
		MutationRequire,
		MutationAssignment,
		MutationDeleteExpression,
		MutationFunctionCall,
		MutationIfStatement,
		MutationSwapArgumentsFunction,
		MutationSwapArgumentsOperator,
		MutationSwapLines,
		MutationUnaryOperator,
		MutationElimDelegate,
	}
}

// PointCount summarizes discovery for one kind in one file.
type PointCount struct {
	Origin Path
	Type   MutationType
	Count  int
}

// Mutant is a full candidate program produced by applying one rewrite to the
// original source, together with its provenance.
type Mutant struct {
	Type   MutationType
	Origin Path
	// Content is the annotated mutant text as persisted.
	Content []byte
	// File is set once the mutant has been written to disk.
	File Path
}
