package solast

// Visitor inspects an in-scope node and may contribute results.
type Visitor[T any] func(Node) []T

// Predicate tests a node during traversal.
type Predicate func(Node) bool

// Traverse walks the tree depth-first, pre-order, and accumulates visitor
// results for every node that is in scope.
//
// Two predicates steer the walk. accept marks a subtree as in scope; once a
// node or any of its ancestors satisfied it the whole subtree stays accepted
// (sticky downward, logical OR). skip excludes a node and its entire subtree.
// Descent visits every value of an object (in sorted key order) and every
// element of an array; scalars have no children.
//
// When an object node carries the contractKind marker, the contract name
// propagated to its descendants is updated to that declaration's name.
func Traverse[T any](root Node, visitor Visitor[T], skip, accept Predicate) []T {
	var acc []T

	traverse(root, visitor, skip, accept, false, &acc)

	return acc
}

func traverse[T any](node Node, visitor Visitor[T], skip, accept Predicate, accepted bool, acc *[]T) {
	if accept(node) {
		accepted = true
	}

	if skip(node) {
		return
	}

	if accepted {
		*acc = append(*acc, visitor(node)...)
	}

	value := node.Value()

	switch value.Kind() {
	case KindObject:
		contract := node.Contract()

		if value.HasField("contractKind") {
			if name, ok := node.Name(); ok {
				contract = name
			}
		}

		for _, key := range value.SortedKeys() {
			child := Node{value: value.Field(key), contract: contract}
			traverse(child, visitor, skip, accept, accepted, acc)
		}
	case KindArray:
		for _, elem := range value.Elements() {
			child := Node{value: elem, contract: node.Contract()}
			traverse(child, visitor, skip, accept, accepted, acc)
		}
	default:
		// Scalars have no children.
	}
}
