package solast

// Node is a point in the parsed tree: the underlying generic value plus the
// name of the innermost enclosing contract-like declaration. The contract
// name is set during traversal when a node introduces one and inherited by
// its descendants, which is how contract attribution works without a symbol
// table. Nodes are immutable snapshots and safe to share by value.
type Node struct {
	value    Value
	contract string
}

// NewNode wraps a value with the given enclosing contract name.
func NewNode(value Value, contract string) Node {
	return Node{value: value, contract: contract}
}

// Value returns the underlying generic value.
func (n Node) Value() Value {
	return n.value
}

// Contract returns the name of the innermost enclosing contract declaration,
// or the empty string when the node is outside any contract.
func (n Node) Contract() string {
	return n.contract
}

// getString projects a string field out of the node's object value.
func (n Node) getString(field string) (string, bool) {
	return n.value.Field(field).String()
}

// get projects a child node, carrying the contract attribution along.
func (n Node) get(field string) Node {
	return Node{value: n.value.Field(field), contract: n.contract}
}

// NodeType returns the node-type discriminator.
func (n Node) NodeType() (string, bool) {
	return n.getString("nodeType")
}

// Name returns the name field.
func (n Node) Name() (string, bool) {
	return n.getString("name")
}

// Operator returns the operator token of a binary, unary, or assignment node.
func (n Node) Operator() (string, bool) {
	return n.getString("operator")
}

// MemberName returns the member name of a member-access node.
func (n Node) MemberName() (string, bool) {
	return n.getString("memberName")
}

// Src returns the raw "start:length" source annotation.
func (n Node) Src() (string, bool) {
	return n.getString("src")
}

// Expression returns the expression field.
func (n Node) Expression() Node {
	return n.get("expression")
}

// Condition returns the condition field of an if or loop statement.
func (n Node) Condition() Node {
	return n.get("condition")
}

// LeftExpression returns the left operand of a binary operation.
func (n Node) LeftExpression() Node {
	return n.get("leftExpression")
}

// RightExpression returns the right operand of a binary operation.
func (n Node) RightExpression() Node {
	return n.get("rightExpression")
}

// LeftHandSide returns the assignment target.
func (n Node) LeftHandSide() Node {
	return n.get("leftHandSide")
}

// RightHandSide returns the assigned expression.
func (n Node) RightHandSide() Node {
	return n.get("rightHandSide")
}

// TrueBody returns the then-branch of an if statement.
func (n Node) TrueBody() Node {
	return n.get("trueBody")
}

// FalseBody returns the else-branch of an if statement.
func (n Node) FalseBody() Node {
	return n.get("falseBody")
}

// TypeDescriptions returns the type metadata attached to an expression node.
func (n Node) TypeDescriptions() Node {
	return n.get("typeDescriptions")
}

// TypeString returns the compiler's type rendering for an expression node.
func (n Node) TypeString() (string, bool) {
	return n.TypeDescriptions().getString("typeString")
}

// Arguments returns the argument nodes of a call.
func (n Node) Arguments() []Node {
	return n.children("arguments")
}

// Statements returns the statement nodes of a block.
func (n Node) Statements() []Node {
	return n.children("statements")
}

func (n Node) children(field string) []Node {
	elems := n.value.Field(field).Elements()
	if len(elems) == 0 {
		return nil
	}

	nodes := make([]Node, 0, len(elems))
	for _, elem := range elems {
		nodes = append(nodes, Node{value: elem, contract: n.contract})
	}

	return nodes
}
