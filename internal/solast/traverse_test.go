package solast

import (
	"reflect"
	"testing"
)

func collectNames(root Node, skip, accept Predicate) []string {
	visitor := func(node Node) []string {
		if name, ok := node.Name(); ok {
			return []string{name}
		}

		return nil
	}

	return Traverse(root, visitor, skip, accept)
}

func never(Node) bool  { return false }
func always(Node) bool { return true }

func TestTraverse(t *testing.T) {
	t.Run("visits object values in sorted key order", func(t *testing.T) {
		root := mustNode(t, `{
			"zeta":  {"name": "z"},
			"alpha": {"name": "a"},
			"mid":   {"name": "m"}
		}`)

		names := collectNames(root, never, always)

		expected := []string{"a", "m", "z"}
		if !reflect.DeepEqual(names, expected) {
			t.Errorf("expected %v, got %v", expected, names)
		}
	})

	t.Run("visits array elements in order", func(t *testing.T) {
		root := mustNode(t, `{"items": [{"name": "first"}, {"name": "second"}]}`)

		names := collectNames(root, never, always)

		expected := []string{"first", "second"}
		if !reflect.DeepEqual(names, expected) {
			t.Errorf("expected %v, got %v", expected, names)
		}
	})

	t.Run("skip prunes the whole subtree", func(t *testing.T) {
		root := mustNode(t, `{
			"a": {"name": "keep"},
			"b": {"nodeType": "Pruned", "inner": {"name": "hidden"}}
		}`)

		skip := func(node Node) bool {
			nodeType, ok := node.NodeType()
			return ok && nodeType == "Pruned"
		}

		names := collectNames(root, skip, always)

		expected := []string{"keep"}
		if !reflect.DeepEqual(names, expected) {
			t.Errorf("expected %v, got %v", expected, names)
		}
	})

	t.Run("accept is sticky for descendants", func(t *testing.T) {
		root := mustNode(t, `{
			"name": "outside",
			"scoped": {
				"nodeType": "FunctionDefinition",
				"name":     "target",
				"body":     {"name": "inside"}
			}
		}`)

		accept := func(node Node) bool {
			name, ok := node.Name()
			return ok && name == "target"
		}

		names := collectNames(root, never, accept)

		// "outside" has no accepted ancestor; "target" and everything below
		// it does.
		expected := []string{"inside", "target"}
		if !reflect.DeepEqual(names, expected) {
			t.Errorf("expected %v, got %v", expected, names)
		}
	})

	t.Run("nothing accepted yields nothing", func(t *testing.T) {
		root := mustNode(t, `{"a": {"name": "x"}}`)

		if names := collectNames(root, never, never); len(names) != 0 {
			t.Errorf("expected no results, got %v", names)
		}
	})

	t.Run("contract attribution propagates from contractKind nodes", func(t *testing.T) {
		root := mustNode(t, `{
			"nodes": [
				{
					"contractKind": "contract",
					"name":         "Vault",
					"nodes":        [{"nodeType": "FunctionDefinition", "name": "deposit"}]
				},
				{
					"contractKind": "library",
					"name":         "Math",
					"nodes":        [{"nodeType": "FunctionDefinition", "name": "add"}]
				}
			]
		}`)

		visitor := func(node Node) []string {
			if nodeTypeOf(node) == "FunctionDefinition" {
				name, _ := node.Name()
				return []string{node.Contract() + "." + name}
			}

			return nil
		}

		got := Traverse(root, visitor, never, always)

		expected := []string{"Vault.deposit", "Math.add"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("expected %v, got %v", expected, got)
		}
	})
}

func nodeTypeOf(node Node) string {
	nodeType, _ := node.NodeType()

	return nodeType
}

func TestNodeProjections(t *testing.T) {
	node := mustNode(t, `{
		"nodeType": "BinaryOperation",
		"operator": "+",
		"src":      "10:5:0",
		"leftExpression":  {"src": "10:1:0"},
		"rightExpression": {"src": "14:1:0"},
		"typeDescriptions": {"typeString": "uint256"}
	}`)

	if nodeType, ok := node.NodeType(); !ok || nodeType != "BinaryOperation" {
		t.Errorf("NodeType: got %q, %v", nodeType, ok)
	}

	if op, ok := node.Operator(); !ok || op != "+" {
		t.Errorf("Operator: got %q, %v", op, ok)
	}

	if typeString, ok := node.TypeString(); !ok || typeString != "uint256" {
		t.Errorf("TypeString: got %q, %v", typeString, ok)
	}

	if src, ok := node.LeftExpression().Src(); !ok || src != "10:1:0" {
		t.Errorf("LeftExpression src: got %q, %v", src, ok)
	}

	if _, ok := node.Name(); ok {
		t.Error("Name should be absent")
	}

	if _, ok := node.Condition().Src(); ok {
		t.Error("Condition should be absent")
	}
}

func TestNodeChildrenCarryContract(t *testing.T) {
	value, err := DecodeValue([]byte(`{"arguments": [{"src": "0:1:0"}, {"src": "2:1:0"}]}`))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	node := NewNode(value, "Token")

	args := node.Arguments()
	if len(args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(args))
	}

	for i, arg := range args {
		if arg.Contract() != "Token" {
			t.Errorf("argument %d lost contract attribution: %q", i, arg.Contract())
		}
	}
}
