// Package solast wraps the compact JSON AST emitted by the Solidity compiler
// and provides the traversal and source-surgery primitives that mutation
// generation is built on.
package solast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Kind discriminates the variants of a generic AST value.
type Kind int

const (
	// KindAbsent marks a projection that found nothing. It is distinct from
	// KindNull so "field missing" never silently aliases "field is null".
	KindAbsent Kind = iota
	KindNull
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
)

// Value is a tagged variant over the generic JSON document: object, array,
// string, number, boolean, null, or absent. It is immutable after decoding
// and safe to share by value.
type Value struct {
	kind Kind
	obj  map[string]Value
	arr  []Value
	str  string
	num  json.Number
	b    bool
}

// Absent is the explicit "no value" marker returned by failed projections.
var Absent = Value{kind: KindAbsent}

// DecodeValue parses a JSON document into a Value tree. Numbers are kept in
// their literal form so no precision is lost on large integer literals.
func DecodeValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Absent, fmt.Errorf("decode ast json: %w", err)
	}

	return fromAny(raw), nil
}

func fromAny(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Value{kind: KindNull}
	case map[string]any:
		obj := make(map[string]Value, len(v))
		for key, elem := range v {
			obj[key] = fromAny(elem)
		}

		return Value{kind: KindObject, obj: obj}
	case []any:
		arr := make([]Value, 0, len(v))
		for _, elem := range v {
			arr = append(arr, fromAny(elem))
		}

		return Value{kind: KindArray, arr: arr}
	case string:
		return Value{kind: KindString, str: v}
	case json.Number:
		return Value{kind: KindNumber, num: v}
	case bool:
		return Value{kind: KindBool, b: v}
	default:
		return Absent
	}
}

// Kind reports the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether the value is the explicit absent marker.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Field returns the named field of an object value, or Absent.
func (v Value) Field(name string) Value {
	if v.kind != KindObject {
		return Absent
	}

	field, ok := v.obj[name]
	if !ok {
		return Absent
	}

	return field
}

// HasField reports whether an object value carries the named key.
func (v Value) HasField(name string) bool {
	if v.kind != KindObject {
		return false
	}

	_, ok := v.obj[name]

	return ok
}

// String returns the string content and whether the value is a string.
func (v Value) String() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.str, true
}

// Elements returns the elements of an array value, nil otherwise.
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}

	return v.arr
}

// SortedKeys returns the object keys in sorted order. The JSON document has
// no stable field order, so traversal visits children through this to stay
// deterministic.
func (v Value) SortedKeys() []string {
	if v.kind != KindObject {
		return nil
	}

	keys := make([]string, 0, len(v.obj))
	for key := range v.obj {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
