package solast

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrNoSource reports a node that was routed to source surgery without a
// byte span. Only nodes reachable through valid mutation predicates are
// guaranteed one, so hitting this means a predicate and the grammar disagree
// and the run must abort.
var ErrNoSource = errors.New("node has no source span")

// Bounds parses the node's "start:length" source annotation into a half-open
// byte range [start, end).
func (n Node) Bounds() (int, int, error) {
	src, ok := n.Src()
	if !ok {
		return 0, 0, ErrNoSource
	}

	parts := strings.Split(src, ":")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("malformed src %q", src)
	}

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed src %q: %w", src, err)
	}

	length, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed src %q: %w", src, err)
	}

	return start, start + length, nil
}

// Text extracts the source text covered by the node's span.
func (n Node) Text(source []byte) (string, error) {
	start, end, err := n.Bounds()
	if err != nil {
		return "", err
	}

	return string(source[start:end]), nil
}

// ReplaceInSource splices replacement over the node's own span.
func (n Node) ReplaceInSource(source []byte, replacement string) (string, error) {
	start, end, err := n.Bounds()
	if err != nil {
		return "", err
	}

	return ReplacePart(source, replacement, start, end), nil
}

// ReplacePart splices replacement into source over [start, end).
func ReplacePart(source []byte, replacement string, start, end int) string {
	var b strings.Builder

	b.Grow(len(source) - (end - start) + len(replacement))
	b.Write(source[:start])
	b.WriteString(replacement)
	b.Write(source[end:])

	return b.String()
}

// Replacement pairs a node with the text that should replace its span.
type Replacement struct {
	Node Node
	New  string
}

// ReplaceMultiple applies several replacements to one source. Replacements
// are sorted by start offset and applied in order while a running delta
// tracks how much earlier edits shifted the text, so the result is
// position-correct for arbitrary replacement-length changes. Spans must not
// overlap; tree structure guarantees that for sibling and ancestor spans.
func ReplaceMultiple(source []byte, replacements []Replacement) (string, error) {
	type span struct {
		start, end int
		text       string
	}

	spans := make([]span, 0, len(replacements))

	for _, rep := range replacements {
		start, end, err := rep.Node.Bounds()
		if err != nil {
			return "", err
		}

		spans = append(spans, span{start: start, end: end, text: rep.New})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	result := string(source)
	delta := 0

	for _, s := range spans {
		start := s.start + delta
		end := s.end + delta
		result = result[:start] + s.text + result[end:]
		delta += len(s.text) - (s.end - s.start)
	}

	return result, nil
}

// CommentOut wraps the node's span in a block comment. When the byte
// immediately after the span is itself '*', the span is extended by one so
// the inserted comment is not terminated early by an accidental "*/".
func (n Node) CommentOut(source []byte) (string, error) {
	start, end, err := n.Bounds()
	if err != nil {
		return "", err
	}

	if end < len(source) && source[end] == '*' {
		end++
	}

	return ReplacePart(source, "/*"+string(source[start:end])+"*/", start, end), nil
}
