package domain

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "mutsol.dev/pkg/mutsol/internal/model"
)

// Annotate inserts a provenance comment into a mutant: the original and the
// mutated text are compared line by line, and a comment naming the mutation
// kind and quoting the original line is placed above the first line that
// changed. Lines after the first difference are kept unchanged.
func Annotate(original, mutated string, kind m.MutationType) string {
	originalLines := strings.Split(original, "\n")
	mutatedLines := strings.Split(mutated, "\n")

	limit := min(len(originalLines), len(mutatedLines))

	for i := 0; i < limit; i++ {
		if originalLines[i] == mutatedLines[i] {
			continue
		}

		comment := indentOf(originalLines[i]) + "/// " + string(kind) + " of: " + strings.TrimSpace(originalLines[i])

		annotated := make([]string, 0, len(mutatedLines)+1)
		annotated = append(annotated, mutatedLines[:i]...)
		annotated = append(annotated, comment)
		annotated = append(annotated, mutatedLines[i:]...)

		return strings.Join(annotated, "\n")
	}

	return mutated
}

func indentOf(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}

	return line
}

// UnifiedDiff renders the original/mutant difference for display and logs.
func UnifiedDiff(origin m.Path, original string, mutant m.Mutant) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(string(mutant.Content)),
		FromFile: string(origin),
		ToFile:   string(mutant.File),
		Context:  3,
	})
}
