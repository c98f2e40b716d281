package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "mutsol.dev/pkg/mutsol/internal/model"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	kindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a SimpleUI bound to a command.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDiscovery prints the mutation point counts as a table.
func (s *SimpleUI) DisplayDiscovery(counts []m.PointCount) error {
	if len(counts) == 0 {
		s.printf("no mutation points found\n")
		return nil
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Mutation", "Points"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, count := range counts {
		table.Append([]string{string(count.Origin), string(count.Type), fmt.Sprintf("%d", count.Count)})

		total += count.Count
	}

	table.SetFooter([]string{"", "Total", fmt.Sprintf("%d", total)})
	table.Render()

	s.printf("\n%s", buf.String())

	return nil
}

// DisplayMutant prints a success line and the mutant's diff.
func (s *SimpleUI) DisplayMutant(mutant m.Mutant, diff string) {
	s.printf("%s: %s mutant written at %s\n",
		successStyle.Render("SUCCESS"),
		kindStyle.Render(string(mutant.Type)),
		mutant.File,
	)

	if diff != "" {
		s.printf("%s", diff)
	}
}

// DisplaySummary prints the run outcome, flagging under-quota results.
func (s *SimpleUI) DisplaySummary(origin m.Path, produced, quota int) {
	if produced < quota {
		s.printf("%s: %s produced %d of %d requested mutants\n",
			warnStyle.Render("EXHAUSTED"), origin, produced, quota)

		return
	}

	s.printf("%s: %d mutants\n", origin, produced)
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}
