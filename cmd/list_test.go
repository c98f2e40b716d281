package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mutsol.dev/pkg/mutsol/internal/domain"
	m "mutsol.dev/pkg/mutsol/internal/model"
)

func TestListCmd_Defaults(t *testing.T) {
	mockWorkflow := swapWorkflow(t)
	cmd := newTestRoot(newListCmd())

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("a.sol") &&
			args.Paths[1] == m.Path("b.sol") &&
			args.Threads == defaultParallel &&
			args.Solc == defaultSolcBinary
	})).Return(nil)

	cmd.SetArgs([]string{"list", "a.sol", "b.sol"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_ParallelFlag(t *testing.T) {
	mockWorkflow := swapWorkflow(t)
	cmd := newTestRoot(newListCmd())

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Threads == 8
	})).Return(nil)

	cmd.SetArgs([]string{"list", "-p", "8", "a.sol"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_SolcFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := swapWorkflow(t)
	cmd := newTestRoot(newListCmd())

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Solc == "solc-0.8.19"
	})).Return(nil)

	cmd.SetArgs([]string{"--solc", "solc-0.8.19", "list", "a.sol"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_RequiresAtLeastOneFile(t *testing.T) {
	cmd := newTestRoot(newListCmd())

	cmd.SetArgs([]string{"list"})
	require.Error(t, cmd.Execute())
}
