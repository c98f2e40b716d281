package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutsol.dev/pkg/mutsol/internal/domain"
)

var listParallelFlag int

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "List applicable mutation points per file",
		Long: `Discover mutation points in the given Solidity files without generating
any mutants, and print the per-kind counts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(context.Background(), domain.ListArgs{
				Paths:     parsePaths(args),
				Types:     parseMutationTypes(viper.GetStringSlice(mutationsConfigKey)),
				Contract:  viper.GetString(contractConfigKey),
				Functions: viper.GetStringSlice(functionsConfigKey),
				Solc:      viper.GetString(solcFlagName),
				Threads:   viper.GetInt(parallelConfigKey),
			})
		},
	}

	configureListFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func configureListFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&listParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files to discover concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}
