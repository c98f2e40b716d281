package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutsol.dev/pkg/mutsol/internal/domain"
	m "mutsol.dev/pkg/mutsol/internal/model"
)

var mutateMutantsFlag int
var mutateSeedFlag uint64
var mutateAttemptsFlag int

// mutateCmd represents the mutate command.
var mutateCmd = newMutateCmd()

func newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate [files...]",
		Short: "Generate mutants for Solidity files",
		Long: `Generate, validate, and persist mutants for the given Solidity files.

Each file runs as an independent instance with its own random stream, so a
fixed seed reproduces the exact same mutants and file names.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			config := m.RunConfig{
				Mutants:            viper.GetInt(mutantsConfigKey),
				Seed:               viper.GetUint64(seedConfigKey),
				Types:              parseMutationTypes(viper.GetStringSlice(mutationsConfigKey)),
				Contract:           viper.GetString(contractConfigKey),
				Functions:          viper.GetStringSlice(functionsConfigKey),
				AttemptsMultiplier: viper.GetInt(attemptsConfigKey),
				Output:             m.Path(viper.GetString(outputFlagName)),
				Solc:               viper.GetString(solcFlagName),
			}

			return workflow.Mutate(context.Background(), domain.MutateArgs{
				Paths:  parsePaths(args),
				Config: config,
			})
		},
	}

	configureMutateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mutateCmd)
}

func configureMutateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&mutateMutantsFlag, mutantsFlagName, "n", viper.GetInt(mutantsConfigKey), "number of mutants to generate per file")
	bindFlagToConfig(cmd.Flags().Lookup(mutantsFlagName), mutantsConfigKey)

	cmd.Flags().Uint64VarP(&mutateSeedFlag, seedFlagName, "s", viper.GetUint64(seedConfigKey), "seed for the random stream")
	bindFlagToConfig(cmd.Flags().Lookup(seedFlagName), seedConfigKey)

	cmd.Flags().IntVar(&mutateAttemptsFlag, attemptsFlagName, viper.GetInt(attemptsConfigKey), "attempt budget per requested mutant")
	bindFlagToConfig(cmd.Flags().Lookup(attemptsFlagName), attemptsConfigKey)
}
