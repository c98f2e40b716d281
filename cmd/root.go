// Package cmd provides the root command and CLI setup for mutsol.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mutsol.dev/pkg/mutsol/internal/adapter"
	"mutsol.dev/pkg/mutsol/internal/controller"
	"mutsol.dev/pkg/mutsol/internal/domain"
	m "mutsol.dev/pkg/mutsol/internal/model"
)

var solcAdapter adapter.SolcAdapter
var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow

// outputDirFlag is a root-level flag shared by commands that write mutants.
var outputDirFlag string

// solcBinaryFlag selects the Solidity compiler used to parse and validate.
var solcBinaryFlag string

// mutationsFlag restricts the catalog to the named mutation kinds.
var mutationsFlag []string

// contractFlag restricts mutation to a single contract declaration.
var contractFlag string

// functionsFlag restricts mutation to the named function bodies.
var functionsFlag []string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	solcAdapter = adapter.NewLocalSolcAdapter()
	workflow = domain.NewWorkflow(solcAdapter, fsAdapter, ui)
}

const rootLongDescription = `Mutsol is a mutation testing tool for Solidity that assesses the strength
of a contract's test suite by generating small randomized edits (mutants)
of the source and persisting the ones that still compile.

Run a test suite against each generated mutant to measure how many of them
the suite catches.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutsol",
		Short: "Solidity mutation testing tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for generated mutants",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&solcBinaryFlag, solcFlagName, viper.GetString(solcFlagName), "solidity compiler binary")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(solcFlagName), solcFlagName)

	cmd.PersistentFlags().StringArrayVarP(&mutationsFlag, mutationFlagName, "m", viper.GetStringSlice(mutationsConfigKey), "restrict to a mutation kind (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(mutationFlagName), mutationsConfigKey)

	cmd.PersistentFlags().StringVar(&contractFlag, contractFlagName, viper.GetString(contractConfigKey), "restrict mutation to one contract")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(contractFlagName), contractConfigKey)

	cmd.PersistentFlags().StringArrayVar(&functionsFlag, functionFlagName, viper.GetStringSlice(functionsConfigKey), "restrict mutation to a function body (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(functionFlagName), functionsConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseMutationTypes(names []string) []m.MutationType {
	types := make([]m.MutationType, 0, len(names))
	for _, name := range names {
		types = append(types, m.MutationType(name))
	}

	return types
}
