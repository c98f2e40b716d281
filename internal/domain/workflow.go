package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"mutsol.dev/pkg/mutsol/internal/adapter"
	"mutsol.dev/pkg/mutsol/internal/controller"
	m "mutsol.dev/pkg/mutsol/internal/model"
)

// MutateArgs carries the inputs of a mutate run.
type MutateArgs struct {
	Paths  []m.Path
	Config m.RunConfig
}

// ListArgs carries the inputs of a discovery-only listing.
type ListArgs struct {
	Paths     []m.Path
	Types     []m.MutationType
	Contract  string
	Functions []string
	Solc      string
	Threads   int
}

// Workflow is the application entry point behind the CLI commands.
type Workflow interface {
	// Mutate generates, validates, and persists mutants for each path.
	Mutate(ctx context.Context, args MutateArgs) error

	// List discovers mutation points per path and displays the counts.
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SolcAdapter
	adapter.SourceFSAdapter
	controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	solcAdapter adapter.SolcAdapter,
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		SolcAdapter:     solcAdapter,
		SourceFSAdapter: fsAdapter,
		UI:              ui,
	}
}

// Mutate processes the input files as independent sequential runs. Every run
// derives its own random stream from the configured seed and writes into its
// own output namespace, so files never share mutable state.
func (w *workflow) Mutate(ctx context.Context, args MutateArgs) error {
	for _, path := range args.Paths {
		if err := w.mutateOne(ctx, path, args.Config); err != nil {
			return fmt.Errorf("mutate %s: %w", path, err)
		}
	}

	return nil
}

func (w *workflow) mutateOne(ctx context.Context, path m.Path, config m.RunConfig) error {
	content, err := w.ReadFile(path)
	if err != nil {
		return err
	}

	root, err := w.Parse(ctx, config.Solc, path)
	if err != nil {
		return err
	}

	slog.Info("running mutations", "origin", path)

	source := m.Source{Origin: path, Content: content}
	store := adapter.NewLocalMutantStore(w.SourceFSAdapter, config.Output)
	generator := NewGenerator(source, root, config, w.SolcAdapter, store)

	mutants, err := generator.Run(ctx)
	if err != nil {
		return err
	}

	for _, mutant := range mutants {
		diff, diffErr := UnifiedDiff(path, string(content), mutant)
		if diffErr != nil {
			diff = ""
		}

		w.DisplayMutant(mutant, diff)
	}

	if err := store.WriteManifest(path, mutants); err != nil {
		return err
	}

	w.DisplaySummary(path, len(mutants), config.Mutants)

	return nil
}

// List runs discovery concurrently across paths. Discovery is read-only and
// consumes no random stream, so parallelism cannot affect reproducibility.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	countsPerPath := make([][]m.PointCount, len(args.Paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, path := range args.Paths {
		group.Go(func() error {
			counts, err := w.discoverOne(groupCtx, path, args)
			if err != nil {
				return fmt.Errorf("list %s: %w", path, err)
			}

			countsPerPath[i] = counts

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	var counts []m.PointCount

	for _, pathCounts := range countsPerPath {
		counts = append(counts, pathCounts...)
	}

	return w.DisplayDiscovery(counts)
}

func (w *workflow) discoverOne(ctx context.Context, path m.Path, args ListArgs) ([]m.PointCount, error) {
	content, err := w.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root, err := w.Parse(ctx, args.Solc, path)
	if err != nil {
		return nil, err
	}

	source := m.Source{Origin: path, Content: content}
	config := m.RunConfig{
		Types:     args.Types,
		Contract:  args.Contract,
		Functions: args.Functions,
	}

	generator := NewGenerator(source, root, config, w.SolcAdapter, nil)

	order, byType, err := generator.Discover()
	if err != nil {
		return nil, err
	}

	counts := make([]m.PointCount, 0, len(order))
	for _, kind := range order {
		counts = append(counts, m.PointCount{Origin: path, Type: kind, Count: len(byType[kind])})
	}

	return counts, nil
}
