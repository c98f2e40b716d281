// Package domain contains the mutation discovery, scheduling, and generation
// workflow.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"mutsol.dev/pkg/mutsol/internal/adapter"
	"mutsol.dev/pkg/mutsol/internal/domain/mutagens"
	m "mutsol.dev/pkg/mutsol/internal/model"
	"mutsol.dev/pkg/mutsol/internal/solast"
)

// MutationPoint records that a mutation kind is applicable at a node. Points
// are discovered once per traversal and read-only afterwards.
type MutationPoint struct {
	Type m.MutationType
	Node solast.Node
}

// Generator produces mutants for a single parsed source. It owns the run's
// random stream: every randomized choice advances it, so a fixed seed yields
// a fixed mutant sequence.
type Generator struct {
	source m.Source
	root   solast.Node
	config m.RunConfig
	rng    *rand.Rand
	solc   adapter.SolcAdapter
	store  adapter.MutantStore
}

// NewGenerator builds a Generator for one source file. The random stream is
// derived from the configured seed; each source gets its own stream so runs
// over multiple files stay independent.
func NewGenerator(
	source m.Source,
	root solast.Node,
	config m.RunConfig,
	solc adapter.SolcAdapter,
	store adapter.MutantStore,
) *Generator {
	if config.AttemptsMultiplier <= 0 {
		config.AttemptsMultiplier = m.DefaultAttemptsMultiplier
	}

	return &Generator{
		source: source,
		root:   root,
		config: config,
		rng:    rand.New(rand.NewPCG(config.Seed, 0)),
		solc:   solc,
		store:  store,
	}
}

// isAssertCall reports whether a node is an assert invocation. Assertion
// checks encode intentional invariants, so nothing inside them is a useful
// mutation target and the whole subtree is pruned.
func isAssertCall(node solast.Node) bool {
	if name, ok := node.Name(); ok && name == "assert" {
		return true
	}

	callee, ok := node.Expression().Name()

	return ok && callee == "assert" && nodeTypeIs(node, "FunctionCall")
}

// acceptFunc builds the scope predicate. Acceptance is sticky downward
// during traversal: a node is in scope once it or any ancestor matched.
func acceptFunc(contract string, functions []string) solast.Predicate {
	inFunctions := func(node solast.Node) bool {
		if !nodeTypeIs(node, "FunctionDefinition") {
			return false
		}

		name, ok := node.Name()
		if !ok {
			return false
		}

		for _, fn := range functions {
			if fn == name {
				return true
			}
		}

		return false
	}

	switch {
	case contract == "" && len(functions) == 0:
		return func(solast.Node) bool { return true }
	case contract != "" && len(functions) == 0:
		return func(node solast.Node) bool { return node.Contract() == contract }
	case contract == "":
		return inFunctions
	default:
		return func(node solast.Node) bool {
			return node.Contract() == contract && inFunctions(node)
		}
	}
}

func nodeTypeIs(node solast.Node, want string) bool {
	nodeType, ok := node.NodeType()

	return ok && nodeType == want
}

// Discover traverses the tree once and maps each mutation kind to the nodes
// it applies to. The returned kind order is first-appearance order, which
// fixes the schedule and therefore the random-stream consumption order.
func (g *Generator) Discover() ([]m.MutationType, map[m.MutationType][]solast.Node, error) {
	selected, err := mutagens.Resolve(g.config.Types)
	if err != nil {
		return nil, nil, err
	}

	visitor := func(node solast.Node) []MutationPoint {
		var points []MutationPoint

		for _, mutagen := range selected {
			if mutagen.Applies(node) {
				points = append(points, MutationPoint{Type: mutagen.Type(), Node: node})
			}
		}

		return points
	}

	accept := acceptFunc(g.config.Contract, g.config.Functions)
	points := solast.Traverse(g.root, visitor, isAssertCall, accept)

	var order []m.MutationType

	byType := make(map[m.MutationType][]solast.Node)

	for _, point := range points {
		if _, ok := byType[point.Type]; !ok {
			order = append(order, point.Type)
		}

		byType[point.Type] = append(byType[point.Type], point.Node)
	}

	return order, byType, nil
}

// schedule spreads the mutant quota across the discovered kinds: full passes
// over the kind list in discovery order, with the last pass truncated to the
// remaining quota. quota=5 over [A,B] yields [A,B,A,B,A].
func schedule(kinds []m.MutationType, quota int) []m.MutationType {
	queue := make([]m.MutationType, 0, quota)
	remaining := quota

	for remaining > 0 {
		take := min(remaining, len(kinds))
		queue = append(queue, kinds[:take]...)
		remaining -= len(kinds)
	}

	return queue
}

// Run drives the generate/validate loop until the quota is met, the schedule
// drains, or the attempt budget runs out.
func (g *Generator) Run(ctx context.Context) ([]m.Mutant, error) {
	order, points, err := g.Discover()
	if err != nil {
		return nil, err
	}

	if len(order) == 0 {
		slog.Info("no mutation points found", "origin", g.source.Origin)
		return nil, nil
	}

	slog.Info("discovered mutation points",
		"origin", g.source.Origin,
		"kinds", len(order),
	)

	queue := schedule(order, g.config.Mutants)
	budget := g.config.Mutants * g.config.AttemptsMultiplier

	// The unmutated original must never be returned, so it seeds the set.
	seen := map[string]struct{}{
		string(g.source.Content): {},
	}

	var mutants []m.Mutant

	attempts := 0

	for len(queue) > 0 && attempts < budget {
		kind := queue[0]
		queue = queue[1:]

		nodes, ok := points[kind]
		if !ok || len(nodes) == 0 {
			return nil, fmt.Errorf("scheduled kind %s has no mutation points", kind)
		}

		node := nodes[g.rng.IntN(len(nodes))]

		mutagen, err := mutagens.ForType(kind)
		if err != nil {
			return nil, err
		}

		candidate, err := mutagen.Mutate(node, g.source.Content, g.rng)
		if err != nil {
			// A generator hitting a span-less node means a predicate and the
			// grammar disagree; the run cannot continue safely.
			return nil, fmt.Errorf("mutate %s: %w", kind, err)
		}

		_, duplicate := seen[candidate]

		persisted := false

		if !duplicate {
			valid, err := g.solc.Check(ctx, g.config.Solc, []byte(candidate))
			if err != nil {
				return nil, fmt.Errorf("validity check: %w", err)
			}

			if valid {
				mutant, err := g.persist(candidate, kind, attempts)
				if err != nil {
					return nil, err
				}

				mutants = append(mutants, mutant)
				persisted = true
			}
		}

		if !persisted {
			// Retry the kind later, likely with a different random node.
			queue = append(queue, kind)
		}

		seen[candidate] = struct{}{}
		attempts++
	}

	if attempts >= budget && len(mutants) < g.config.Mutants {
		slog.Info("attempt budget exhausted",
			"origin", g.source.Origin,
			"produced", len(mutants),
			"attempts", budget,
		)
	}

	return mutants, nil
}

// persist annotates a valid candidate with its provenance and writes it out.
// A write failure is fatal: a silently missing mutant would break the
// deterministic numbering downstream consumers rely on.
func (g *Generator) persist(candidate string, kind m.MutationType, attempt int) (m.Mutant, error) {
	annotated := Annotate(string(g.source.Content), candidate, kind)

	mutant := m.Mutant{
		Type:    kind,
		Origin:  g.source.Origin,
		Content: []byte(annotated),
	}

	path, err := g.store.Save(mutant, attempt)
	if err != nil {
		return m.Mutant{}, fmt.Errorf("persist mutant: %w", err)
	}

	mutant.File = path

	slog.Info("valid mutant", "kind", kind, "file", path)

	return mutant, nil
}
