// Package controller contains the user-facing output layer for the mutsol CLI.
package controller

import (
	m "mutsol.dev/pkg/mutsol/internal/model"
)

// UI abstracts terminal output so the workflow never prints directly.
type UI interface {
	// DisplayDiscovery renders the per-file, per-kind mutation point counts.
	DisplayDiscovery(counts []m.PointCount) error

	// DisplayMutant reports one persisted mutant and its diff.
	DisplayMutant(mutant m.Mutant, diff string)

	// DisplaySummary reports how many mutants a run produced out of its quota.
	DisplaySummary(origin m.Path, produced, quota int)
}
