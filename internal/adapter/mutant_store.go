package adapter

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "mutsol.dev/pkg/mutsol/internal/model"
)

// MutantStore persists mutants and the per-run manifest. Writes are strictly
// sequential within a run, one per successful attempt; a failed write is
// fatal because downstream consumers rely on the deterministic numbering.
type MutantStore interface {
	// Save writes an annotated mutant under a name derived from its origin
	// and the attempt index at which it succeeded, and returns the path.
	Save(mutant m.Mutant, attempt int) (m.Path, error)

	// WriteManifest records the persisted mutants of one origin file.
	WriteManifest(origin m.Path, mutants []m.Mutant) error
}

// LocalMutantStore writes mutants into an output directory through a
// SourceFSAdapter.
type LocalMutantStore struct {
	fs  SourceFSAdapter
	out m.Path
}

// NewLocalMutantStore constructs a LocalMutantStore rooted at out.
func NewLocalMutantStore(fs SourceFSAdapter, out m.Path) *LocalMutantStore {
	return &LocalMutantStore{fs: fs, out: out}
}

// Save writes the mutant to <out>/<origin-stem>_<attempt>.sol.
func (s *LocalMutantStore) Save(mutant m.Mutant, attempt int) (m.Path, error) {
	if err := s.fs.MkdirAll(s.out, 0o750); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("%s_%d.sol", originStem(mutant.Origin), attempt)
	path := m.Path(filepath.Join(string(s.out), name))

	if err := s.fs.WriteFile(path, mutant.Content, 0o600); err != nil {
		return "", fmt.Errorf("write mutant %s: %w", path, err)
	}

	return path, nil
}

// manifestEntry is the on-disk shape of one mutant record.
type manifestEntry struct {
	Type   string `yaml:"type"`
	Origin string `yaml:"origin"`
	File   string `yaml:"file"`
}

// WriteManifest writes <out>/<origin-stem>.mutants.yaml listing every mutant
// produced for the origin, in generation order.
func (s *LocalMutantStore) WriteManifest(origin m.Path, mutants []m.Mutant) error {
	entries := make([]manifestEntry, 0, len(mutants))

	for _, mutant := range mutants {
		entries = append(entries, manifestEntry{
			Type:   string(mutant.Type),
			Origin: string(mutant.Origin),
			File:   string(mutant.File),
		})
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := s.fs.MkdirAll(s.out, 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := m.Path(filepath.Join(string(s.out), originStem(origin)+".mutants.yaml"))

	if err := s.fs.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}

// originStem normalizes an origin path into a flat file-name stem.
func originStem(origin m.Path) string {
	base := filepath.Base(string(origin))

	return strings.TrimSuffix(base, filepath.Ext(base))
}
