// Package adapter contains infrastructure adapters for the mutsol CLI.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	m "mutsol.dev/pkg/mutsol/internal/model"
	"mutsol.dev/pkg/mutsol/internal/solast"
)

// SolcAdapter abstracts the external Solidity compiler. The domain treats
// parsing and validity checking as opaque services: it never inspects
// compiler output beyond the decoded AST and the accept/reject verdict.
type SolcAdapter interface {
	// Parse compiles the file and returns the decoded compact AST.
	Parse(ctx context.Context, solc string, path m.Path) (solast.Node, error)

	// Check reports whether the candidate source compiles. The boolean is
	// the verdict; a non-nil error means the compiler could not be invoked
	// at all, which is an infrastructure failure, not an invalid mutant.
	Check(ctx context.Context, solc string, source []byte) (bool, error)
}

// LocalSolcAdapter invokes a solc binary through os/exec.
type LocalSolcAdapter struct{}

// NewLocalSolcAdapter constructs a LocalSolcAdapter.
func NewLocalSolcAdapter() *LocalSolcAdapter {
	return &LocalSolcAdapter{}
}

// Parse runs `solc --ast-compact-json` into a scratch directory and decodes
// the emitted AST file.
func (a *LocalSolcAdapter) Parse(ctx context.Context, solc string, path m.Path) (solast.Node, error) {
	outDir, err := os.MkdirTemp("", "mutsol-ast-")
	if err != nil {
		return solast.Node{}, fmt.Errorf("create ast dir: %w", err)
	}

	defer func() { _ = os.RemoveAll(outDir) }()

	cmd := exec.CommandContext(ctx, solc, "--ast-compact-json", string(path), "-o", outDir, "--overwrite")

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return solast.Node{}, fmt.Errorf("solc failed on %s: %w: %s", path, err, stderr.String())
	}

	astPath := filepath.Join(outDir, filepath.Base(string(path))+"_json.ast")

	data, err := os.ReadFile(astPath)
	if err != nil {
		return solast.Node{}, fmt.Errorf("read ast output: %w", err)
	}

	value, err := solast.DecodeValue(data)
	if err != nil {
		return solast.Node{}, fmt.Errorf("decode ast for %s: %w", path, err)
	}

	return solast.NewNode(value, ""), nil
}

// Check writes the candidate to a scratch file and compiles it. A non-zero
// exit status means the mutant does not compile; any failure to run the
// compiler or clean up is surfaced as an error.
func (a *LocalSolcAdapter) Check(ctx context.Context, solc string, source []byte) (bool, error) {
	tmp, err := os.CreateTemp("", "mutsol-check-*.sol")
	if err != nil {
		return false, fmt.Errorf("create scratch file: %w", err)
	}

	tmpPath := tmp.Name()

	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(source); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("write scratch file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("close scratch file: %w", err)
	}

	cmd := exec.CommandContext(ctx, solc, tmpPath)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}

		return false, fmt.Errorf("invoke %s: %w", solc, err)
	}

	return true, nil
}
