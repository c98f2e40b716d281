package adapter

import (
	"context"
	"testing"
)

// The compiler adapter is exercised here without a real solc install: "true"
// and "false" stand in for a compiler that accepts or rejects everything,
// which is all the verdict mapping depends on.
func TestLocalSolcAdapterCheck(t *testing.T) {
	adapter := NewLocalSolcAdapter()
	ctx := context.Background()

	t.Run("zero exit status means valid", func(t *testing.T) {
		valid, err := adapter.Check(ctx, "true", []byte("contract A {}"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !valid {
			t.Error("expected candidate to be accepted")
		}
	})

	t.Run("non-zero exit status means invalid, not an error", func(t *testing.T) {
		valid, err := adapter.Check(ctx, "false", []byte("contract A {"))
		if err != nil {
			t.Fatalf("expected a verdict, got error: %v", err)
		}

		if valid {
			t.Error("expected candidate to be rejected")
		}
	})

	t.Run("missing binary is an infrastructure error", func(t *testing.T) {
		if _, err := adapter.Check(ctx, "mutsol-no-such-compiler", nil); err == nil {
			t.Error("expected error for a missing compiler binary")
		}
	})
}

func TestLocalSolcAdapterParse(t *testing.T) {
	adapter := NewLocalSolcAdapter()

	t.Run("missing binary fails", func(t *testing.T) {
		_, err := adapter.Parse(context.Background(), "mutsol-no-such-compiler", "a.sol")
		if err == nil {
			t.Error("expected error for a missing compiler binary")
		}
	})

	t.Run("compiler rejecting the file fails", func(t *testing.T) {
		_, err := adapter.Parse(context.Background(), "false", "a.sol")
		if err == nil {
			t.Error("expected error when the compiler exits non-zero")
		}
	})
}
