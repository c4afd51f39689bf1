package goPerm

import (
	"errors"
	"testing"
)

func TestRegistryAssignsSequentialIdentifiers(t *testing.T) {
	r := NewRegistry(10)

	for i, name := range []string{"read", "write", "delete"} {
		id, err := r.Register(name)
		if err != nil {
			t.Fatalf("register %q: %v", name, err)
		}
		if id != uint64(i) {
			t.Fatalf("register %q: id %d, want %d", name, id, i)
		}
	}

	if r.Count() != 3 {
		t.Fatalf("count %d, want 3", r.Count())
	}

	id, ok := r.Identifier("write")
	if !ok || id != 1 {
		t.Fatalf("Identifier(write) = %d,%v", id, ok)
	}
	name, ok := r.Name(2)
	if !ok || name != "delete" {
		t.Fatalf("Name(2) = %q,%v", name, ok)
	}
	if _, ok := r.Identifier("nope"); ok {
		t.Fatal("unknown name must not resolve")
	}
}

func TestRegistryRejectsDuplicateAndEmptyNames(t *testing.T) {
	r := NewRegistry(10)

	if _, err := r.Register(""); !errors.Is(err, ErrNameEmpty) {
		t.Fatalf("expected ErrNameEmpty, got %v", err)
	}
	if _, err := r.Register("read"); err != nil {
		t.Fatalf("register read: %v", err)
	}
	if _, err := r.Register("read"); !errors.Is(err, ErrNameExists) {
		t.Fatalf("expected ErrNameExists, got %v", err)
	}
}

func TestRegistryFreeze(t *testing.T) {
	r := NewRegistry(10)
	r.Freeze()

	if _, err := r.Register("read"); !errors.Is(err, ErrRegistryFrozen) {
		t.Fatalf("expected ErrRegistryFrozen, got %v", err)
	}
}

func TestRegistryFlagSpaceExhaustion(t *testing.T) {
	r := NewRegistry(2)

	if _, err := r.Register("a"); err != nil {
		t.Fatalf("register a: %v", err)
	}
	if _, err := r.Register("b"); err != nil {
		t.Fatalf("register b: %v", err)
	}
	if _, err := r.Register("c"); !errors.Is(err, ErrRegistryFull) {
		t.Fatalf("expected ErrRegistryFull, got %v", err)
	}
}

func TestRegistryZeroFlagSpaceDefaults(t *testing.T) {
	r := NewRegistry(0)
	if r.FlagSpace() != DefaultFlagSpace {
		t.Fatalf("flag space %d, want %d", r.FlagSpace(), DefaultFlagSpace)
	}
}
