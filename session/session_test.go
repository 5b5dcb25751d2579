// ABOUTME: Tests for local session storage
// ABOUTME: Round-trip, missing file, and clear semantics
package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	if _, ok := Load(path); ok {
		t.Fatal("expected no session before save")
	}

	s := Session{Token: "tok", Email: "ann@example.com", Name: "Ann"}
	if err := Save(path, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok := Load(path)
	if !ok {
		t.Fatal("expected session after save")
	}
	if got != s {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	if err := Clear(path); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := Load(path); ok {
		t.Error("expected no session after clear")
	}
	if err := Clear(path); err != nil {
		t.Errorf("clearing twice should be a no-op, got %v", err)
	}
}

func TestLoadRejectsTokenlessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"email":"x@example.com"}`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, ok := Load(path); ok {
		t.Error("a session without a token is not a session")
	}
}
