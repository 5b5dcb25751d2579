// ABOUTME: Tests for the temporary image reference registry
// ABOUTME: Validates release semantics and data URL encoding
package blob

import (
	"strings"
	"testing"

	"github.com/Jeonsowon/Portfolio-Project/models"
)

func TestAddAndRelease(t *testing.T) {
	r := NewRegistry()

	ref := r.Add([]byte("png bytes"))
	if !IsBlobRef(ref) {
		t.Fatalf("expected blob ref, got %q", ref)
	}
	if _, ok := r.Get(ref); !ok {
		t.Fatal("ref should be resolvable before release")
	}

	r.Release(ref)
	if _, ok := r.Get(ref); ok {
		t.Error("ref should be gone after release")
	}

	// Double release and foreign strings are no-ops.
	r.Release(ref)
	r.Release("data:image/png;base64,AA==")
	if r.Len() != 0 {
		t.Errorf("expected 0 outstanding refs, got %d", r.Len())
	}
}

func TestRemovingProjectLeavesNoOutstandingRefs(t *testing.T) {
	r := NewRegistry()
	p := models.Default()
	p = p.AddProjectImages(0, []string{r.Add([]byte("a")), r.Add([]byte("b"))})

	p = p.RemoveProject(0, r.Release)

	if r.Len() != 0 {
		t.Errorf("expected no leaked refs after project removal, got %d", r.Len())
	}
	_ = p
}

func TestDataURLEncoding(t *testing.T) {
	u := DataURL("shot.png", []byte{1, 2, 3})
	if !strings.HasPrefix(u, "data:image/png;base64,") {
		t.Errorf("unexpected data URL prefix: %q", u)
	}
	if IsBlobRef(u) {
		t.Error("data URL must not be treated as a temporary ref")
	}

	if u := DataURL("noext", []byte{1}); !strings.HasPrefix(u, "data:application/octet-stream;base64,") {
		t.Errorf("unknown extension should fall back to octet-stream: %q", u)
	}
}
