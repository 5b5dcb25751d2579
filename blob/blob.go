// ABOUTME: In-process registry for temporary image references
// ABOUTME: Refs must be released by their owning project or they live for the process lifetime
package blob

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Prefix marks a temporary in-memory reference, as opposed to a persisted
// data URL which needs no cleanup.
const Prefix = "blob:"

// IsBlobRef reports whether s is a temporary reference from a Registry.
func IsBlobRef(s string) bool {
	return strings.HasPrefix(s, Prefix)
}

// Registry holds temporary image payloads keyed by opaque reference.
// A reference is valid until Release is called for it; ownership sits with
// the project entry that stores the reference.
type Registry struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string][]byte)}
}

// Add stores a payload and returns its reference.
func (r *Registry) Add(data []byte) string {
	ref := Prefix + ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[ref] = data
	return ref
}

// Get returns the payload for a reference, if still registered.
func (r *Registry) Get(ref string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.entries[ref]
	return data, ok
}

// Release frees a reference. Releasing a persisted data URL, an unknown
// ref, or the same ref twice is a no-op, so callers can hand every image
// string here without checking first.
func (r *Registry) Release(ref string) {
	if !IsBlobRef(ref) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, ref)
}

// Len returns the number of outstanding references.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// DataURL encodes file bytes as a self-contained data URL, the persisted
// image representation that survives save/reload with no cleanup duty.
func DataURL(filename string, data []byte) string {
	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// AsDataURL materializes a temporary reference into a persisted data URL,
// sniffing the content type from the payload. Non-blob strings pass
// through unchanged; an unknown ref reports false.
func (r *Registry) AsDataURL(ref string) (string, bool) {
	if !IsBlobRef(ref) {
		return ref, true
	}
	data, ok := r.Get(ref)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("data:%s;base64,%s",
		http.DetectContentType(data), base64.StdEncoding.EncodeToString(data)), true
}
