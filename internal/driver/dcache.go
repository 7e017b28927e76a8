package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"modlint/internal/diag"
	"modlint/internal/source"
)

// Bump when the payload format changes; stale entries are simply misses.
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists per-file findings keyed by content hash, so unchanged
// files skip tokenizing and checks on repeat runs. Thread-safe for
// concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// diskNote mirrors diag.Note without the FileID, which is only valid
// within one process.
type diskNote struct {
	Start uint32
	End   uint32
	Msg   string
}

// diskFinding mirrors diag.Diagnostic with spans reduced to offsets.
type diskFinding struct {
	Severity uint8
	Code     uint32
	Message  string
	Start    uint32
	End      uint32
	Notes    []diskNote
}

type diskPayload struct {
	Schema   uint16
	Findings []diskFinding
}

// OpenDiskCache initializes and returns a disk cache at the standard
// XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt is like OpenDiskCache but uses an explicit directory.
// Tests use it to avoid touching the user's real cache.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// key mixes the file content hash with the config fingerprint and schema
// version, so config edits and format changes both invalidate entries.
func (c *DiskCache) key(file *source.File, configHash string) string {
	h := sha256.New()
	h.Write(file.Hash[:])
	fmt.Fprintf(h, ";cfg=%s;schema=%d", configHash, diskCacheSchemaVersion)
	return hex.EncodeToString(h.Sum(nil))
}

func (c *DiskCache) pathFor(key string) string {
	// Subdirectory keeps entries separate from anything else in c.dir.
	return filepath.Join(c.dir, "files", key+".mp")
}

// Lookup returns the cached findings for the file under the given config
// fingerprint. Spans are rebuilt against the file's current FileID. Any
// read or decode failure is treated as a miss.
func (c *DiskCache) Lookup(file *source.File, configHash string) ([]diag.Diagnostic, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(c.key(file, configHash))
	f, err := os.Open(p)
	if err != nil {
		return nil, false
	}
	defer func() {
		_ = f.Close()
	}()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}

	out := make([]diag.Diagnostic, 0, len(payload.Findings))
	for _, finding := range payload.Findings {
		d := diag.Diagnostic{
			Severity: diag.Severity(finding.Severity),
			Code:     diag.Code(finding.Code),
			Message:  finding.Message,
			Primary: source.Span{
				File:  file.ID,
				Start: finding.Start,
				End:   finding.End,
			},
		}
		for _, note := range finding.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: file.ID, Start: note.Start, End: note.End},
				Msg:  note.Msg,
			})
		}
		out = append(out, d)
	}
	return out, true
}

// Store writes the findings for a file. Failures are silent: the cache is
// an optimization and never affects results.
func (c *DiskCache) Store(file *source.File, configHash string, items []diag.Diagnostic) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := diskPayload{Schema: diskCacheSchemaVersion}
	for _, d := range items {
		finding := diskFinding{
			Severity: uint8(d.Severity),
			Code:     uint32(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, note := range d.Notes {
			finding.Notes = append(finding.Notes, diskNote{
				Start: note.Span.Start,
				End:   note.Span.End,
				Msg:   note.Msg,
			})
		}
		payload.Findings = append(payload.Findings, finding)
	}

	p := c.pathFor(c.key(file, configHash))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return
	}
	if err := f.Close(); err != nil {
		return
	}
	// Atomic replacement.
	_ = os.Rename(f.Name(), p)
}

// DropAll removes every cache entry, useful after upgrades.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
