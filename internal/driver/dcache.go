package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"syntek/internal/diag"
	"syntek/internal/project"
	"syntek/internal/source"
)

// Schema version; increment when CachedUnit changes shape.
const diskCacheSchemaVersion uint16 = 2

// DiskCache stores per-file analysis summaries keyed by content hash and
// analysis options. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedUnit is the msgpack payload of one analyzed file.
type CachedUnit struct {
	Schema      uint16
	Path        string
	Hash        project.Digest
	Summary     Summary
	Diagnostics []CachedDiagnostic
	Dropped     int
}

// CachedDiagnostic stores a diagnostic with offsets only; the file ID is
// reassigned on restore.
type CachedDiagnostic struct {
	Severity diag.Severity
	Code     diag.Code
	Message  string
	Start    uint32
	End      uint32
	Notes    []CachedNote
}

// CachedNote is a note of a cached diagnostic; notes always point into the
// same file as their diagnostic.
type CachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

// OpenDiskCache creates dir if needed.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key project.Digest) string {
	h := hex.EncodeToString(key[:])
	// двухсимвольный префикс, чтобы не раздувать один каталог
	return filepath.Join(c.dir, h[:2], h+".mp")
}

// Put writes payload atomically (temp file + rename).
func (c *DiskCache) Put(key project.Digest, payload *CachedUnit) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the payload for key. A missing entry or a stale schema is a miss.
func (c *DiskCache) Get(key project.Digest, out *CachedUnit) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func cacheKey(file *source.File, opts Options) project.Digest {
	return project.Combine(project.Digest(file.Hash), opts.fingerprint())
}

func toCached(u *Unit) *CachedUnit {
	cu := &CachedUnit{
		Path:    u.File.Path,
		Hash:    project.Digest(u.File.Hash),
		Summary: u.Summary,
		Dropped: u.Bag.Dropped(),
	}
	for _, d := range u.Bag.Items() {
		cd := CachedDiagnostic{
			Severity: d.Severity,
			Code:     d.Code,
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		cu.Diagnostics = append(cu.Diagnostics, cd)
	}
	return cu
}

func fromCached(file *source.File, cu *CachedUnit, maxDiagnostics int) *Unit {
	u := &Unit{
		File:    file,
		Bag:     diag.NewBag(maxDiagnostics),
		Cached:  true,
		Summary: cu.Summary,
	}
	for _, d := range cu.Diagnostics {
		sp := source.Span{File: file.ID, Start: d.Start, End: d.End}
		restored := diag.New(d.Severity, d.Code, sp, d.Message)
		for _, n := range d.Notes {
			restored = restored.WithNote(source.Span{File: file.ID, Start: n.Start, End: n.End}, n.Msg)
		}
		u.Bag.Add(restored)
	}
	u.Bag.AddDropped(cu.Dropped)
	return u
}
