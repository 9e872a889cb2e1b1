package mmiofs

import (
	"io/fs"
	"math/rand/v2"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
)

// ChaosConfig controls fault injection probabilities. Each rate is a
// float64 from 0.0 (never) to 1.0 (always). The zero value disables all
// fault injection.
type ChaosConfig struct {
	// OpenFailRate controls how often Open/OpenFile fail to open a file.
	OpenFailRate float64

	// ReadFailRate controls how often ReadFile fails entirely. Reads through
	// an open File are not faulted.
	ReadFailRate float64

	// WriteFailRate controls how often File.Write fails entirely.
	WriteFailRate float64

	// SyncFailRate controls how often File.Sync (fsync) fails.
	SyncFailRate float64

	// TruncateFailRate controls how often Truncate / File.Truncate fails.
	TruncateFailRate float64

	// RemoveFailRate controls how often Remove fails.
	RemoveFailRate float64

	// RenameFailRate controls how often Rename fails.
	RenameFailRate float64
}

// ChaosMode controls how [Chaos] behaves.
type ChaosMode uint8

const (
	// ChaosModeActive enables fault-rate injection.
	ChaosModeActive ChaosMode = iota
	// ChaosModeNoOp passes every operation directly to the underlying FS.
	ChaosModeNoOp
)

// Chaos wraps an [FS] and injects faults according to a [ChaosConfig], for
// exercising the manager layer's error paths (wrapped I/O errors, partial
// failures during create/copy/delete) without relying on real disk faults.
type Chaos struct {
	underlying FS
	cfg        ChaosConfig
	mode       atomic.Uint32

	mu   sync.Mutex
	rng  *rand.Rand
	hits atomic.Int64
}

// NewChaos returns a Chaos wrapping underlying, seeded for reproducible
// fault sequences across a test run.
func NewChaos(underlying FS, seed uint64, cfg ChaosConfig) *Chaos {
	return &Chaos{
		underlying: underlying,
		cfg:        cfg,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// SetMode switches between ChaosModeActive and ChaosModeNoOp.
func (c *Chaos) SetMode(m ChaosMode) { c.mode.Store(uint32(m)) }

// Faults returns the number of faults injected so far.
func (c *Chaos) Faults() int64 { return c.hits.Load() }

func (c *Chaos) active() bool {
	return ChaosMode(c.mode.Load()) == ChaosModeActive
}

func (c *Chaos) should(rate float64) bool {
	if !c.active() || rate <= 0 {
		return false
	}

	c.mu.Lock()
	hit := c.rng.Float64() < rate
	c.mu.Unlock()

	if hit {
		c.hits.Add(1)
	}

	return hit
}

func pathError(op, path string, errno syscall.Errno) error {
	return &fs.PathError{Op: op, Path: path, Err: errno}
}

func linkError(op, oldpath, newpath string, errno syscall.Errno) error {
	return &os.LinkError{Op: op, Old: oldpath, New: newpath, Err: errno}
}

// Open opens path, possibly injecting an open failure.
func (c *Chaos) Open(path string) (File, error) {
	if c.should(c.cfg.OpenFailRate) {
		return nil, pathError("open", path, syscall.EIO)
	}

	f, err := c.underlying.Open(path)
	if err != nil {
		return nil, err
	}

	return &chaosFile{File: f, chaos: c, path: path}, nil
}

// OpenFile opens path with flag/perm, possibly injecting an open failure.
func (c *Chaos) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	if c.should(c.cfg.OpenFailRate) {
		return nil, pathError("open", path, syscall.EIO)
	}

	f, err := c.underlying.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}

	return &chaosFile{File: f, chaos: c, path: path}, nil
}

// Stat passes through to the underlying filesystem untouched: a missing
// Stat result would surface as a confusing downstream bounds error rather
// than the I/O error callers expect, so this adapter never fails it.
func (c *Chaos) Stat(path string) (os.FileInfo, error) {
	return c.underlying.Stat(path)
}

// Truncate truncates path, possibly injecting a failure.
func (c *Chaos) Truncate(path string, size int64) error {
	if c.should(c.cfg.TruncateFailRate) {
		return pathError("truncate", path, syscall.ENOSPC)
	}

	return c.underlying.Truncate(path, size)
}

// Remove removes path, possibly injecting a failure.
func (c *Chaos) Remove(path string) error {
	if c.should(c.cfg.RemoveFailRate) {
		return pathError("remove", path, syscall.EBUSY)
	}

	return c.underlying.Remove(path)
}

// Rename renames oldpath to newpath, possibly injecting a failure.
func (c *Chaos) Rename(oldpath, newpath string) error {
	if c.should(c.cfg.RenameFailRate) {
		return linkError("rename", oldpath, newpath, syscall.EXDEV)
	}

	return c.underlying.Rename(oldpath, newpath)
}

// ReadFile reads path in full, possibly injecting a read failure.
func (c *Chaos) ReadFile(path string) ([]byte, error) {
	if c.should(c.cfg.ReadFailRate) {
		return nil, pathError("read", path, syscall.EIO)
	}

	return c.underlying.ReadFile(path)
}

// chaosFile wraps an open File to inject write and sync faults, which
// matter most for the manager layer's durability guarantees.
type chaosFile struct {
	File
	chaos *Chaos
	path  string
}

func (f *chaosFile) Write(data []byte) (int, error) {
	if f.chaos.should(f.chaos.cfg.WriteFailRate) {
		return 0, pathError("write", f.path, syscall.EIO)
	}

	return f.File.Write(data)
}

func (f *chaosFile) Sync() error {
	if f.chaos.should(f.chaos.cfg.SyncFailRate) {
		return pathError("sync", f.path, syscall.EIO)
	}

	return f.File.Sync()
}

func (f *chaosFile) Truncate(size int64) error {
	if f.chaos.should(f.chaos.cfg.TruncateFailRate) {
		return pathError("truncate", f.path, syscall.ENOSPC)
	}

	return f.File.Truncate(size)
}

// Compile-time interface checks.
var (
	_ FS   = (*Chaos)(nil)
	_ File = (*chaosFile)(nil)
)
