package mmapfile

import "time"

// FlushPolicy controls when UpdateRegion implicitly flushes a MappedFile to
// disk. It is consulted exactly once per successful mutation. An
// asynchronous mutation (see the manager package) always flushes before
// returning, regardless of policy, to preserve cross-thread visibility.
type FlushPolicy interface {
	// shouldFlush reports whether the accumulated bytes/writes since the
	// last flush warrant an implicit flush now.
	shouldFlush(bytesSinceFlush, writesSinceFlush uint64) bool
}

// ManualFlush never flushes implicitly; only Flush/FlushRange persist.
// This is the default policy.
func ManualFlush() FlushPolicy { return manualPolicy{} }

type manualPolicy struct{}

func (manualPolicy) shouldFlush(uint64, uint64) bool { return false }

// AlwaysFlush flushes synchronously after every accepted mutation.
func AlwaysFlush() FlushPolicy { return alwaysPolicy{} }

type alwaysPolicy struct{}

func (alwaysPolicy) shouldFlush(uint64, uint64) bool { return true }

// EveryNBytes flushes once accumulated bytes written since the last flush
// reach or exceed n.
func EveryNBytes(n uint64) FlushPolicy { return everyBytesPolicy{n: n} }

type everyBytesPolicy struct{ n uint64 }

func (p everyBytesPolicy) shouldFlush(bytesSinceFlush, _ uint64) bool {
	return p.n > 0 && bytesSinceFlush >= p.n
}

// EveryNWrites flushes once the number of write calls since the last flush
// reaches n.
func EveryNWrites(n uint64) FlushPolicy { return everyWritesPolicy{n: n} }

type everyWritesPolicy struct{ n uint64 }

func (p everyWritesPolicy) shouldFlush(_, writesSinceFlush uint64) bool {
	return p.n > 0 && writesSinceFlush >= p.n
}

// EveryMillis is reserved for time-based flushing. It is not yet
// implemented; it behaves as ManualFlush, per spec.
func EveryMillis(d time.Duration) FlushPolicy { return everyMillisPolicy{d: d} }

type everyMillisPolicy struct{ d time.Duration }

func (everyMillisPolicy) shouldFlush(uint64, uint64) bool { return false }
