package mmapfile

// AdviseKind is a hint to the OS about expected access patterns for
// pre-fetch and eviction decisions.
type AdviseKind int

const (
	// AdviseNormal requests the default read-ahead behavior.
	AdviseNormal AdviseKind = iota
	// AdviseRandom hints that access will be in no particular order.
	AdviseRandom
	// AdviseSequential hints that access will be mostly sequential.
	AdviseSequential
	// AdviseWillNeed hints that the range will be accessed soon.
	AdviseWillNeed
	// AdviseDontNeed hints that the range will not be needed soon.
	AdviseDontNeed
)

// Advise hints to the OS about the expected access pattern for [o, o+l).
// Failures surface as a KindAdviceFailed error but never corrupt state; on
// platforms with no equivalent primitive (Windows), Advise is a no-op that
// always succeeds.
func (mf *MappedFile) Advise(offset, length uint64, kind AdviseKind) error {
	mf.mu.RLock()
	defer mf.mu.RUnlock()

	if err := mf.checkUsable("Advise"); err != nil {
		return err
	}

	if err := ensureInBounds("Advise", mf.path, offset, length, mf.cachedLen); err != nil {
		return err
	}

	if length == 0 {
		return nil
	}

	if err := mf.mapping.adviseRange(offset, length, adviseFlag(kind)); err != nil {
		return adviceFailed("Advise", mf.path, err)
	}

	return nil
}
