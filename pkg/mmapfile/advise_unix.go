//go:build unix

package mmapfile

import "golang.org/x/sys/unix"

func adviseFlag(kind AdviseKind) int {
	switch kind {
	case AdviseRandom:
		return unix.MADV_RANDOM
	case AdviseSequential:
		return unix.MADV_SEQUENTIAL
	case AdviseWillNeed:
		return unix.MADV_WILLNEED
	case AdviseDontNeed:
		return unix.MADV_DONTNEED
	default:
		return unix.MADV_NORMAL
	}
}
