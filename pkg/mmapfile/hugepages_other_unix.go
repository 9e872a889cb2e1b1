//go:build unix && !linux

package mmapfile

// mapHugeTLBFlag returns 0 on unix platforms without a MAP_HUGETLB
// equivalent wired up here; huge-page requests silently fall back to
// normal pages, per spec §4.5.
func mapHugeTLBFlag() int { return 0 }
