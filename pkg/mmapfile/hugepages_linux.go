//go:build linux

package mmapfile

import "golang.org/x/sys/unix"

func mapHugeTLBFlag() int { return unix.MAP_HUGETLB }
