//go:build unix

package mmapfile

import "golang.org/x/sys/unix"

func queryPageSize() uint64 {
	return uint64(unix.Getpagesize())
}
