//go:build windows

package mmapfile

import "golang.org/x/sys/windows"

func queryPageSize() uint64 {
	var info windows.SystemInfo

	windows.GetSystemInfo(&info)

	return uint64(info.PageSize)
}
