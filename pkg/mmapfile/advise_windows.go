//go:build windows

package mmapfile

// adviseFlag has no Windows equivalent; osMapping.adviseRange on this
// platform is a documented no-op regardless of the value returned here.
func adviseFlag(AdviseKind) int { return 0 }
