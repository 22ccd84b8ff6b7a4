package core

import "runtime"

// HardwareConcurrency returns the number of logical CPUs usable by the process,
// or 0 if it cannot be determined.
func HardwareConcurrency() uint {
	if n := runtime.NumCPU(); n > 0 {
		return uint(n)
	}
	return 0
}
