package logging

import (
	"fmt"
	"os"
	"runtime"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// This is handled this way so that the config struct doesn't need to be
// threaded through literally every function in the project.
var (
	Mode Flag = Nil
)

// Debugf writes a formatted line to stderr when debug logging is on and is
// a no-op otherwise.
func Debugf(format string, args ...interface{}) {
	if Mode != Debug {
		return
	}
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}

// MemString returns a string containing various statistics on the process's
// current memory usage.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}
