package app

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// logPanic writes a panic and its stack to the log before letting it continue.
func (a *App) logPanic() {
	r := recover()
	if r == nil {
		return
	}
	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf("app: panic in frame %d: %v", a.frameNo, r))
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			a.log.WriteLineString(line)
		}
	}
	panic(r)
}
