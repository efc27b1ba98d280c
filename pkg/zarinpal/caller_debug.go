//go:build zarinpaldebug

package zarinpal

import (
	"fmt"
	"runtime"
)

// captureCaller reports the function that constructed the error.
func captureCaller() string {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fmt.Sprintf("%s (%s:%d)", fn.Name(), file, line)
	}
	return fmt.Sprintf("%s:%d", file, line)
}
