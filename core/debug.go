package core

// DebugWriter is a function type for writing debug messages.
type DebugWriter func(string)

// debugPrintln is the global debug sink. No-op by default so the
// firmware carries no output cost unless a platform installs a writer.
var debugPrintln DebugWriter = func(string) {}

// SetDebugWriter installs a platform-specific debug writer (UART, USB
// console, test capture). Pass nil to silence debug output again.
func SetDebugWriter(w DebugWriter) {
	if w == nil {
		w = func(string) {}
	}
	debugPrintln = w
}
