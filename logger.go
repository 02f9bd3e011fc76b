package lvinterop

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the library's diagnostic logger.
// It is a no-op logger unless SetLogger has been called.
//
// Release paths that cannot return an error (handle disposal) report
// failures here, so tests can observe them through a zap observer core.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger replaces the diagnostic logger. Passing nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
