package ui

import "go.uber.org/zap"

// logger is shared by every node of the tree. The toolkit is single-threaded
// so it is swapped without locking; set it before building a tree.
var logger = zap.NewNop()

// SetLogger installs l as the tree logger. A nil l silences logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Named("ui")
}

// Logger returns the tree logger.
func Logger() *zap.Logger { return logger }
