package profiler

import (
	"time"

	"go.uber.org/zap"
)

// Scope is the aggregate of every recorded run of one named scope.
type Scope struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

// Mean is Total over Count.
func (s Scope) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// LogReport writes one line per scope of Report to log.
func LogReport(log *zap.Logger) {
	for _, s := range Report() {
		log.Info("scope",
			zap.String("name", s.Name),
			zap.Int("count", s.Count),
			zap.Duration("total", s.Total),
			zap.Duration("mean", s.Mean()),
			zap.Duration("max", s.Max))
	}
}
