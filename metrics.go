package qphase

import "sync"

// Metrics tracks the query cost of one estimator, the quantity the
// Heisenberg-limited scaling guarantee is stated against
type Metrics struct {
	mu                 sync.RWMutex
	OracleApplications int64
	Measurements       int64
	Levels             int
	TotalRepeats       int
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordTrial() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.OracleApplications++
	m.Measurements++
}

func (m *Metrics) recordLevel(nRepeats int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Levels++
	m.TotalRepeats += nRepeats
}

// ExportMetrics returns a snapshot of the counters
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"oracle_applications": m.OracleApplications,
		"measurements":        m.Measurements,
		"levels":              m.Levels,
		"total_repeats":       m.TotalRepeats,
	}
}
