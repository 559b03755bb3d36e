package lookup

import (
	"sync/atomic"

	"weather-report/models"
)

// State holds the most recent successful report. Each lookup replaces it
// wholesale; readers never see a partially built report.
type State struct {
	latest atomic.Pointer[models.Report]
}

// Store replaces the latest report
func (s *State) Store(report models.Report) {
	s.latest.Store(&report)
}

// Latest returns the latest report, or false before the first success
func (s *State) Latest() (models.Report, bool) {
	report := s.latest.Load()
	if report == nil {
		return models.Report{}, false
	}
	return *report, true
}
