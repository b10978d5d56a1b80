package probe

import (
	"bytes"
	"fmt"
)

// Run is the context of one test run, created by Probe.Setup and threaded
// through Fetch, CheckResult and PersistResult. A fresh Run starts with an
// empty body and a failed verdict; nothing from a previous run carries over.
type Run struct {
	TestID    string
	Path      string
	Query     string
	StartedMS int64 // epoch millis at Setup time
	Body      bytes.Buffer
	Passed    bool
}

// ResultKey names the persisted result object:
// <startMillis>_<testID>_<PASS|FAIL>.txt
func (r *Run) ResultKey() string {
	verdict := "FAIL"
	if r.Passed {
		verdict = "PASS"
	}
	return fmt.Sprintf("%d_%s_%s.txt", r.StartedMS, r.TestID, verdict)
}
