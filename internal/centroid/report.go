package centroid

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Report is the ordered, append-only diagnostics log surfaced to the
// user after processing. Every line is mirrored to a logrus logger so
// headless runs get live output. Appends are mutex-guarded so a shared
// report stays safe if a host processes documents concurrently.
type Report struct {
	mu    sync.Mutex
	log   logrus.FieldLogger
	lines []string
}

// NewReport builds a report mirroring to the given logger. A nil
// logger silences the mirror (the collected lines are still kept).
func NewReport(log logrus.FieldLogger) *Report {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Report{log: log}
}

// Infof appends a normal progress line.
func (r *Report) Infof(format string, args ...any) {
	r.append(format, args...)
	r.log.Infof(format, args...)
}

// Warnf appends a recoverable-condition line (skips, failures).
func (r *Report) Warnf(format string, args ...any) {
	r.append(format, args...)
	r.log.Warnf(format, args...)
}

func (r *Report) append(format string, args ...any) {
	r.mu.Lock()
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
	r.mu.Unlock()
}

// Lines returns a copy of the collected diagnostics in append order.
func (r *Report) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}
