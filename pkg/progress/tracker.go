// Package progress reports how many bytes an archive operation has processed.
//
// A Tracker is driven synchronously by the operation that owns it; it logs at
// every 10% step and once more with a summary when stopped. All methods are
// safe to call on a nil *Tracker, which reports nothing.
package progress

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

const stepPercent = 10

// Tracker counts processed bytes against an expected total.
type Tracker struct {
	logger    zerolog.Logger
	label     string
	total     uint64
	processed uint64
	lastStep  int
	started   time.Time
	running   bool

	now func() time.Time
}

// New creates a tracker whose events are tagged with label.
func New(label string, logger zerolog.Logger) *Tracker {
	return &Tracker{
		logger: logger,
		label:  label,
		now:    time.Now,
	}
}

// Start resets the counters for an operation of total bytes.
func (t *Tracker) Start(total uint64) {
	if t == nil {
		return
	}
	if total == 0 {
		total = 1 // Avoid division by zero
	}
	t.total = total
	t.processed = 0
	t.lastStep = 0
	t.started = t.now()
	t.running = true

	t.logger.Debug().
		Str("operation", t.label).
		Str("total", humanize.IBytes(total)).
		Msg("starting")
}

// Add records n more processed bytes.
func (t *Tracker) Add(n uint64) {
	if t == nil || !t.running || n == 0 {
		return
	}
	t.processed += n

	step := t.Percent() / stepPercent
	if step <= t.lastStep {
		return
	}
	t.lastStep = step
	t.logger.Info().
		Str("operation", t.label).
		Int("percent", min(step*stepPercent, 100)).
		Str("processed", humanize.IBytes(t.processed)).
		Str("total", humanize.IBytes(t.total)).
		Msg("progress")
}

// Percent returns the completed share of the total, capped at 100.
func (t *Tracker) Percent() int {
	if t == nil || t.total == 0 {
		return 0
	}
	return int(min(t.processed*100/t.total, 100))
}

// Processed returns the number of bytes recorded so far.
func (t *Tracker) Processed() uint64 {
	if t == nil {
		return 0
	}
	return t.processed
}

// Stop logs the summary. Further calls to Add are ignored until Start.
func (t *Tracker) Stop() {
	if t == nil || !t.running {
		return
	}
	t.running = false

	elapsed := t.now().Sub(t.started)
	seconds := elapsed.Seconds()
	if seconds < 0.001 {
		seconds = 0.001
	}
	rate := uint64(float64(t.processed) / seconds)

	t.logger.Info().
		Str("operation", t.label).
		Str("processed", humanize.IBytes(t.processed)).
		Dur("elapsed", elapsed).
		Str("rate", humanize.IBytes(rate)+"/s").
		Msg("completed")
}

// Reader counts bytes read through it.
type Reader struct {
	R io.Reader
	T *Tracker
}

func (pr *Reader) Read(p []byte) (n int, err error) {
	n, err = pr.R.Read(p)
	if n > 0 {
		pr.T.Add(uint64(n))
	}
	return
}
