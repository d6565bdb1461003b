// Package stopwatch measures how long function calls take. It backs
// the traversal trials in the treescan command; benchmarks should keep
// using the testing package instead.
package stopwatch

import "time"

// Time runs f once and reports how long it took.
func Time(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// Average runs f trials times and reports the mean duration. It
// panics if trials is below 1.
func Average(trials int, f func()) time.Duration {
	if trials < 1 {
		panic("stopwatch: trials must be at least 1")
	}
	var total time.Duration
	for i := 0; i < trials; i++ {
		total += Time(f)
	}
	return total / time.Duration(trials)
}

// Stopwatch marks a point in time and measures the distance from it.
type Stopwatch struct {
	start time.Time
}

// New returns a stopwatch that started now.
func New() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Elapsed reports the time since the stopwatch started or was last
// restarted.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Restart moves the start mark to now.
func (s *Stopwatch) Restart() {
	s.start = time.Now()
}
