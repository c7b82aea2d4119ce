package main

import (
	"sync"
	"time"
)

// Progress reporting interval during rendering.
const reportInterval = 5 * time.Second

// renderStats tracks rendering throughput for periodic progress reports.
type renderStats struct {
	mu         sync.Mutex
	total      int
	done       int
	skipped    int
	start      time.Time
	lastReport time.Time
	windowDone int
}

func newRenderStats(total int) *renderStats {
	now := time.Now()
	return &renderStats{total: total, start: now, lastReport: now}
}

func (rs *renderStats) frameDone() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.done++
	rs.windowDone++
}

func (rs *renderStats) frameSkipped() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.skipped++
}

// snapshot returns current progress counters.
func (rs *renderStats) snapshot() (done, skipped, total int) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.done, rs.skipped, rs.total
}

// maybeReport prints a progress line at most once per reportInterval,
// with the encode rate over the window since the last report.
func (rs *renderStats) maybeReport() {
	rs.mu.Lock()
	now := time.Now()
	window := now.Sub(rs.lastReport)
	if window < reportInterval {
		rs.mu.Unlock()
		return
	}
	done, total := rs.done, rs.total
	fps := float64(rs.windowDone) / window.Seconds()
	rs.windowDone = 0
	rs.lastReport = now
	rs.mu.Unlock()

	logMsg("RENDER", "%d/%d frames (%.1f%%) %.1f fps", done, total, percent(done, total), fps)
}

// final prints the end-of-run summary.
func (rs *renderStats) final() {
	rs.mu.Lock()
	done, skipped, total := rs.done, rs.skipped, rs.total
	elapsed := time.Since(rs.start)
	rs.mu.Unlock()

	if skipped > 0 {
		logMsg("RENDER", "finished %d/%d frames in %s (%d skipped)", done, total, elapsed.Round(time.Millisecond), skipped)
		return
	}
	logMsg("RENDER", "finished %d/%d frames in %s", done, total, elapsed.Round(time.Millisecond))
}

func percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
