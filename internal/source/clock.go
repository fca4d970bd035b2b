package source

import "time"

// processStart anchors the monotonic clock; every LastAthenaPingNS value
// produced here and every staleness check in the UI use this same zero.
var processStart = time.Now()

// NowNanos returns monotonic nanoseconds since process start.
func NowNanos() int64 {
	return int64(time.Since(processStart))
}
