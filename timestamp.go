package hookverify

import (
	"math"
	"time"
)

const msPerMinute = int64(time.Minute / time.Millisecond)

// ValidateTimestamp checks that ts (seconds since the epoch) lies within
// leewayMinutes of now. The difference is rounded up to whole minutes, so a
// single millisecond past a minute boundary counts as the next minute. A
// difference equal to the leeway passes; a negative leeway never does.
func ValidateTimestamp(ts int64, leewayMinutes int, now time.Time) error {
	// Timestamps whose millisecond value would overflow are never recent.
	if ts > math.MaxInt64/1000 || ts < math.MinInt64/1000 {
		return newError(ReasonTimestampOutOfWindow)
	}

	nowMs := now.UnixMilli()
	tsMs := ts * 1000

	var diffMs int64
	if nowMs >= tsMs {
		diffMs = nowMs - tsMs
	} else {
		diffMs = tsMs - nowMs
	}
	// Subtraction of opposite-signed values can wrap.
	if diffMs < 0 {
		return newError(ReasonTimestampOutOfWindow)
	}

	diffMinutes := diffMs / msPerMinute
	if diffMs%msPerMinute != 0 {
		diffMinutes++
	}

	if diffMinutes > int64(leewayMinutes) {
		return newError(ReasonTimestampOutOfWindow)
	}
	return nil
}
