package utils

import "time"

// Streak arithmetic is done on unix seconds throughout; instants are only
// formatted at the API boundary.

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ElapsedSeconds is the whole-second streak length at now for a journey that
// started at startUnix. Never negative, so a clock-skewed start date cannot
// produce phantom awards.
func ElapsedSeconds(startUnix int64, now time.Time) int64 {
	elapsed := now.Unix() - startUnix
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
