package schema

// EngagementBucket maps a total engagement count to its label. Negative
// values have no bucket and return the empty string.
func EngagementBucket(engagement int) string {
	switch {
	case engagement >= 0 && engagement <= 100:
		return "0-100 Engagement"
	case engagement >= 101 && engagement <= 500:
		return "101-500 Engagement"
	case engagement >= 501 && engagement <= 1000:
		return "501-1000 Engagement"
	case engagement > 1000:
		return "1000+ Engagement"
	}
	return ""
}

// DurationBucket maps a video duration in seconds to its label.
func DurationBucket(durationSec int) string {
	switch {
	case durationSec <= 30:
		return "5-30 Sec"
	case durationSec <= 59:
		return "31-59 Sec"
	case durationSec <= 119:
		return "1-2 Min"
	case durationSec <= 299:
		return "2-5 Min"
	case durationSec <= 599:
		return "5-10 Min"
	}
	return ">10 Min"
}
