package enrich

// EngagementScore is engagement as a percentage of audience. Records with no
// audience score 0; a zero audience has no meaningful rate and scores 0 too.
func EngagementScore(engagement int, audience *int) float64 {
	if audience == nil || *audience == 0 {
		return 0
	}
	return float64(engagement) / float64(*audience) * 100
}
