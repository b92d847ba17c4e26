package enrich

import (
	"fmt"
	"math/rand"

	"echo-analytics/models"
	"echo-analytics/schema"
)

// VideoSynthesizer backfills video metrics for Video posts with placeholder
// values. The numbers are synthesized, not measured: the non-Rival-IQ sources
// carry no video telemetry, and reporting needs the columns populated. The
// random source is injected so tests can seed it.
type VideoSynthesizer struct {
	rnd *rand.Rand
}

func NewVideoSynthesizer(rnd *rand.Rand) *VideoSynthesizer {
	return &VideoSynthesizer{rnd: rnd}
}

// Backfill populates views, duration and the duration bucket on Video posts.
// Non-video posts are left untouched.
func (v *VideoSynthesizer) Backfill(p *models.EnrichedPost) {
	if p.PostType != "Video" {
		return
	}

	views := v.rnd.Intn(9901) + 100 // 100..10000
	p.VideoViews = &views

	durationSec := v.rnd.Intn(871) + 30 // 30..900
	p.VideoDuration = fmt.Sprintf("%d:%02d", durationSec/60, durationSec%60)
	p.VideoDurationBucket = schema.DurationBucket(durationSec)
}
