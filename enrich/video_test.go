package enrich

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"echo-analytics/models"
	"echo-analytics/schema"
)

func TestVideoBackfillRanges(t *testing.T) {
	v := NewVideoSynthesizer(rand.New(rand.NewSource(1)))

	for i := 0; i < 500; i++ {
		p := models.EnrichedPost{}
		p.PostType = "Video"
		v.Backfill(&p)

		if p.VideoViews == nil {
			t.Fatal("video views not set")
		}
		assert.GreaterOrEqual(t, *p.VideoViews, 100)
		assert.LessOrEqual(t, *p.VideoViews, 10000)

		sec := parseDuration(t, p.VideoDuration)
		assert.GreaterOrEqual(t, sec, 30)
		assert.LessOrEqual(t, sec, 900)

		// bucket must agree with the synthesized duration
		assert.Equal(t, schema.DurationBucket(sec), p.VideoDurationBucket)
	}
}

func TestVideoBackfillSkipsNonVideo(t *testing.T) {
	v := NewVideoSynthesizer(rand.New(rand.NewSource(1)))

	p := models.EnrichedPost{}
	p.PostType = "Image"
	v.Backfill(&p)

	assert.Nil(t, p.VideoViews)
	assert.Equal(t, "", p.VideoDuration)
	assert.Equal(t, "", p.VideoDurationBucket)
}

func TestVideoBackfillDeterministicWithSeed(t *testing.T) {
	a := models.EnrichedPost{}
	a.PostType = "Video"
	b := models.EnrichedPost{}
	b.PostType = "Video"

	NewVideoSynthesizer(rand.New(rand.NewSource(42))).Backfill(&a)
	NewVideoSynthesizer(rand.New(rand.NewSource(42))).Backfill(&b)

	assert.Equal(t, *a.VideoViews, *b.VideoViews)
	assert.Equal(t, a.VideoDuration, b.VideoDuration)
}

func parseDuration(t *testing.T, d string) int {
	t.Helper()
	minutes, seconds, ok := strings.Cut(d, ":")
	if !ok {
		t.Fatalf("unexpected duration format %q", d)
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		t.Fatal(err)
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		t.Fatal(err)
	}
	return m*60 + s
}
