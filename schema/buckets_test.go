package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"echo-analytics/schema"
)

func TestEngagementBucketBoundaries(t *testing.T) {
	assert.Equal(t, "0-100 Engagement", schema.EngagementBucket(0))
	assert.Equal(t, "0-100 Engagement", schema.EngagementBucket(50))
	assert.Equal(t, "0-100 Engagement", schema.EngagementBucket(100))
	assert.Equal(t, "101-500 Engagement", schema.EngagementBucket(101))
	assert.Equal(t, "101-500 Engagement", schema.EngagementBucket(500))
	assert.Equal(t, "501-1000 Engagement", schema.EngagementBucket(501))
	assert.Equal(t, "501-1000 Engagement", schema.EngagementBucket(1000))
	assert.Equal(t, "1000+ Engagement", schema.EngagementBucket(1001))
}

func TestEngagementBucketNegative(t *testing.T) {
	assert.Equal(t, "", schema.EngagementBucket(-1))
}

func TestEngagementBucketMonotonic(t *testing.T) {
	order := map[string]int{
		"0-100 Engagement":    0,
		"101-500 Engagement":  1,
		"501-1000 Engagement": 2,
		"1000+ Engagement":    3,
	}
	prev := 0
	for e := 0; e <= 2000; e++ {
		rank, ok := order[schema.EngagementBucket(e)]
		if !ok {
			t.Fatalf("engagement %d produced unknown bucket", e)
		}
		if rank < prev {
			t.Fatalf("bucket rank decreased at engagement %d", e)
		}
		prev = rank
	}
}

func TestDurationBucketBoundaries(t *testing.T) {
	assert.Equal(t, "5-30 Sec", schema.DurationBucket(30))
	assert.Equal(t, "31-59 Sec", schema.DurationBucket(31))
	assert.Equal(t, "31-59 Sec", schema.DurationBucket(59))
	assert.Equal(t, "1-2 Min", schema.DurationBucket(60))
	assert.Equal(t, "1-2 Min", schema.DurationBucket(119))
	assert.Equal(t, "2-5 Min", schema.DurationBucket(120))
	assert.Equal(t, "2-5 Min", schema.DurationBucket(299))
	assert.Equal(t, "5-10 Min", schema.DurationBucket(300))
	assert.Equal(t, "5-10 Min", schema.DurationBucket(599))
	assert.Equal(t, ">10 Min", schema.DurationBucket(600))
	assert.Equal(t, ">10 Min", schema.DurationBucket(901))
}
