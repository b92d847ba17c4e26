package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagementScore(t *testing.T) {
	audience := 200
	assert.Equal(t, 25.0, EngagementScore(50, &audience))

	small := 3
	assert.InDelta(t, 566.6666, EngagementScore(17, &small), 0.001)
}

func TestEngagementScoreNoAudience(t *testing.T) {
	assert.Equal(t, 0.0, EngagementScore(50, nil))

	zero := 0
	assert.Equal(t, 0.0, EngagementScore(50, &zero))
}
