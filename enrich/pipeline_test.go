package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimBucketSuffix(t *testing.T) {
	assert.Equal(t, "0-100", trimBucketSuffix("0-100 Engagement"))
	assert.Equal(t, "1000+", trimBucketSuffix("1000+ Engagement"))
	assert.Equal(t, "", trimBucketSuffix(""))
	// already-trimmed values pass through
	assert.Equal(t, "101-500", trimBucketSuffix("101-500"))
}
