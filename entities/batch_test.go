package entities

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"echo-analytics/logger"
)

func init() {
	logger.Init("error")
}

// fakeExtractor records each message as its own entity value and can be told
// to fail for specific inputs.
type fakeExtractor struct {
	mu     sync.Mutex
	failOn map[string]bool
	calls  int
}

func (f *fakeExtractor) Extract(_ context.Context, message string) (EntityMap, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.failOn[message] {
		return nil, errors.New("model unavailable")
	}
	v := "entity for " + message
	return EntityMap{"Organization": &v}, nil
}

func TestProcessBatchesOrderPreserved(t *testing.T) {
	messages := make([]string, 20)
	for i := range messages {
		messages[i] = fmt.Sprintf("message %d", i)
	}

	ex := &fakeExtractor{}
	results := ProcessBatches(context.Background(), ex, messages, 3, 4)

	if len(results) != len(messages) {
		t.Fatalf("expected %d results, got %d", len(messages), len(results))
	}
	for i, m := range results {
		if m == nil {
			t.Fatalf("result %d is nil", i)
		}
		assert.Equal(t, "entity for "+messages[i], *m["Organization"])
	}
	assert.Equal(t, len(messages), ex.calls)
}

func TestProcessBatchesFailedChunkIsNulled(t *testing.T) {
	messages := []string{"m0", "m1", "m2", "m3", "m4"}
	ex := &fakeExtractor{failOn: map[string]bool{"m2": true}}

	// batch size 2: chunks are {m0,m1}, {m2,m3}, {m4}
	results := ProcessBatches(context.Background(), ex, messages, 2, 1)

	assert.NotNil(t, results[0])
	assert.NotNil(t, results[1])
	// the failing chunk is nulled out entirely
	assert.Nil(t, results[2])
	assert.Nil(t, results[3])
	// later chunks are unaffected
	assert.NotNil(t, results[4])
}

func TestProcessBatchesEmptyInput(t *testing.T) {
	results := ProcessBatches(context.Background(), &fakeExtractor{}, nil, 50, 4)
	assert.Empty(t, results)
}

func TestProcessBatchesDefaultsForBadKnobs(t *testing.T) {
	messages := []string{"a", "b"}
	results := ProcessBatches(context.Background(), &fakeExtractor{}, messages, 0, 0)
	assert.Len(t, results, 2)
	for _, m := range results {
		assert.NotNil(t, m)
	}
}

func TestParseResponse(t *testing.T) {
	e := &GeminiExtractor{entityTypes: []string{"Person Names", "Organization", "Hash Tags"}}

	text := strings.Join([]string{
		"Person Names: Ratan Tata",
		"Organization: Tata Group",
		"Hash Tags: none",
	}, "\n")
	out := e.parseResponse(text)

	if assert.NotNil(t, out["Person Names"]) {
		assert.Equal(t, "Ratan Tata", *out["Person Names"])
	}
	if assert.NotNil(t, out["Organization"]) {
		assert.Equal(t, "Tata Group", *out["Organization"])
	}
	// "none" answers stay null
	assert.Nil(t, out["Hash Tags"])
}

func TestParseResponseMissingTypesStayNull(t *testing.T) {
	e := &GeminiExtractor{entityTypes: []string{"Person Names", "Organization"}}

	out := e.parseResponse("Organization: Tata Group")
	assert.Nil(t, out["Person Names"])
	assert.NotNil(t, out["Organization"])
}
