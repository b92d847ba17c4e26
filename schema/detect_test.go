package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"echo-analytics/schema"
)

func rivalIQColumns() []string {
	reg := schema.NewRegistry()
	return append([]string{}, reg.Formats[0].RequiredFields...)
}

func phantomBusterColumns() []string {
	reg := schema.NewRegistry()
	return append([]string{}, reg.Formats[1].RequiredFields...)
}

func TestDetectRivalIQ(t *testing.T) {
	reg := schema.NewRegistry()

	// extra columns must not hurt detection
	cols := append(rivalIQColumns(), "extra_export_column")
	source, err := reg.Detect(cols)
	assert.NoError(t, err)
	assert.Equal(t, schema.SourceRivalIQ, source)
}

func TestDetectPhantomBuster(t *testing.T) {
	reg := schema.NewRegistry()

	source, err := reg.Detect(phantomBusterColumns())
	assert.NoError(t, err)
	assert.Equal(t, schema.SourcePhantomBuster, source)
}

func TestDetectRequiresEveryField(t *testing.T) {
	reg := schema.NewRegistry()

	cols := rivalIQColumns()
	// drop one required field; partial matches are rejected
	cols = cols[:len(cols)-1]
	_, err := reg.Detect(cols)
	assert.ErrorIs(t, err, schema.ErrUnknownSource)
}

func TestDetectUnknownColumns(t *testing.T) {
	reg := schema.NewRegistry()

	_, err := reg.Detect([]string{"foo", "bar", "baz"})
	assert.ErrorIs(t, err, schema.ErrUnknownSource)
}

func TestDetectPriorityOrder(t *testing.T) {
	reg := schema.NewRegistry()

	// a table carrying both column sets matches the first format
	cols := append(rivalIQColumns(), phantomBusterColumns()...)
	source, err := reg.Detect(cols)
	assert.NoError(t, err)
	assert.Equal(t, schema.SourceRivalIQ, source)
}
