package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"echo-analytics/etl"
	"echo-analytics/repositories"
	"echo-analytics/schema"
)

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", bearerToken("Bearer abc.def.ghi"))
	// raw tokens without the scheme prefix are passed through
	assert.Equal(t, "abc.def.ghi", bearerToken("abc.def.ghi"))
	assert.Equal(t, "", bearerToken(""))
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusForError(etl.ErrUnsupportedFormat))
	assert.Equal(t, http.StatusBadRequest, statusForError(etl.ErrBadTimestamp))
	assert.Equal(t, http.StatusBadRequest, statusForError(schema.ErrUnknownSource))
	assert.Equal(t, http.StatusInternalServerError, statusForError(repositories.ErrStorageWrite))
	assert.Equal(t, http.StatusInternalServerError, statusForError(errors.New("boom")))
}

func TestStatusForErrorWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("row 3"), etl.ErrBadTimestamp)
	assert.Equal(t, http.StatusBadRequest, statusForError(wrapped))
}
