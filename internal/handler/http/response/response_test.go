package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.Nil(t, resp.Meta)
}

func TestSuccessWithMetaCarriesPagination(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, []string{}, &Meta{
		TotalCount: 133,
		Page:       1,
		Limit:      20,
		TotalPages: 7,
		Showing:    "1-20 of 133",
	})

	resp := decode(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(133), resp.Meta.TotalCount)
	assert.Equal(t, 7, resp.Meta.TotalPages)
	assert.Equal(t, "1-20 of 133", resp.Meta.Showing)
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"month": "month must be between 1 and 12"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decode(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "month must be between 1 and 12", resp.Error.Details["month"])
}

func TestErrorHelperStatusCodes(t *testing.T) {
	cases := []struct {
		name     string
		fn       func(w http.ResponseWriter)
		wantCode int
		wantTag  string
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "bad", nil) }, http.StatusBadRequest, "BAD_REQUEST"},
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "no") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "no") }, http.StatusForbidden, "FORBIDDEN"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "gone") }, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "dup") }, http.StatusConflict, "CONFLICT"},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "boom") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c.fn(rec)
			assert.Equal(t, c.wantCode, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, c.wantTag, resp.Error.Code)
		})
	}
}
