package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   string `json:"name" validate:"required"`
	Rating *int   `json:"rating" validate:"nullable,between=1,5"`
}

func postJSON(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestJSONDecodesAndValidates(t *testing.T) {
	var in payload
	errs, err := JSON(postJSON(`{"name":"Beans","rating":4}`), &in)
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, "Beans", in.Name)
	require.NotNil(t, in.Rating)
	assert.Equal(t, 4, *in.Rating)
}

func TestJSONReportsValidationErrors(t *testing.T) {
	var in payload
	errs, err := JSON(postJSON(`{"rating":9}`), &in)
	require.NoError(t, err)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "rating")
}

func TestJSONRejectsMalformedBody(t *testing.T) {
	var in payload
	_, err := JSON(postJSON(`{"name":`), &in)
	assert.Error(t, err)
}

func TestJSONEmptyBodyActsAsEmptyObject(t *testing.T) {
	var in payload
	errs, err := JSON(postJSON(""), &in)
	require.NoError(t, err)
	assert.Contains(t, errs, "name")
}

func TestJSONWithKeysReportsSubmittedKeys(t *testing.T) {
	var in payload
	keys, errs, err := JSONWithKeys(postJSON(`{"name":"Beans","extra":1}`), &in)
	require.NoError(t, err)
	assert.Nil(t, errs)

	// Submitted keys include unknown ones; zero-valued omissions do not appear.
	assert.Contains(t, keys, "name")
	assert.Contains(t, keys, "extra")
	assert.NotContains(t, keys, "rating")
}
