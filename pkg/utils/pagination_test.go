package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseOffsetLimitDefaults(t *testing.T) {
	offset, limit, err := ParseOffsetLimit(queryContext("/listings"), 20)
	require.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 20, limit)
}

func TestParseOffsetLimitExplicit(t *testing.T) {
	offset, limit, err := ParseOffsetLimit(queryContext("/listings?offset=40&limit=5"), 20)
	require.NoError(t, err)
	assert.Equal(t, 40, offset)
	assert.Equal(t, 5, limit)
}

func TestParseOffsetLimitMalformed(t *testing.T) {
	_, _, err := ParseOffsetLimit(queryContext("/listings?offset=abc"), 20)
	assert.EqualError(t, err, "offset is invalid")

	_, _, err = ParseOffsetLimit(queryContext("/listings?limit=1.5"), 20)
	assert.EqualError(t, err, "limit is invalid")
}

func TestParseOptionalFloat(t *testing.T) {
	v, err := ParseOptionalFloat(queryContext("/listings"), "minPrice")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptionalFloat(queryContext("/listings?minPrice=12.5"), "minPrice")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 12.5, *v)

	_, err = ParseOptionalFloat(queryContext("/listings?minPrice=abc"), "minPrice")
	assert.EqualError(t, err, "minPrice is invalid")
}

func TestParseOptionalBool(t *testing.T) {
	v, err := ParseOptionalBool(queryContext("/listings"), "isFree")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptionalBool(queryContext("/listings?isFree=true"), "isFree")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, *v)

	_, err = ParseOptionalBool(queryContext("/listings?isFree=maybe"), "isFree")
	assert.EqualError(t, err, "isFree is invalid")
}
