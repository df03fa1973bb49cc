package utils

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListParams_Podrazumevano(t *testing.T) {
	params := ParseListParams(url.Values{})

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.PageSize)
	assert.Empty(t, params.Search)
	assert.Empty(t, params.SortBy)
	assert.True(t, params.Ascending)
}

func TestParseListParams_SviParametri(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("pageSize", "25")
	values.Set("search", "  Petar ")
	values.Set("sortBy", "prezime")
	values.Set("ascending", "false")

	params := ParseListParams(values)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.PageSize)
	assert.Equal(t, "Petar", params.Search)
	assert.Equal(t, "prezime", params.SortBy)
	assert.False(t, params.Ascending)
}

func TestParseListParams_NeispravneVrednosti(t *testing.T) {
	values := url.Values{}
	values.Set("page", "-2")
	values.Set("pageSize", "abc")
	values.Set("ascending", "mozda")

	params := ParseListParams(values)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.PageSize)
	assert.True(t, params.Ascending)
}

func TestParseListParams_OgranicenjeVelicineStrane(t *testing.T) {
	values := url.Values{}
	values.Set("pageSize", strconv.Itoa(MaxPageSize+50))

	params := ParseListParams(values)
	assert.Equal(t, MaxPageSize, params.PageSize)
}
