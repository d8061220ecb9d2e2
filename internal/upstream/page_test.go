package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePageBareArray(t *testing.T) {
	payload := json.RawMessage(`[{"name":"a"},{"name":"b"}]`)
	pg, err := decodePage[map[string]string](payload, 3, 10)
	require.NoError(t, err)

	assert.Len(t, pg.Items, 2)
	assert.Equal(t, 1, pg.Page, "bare arrays carry no paging and are one full page")
	assert.Equal(t, 1, pg.TotalPages)
	assert.Equal(t, 2, pg.Total)
}

func TestDecodePageEnvelope(t *testing.T) {
	payload := json.RawMessage(`{"items":[1,2,3],"page":2,"limit":3,"total":8,"totalPages":3}`)
	pg, err := decodePage[int](payload, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, pg.Items)
	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, 8, pg.Total)
}

func TestDecodePageDerivesTotalPages(t *testing.T) {
	payload := json.RawMessage(`{"items":[1,2],"page":1,"limit":10,"total":25}`)
	pg, err := decodePage[int](payload, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, pg.TotalPages, "ceil(25/10)")
}

func TestDecodePageClampsReportedPage(t *testing.T) {
	payload := json.RawMessage(`{"items":[],"page":9,"limit":10,"total":11,"totalPages":2}`)
	pg, err := decodePage[int](payload, 9, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, pg.Page)
}

func TestDecodePageEmptyPayload(t *testing.T) {
	pg, err := decodePage[int](nil, 4, 10)
	require.NoError(t, err)
	assert.NotNil(t, pg.Items)
	assert.Empty(t, pg.Items)
	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 1, pg.TotalPages)
}

func TestDecodePageWhitespaceArray(t *testing.T) {
	payload := json.RawMessage("\n\t [1,2]")
	pg, err := decodePage[int](payload, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, pg.Items)
}

func TestDecodePageBadShape(t *testing.T) {
	_, err := decodePage[int](json.RawMessage(`{"items":"nope"}`), 1, 10)
	assert.Error(t, err)
}
