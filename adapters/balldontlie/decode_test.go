package balldontlie

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    FlexString `json:"id"`
	Score FlexInt    `json:"score"`
	Live  FlexBool   `json:"live"`
}

func TestDecodePage(t *testing.T) {
	page, err := DecodePage([]byte(`{"data": [{"id": 1}], "meta": {"next_cursor": 42}}`))
	require.NoError(t, err)
	assert.True(t, page.HasData())
	assert.Equal(t, "42", page.NextCursor())

	page, err = DecodePage([]byte(`{"meta": {}}`))
	require.NoError(t, err)
	assert.False(t, page.HasData())
	assert.Empty(t, page.NextCursor())

	_, err = DecodePage([]byte(`<html>`))
	assert.True(t, errors.Is(err, ErrMalformedPayload))
}

func TestDecodeList_SkipsBadElements(t *testing.T) {
	page, err := DecodePage([]byte(`{"data": [{"id": 1}, "junk", {"id": "b"}, 7]}`))
	require.NoError(t, err)

	items := DecodeList[sample](page)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID.String())
	assert.Equal(t, "b", items[1].ID.String())
}

func TestDecodeList_NonArrayIsEmpty(t *testing.T) {
	for _, body := range []string{`{}`, `{"data": null}`, `{"data": {"id": 1}}`} {
		page, err := DecodePage([]byte(body))
		require.NoError(t, err)

		items := DecodeList[sample](page)
		assert.NotNil(t, items, body)
		assert.Empty(t, items, body)
	}
}

func TestDecodeObject(t *testing.T) {
	page, _ := DecodePage([]byte(`{"data": {"id": 9, "score": "101"}}`))
	item, ok := DecodeObject[sample](page)
	require.True(t, ok)
	assert.Equal(t, "9", item.ID.String())
	assert.Equal(t, 101, *item.Score.Ptr())

	for _, body := range []string{`{}`, `{"data": null}`, `{"data": [1, 2]}`} {
		page, _ := DecodePage([]byte(body))
		_, ok := DecodeObject[sample](page)
		assert.False(t, ok, body)
	}
}

func TestFlexTypes(t *testing.T) {
	tests := []struct {
		raw       string
		wantID    string
		wantScore *int
		wantLive  *bool
	}{
		{`{"id": "abc", "score": 3, "live": true}`, "abc", intPtr(3), boolPtr(true)},
		{`{"id": 12, "score": "7", "live": "false"}`, "12", intPtr(7), boolPtr(false)},
		{`{"id": null, "score": null, "live": null}`, "", nil, nil},
		{`{"id": {"nested": 1}, "score": "n/a", "live": "sometimes"}`, "", nil, nil},
		{`{"score": 4.0}`, "", intPtr(4), nil},
		{`{}`, "", nil, nil},
	}

	for _, tt := range tests {
		var s sample
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &s), tt.raw)
		assert.Equal(t, tt.wantID, s.ID.String(), tt.raw)
		assert.Equal(t, tt.wantScore, s.Score.Ptr(), tt.raw)
		assert.Equal(t, tt.wantLive, s.Live.Ptr(), tt.raw)
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
