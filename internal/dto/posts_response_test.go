package dto

import (
	"encoding/json"
	"testing"

	"github.com/jeehoo0767/dru-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostListEnvelopeShape(t *testing.T) {
	list := NewPostList(7, []model.Post{{Title: "a"}})

	raw, err := json.Marshal(list)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "postTotalCnt")
	assert.Contains(t, decoded, "data")
	assert.Equal(t, int64(7), list.PostTotalCnt)
}

func TestNewPostListNilPosts(t *testing.T) {
	list := NewPostList(0, nil)

	// the post array must serialize as [], never null
	raw, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"post":[]`)
}
