package models

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/mailru/easyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Post and comment timestamps are strfmt.DateTime, so they must render
// in its RFC3339 millisecond format, not time.Time's default.
func TestPostMarshalCreatedFormat(t *testing.T) {
	created := strfmt.DateTime(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	post := Post{
		ID:        2,
		ChannelID: 3,
		UserID:    1,
		Author:    "alice",
		Title:     "hello",
		Text:      "world",
		Rating:    4,
		Created:   created,
	}

	raw, err := easyjson.Marshal(post)

	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":2,"channel_id":3,"user_id":1,"author":"alice","title":"hello","text":"world","rating":4,"created":"2024-03-01T12:00:00.000Z"}`,
		string(raw))
}

func TestCommentMarshalCreatedFormat(t *testing.T) {
	created := strfmt.DateTime(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	comment := Comment{
		ID:      7,
		PostID:  2,
		UserID:  1,
		Author:  "alice",
		Text:    "nice",
		Rating:  1,
		Created: created,
	}

	raw, err := easyjson.Marshal(comment)

	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":7,"post_id":2,"parent_id":0,"user_id":1,"author":"alice","text":"nice","rating":1,"created":"2024-03-01T12:00:00.000Z"}`,
		string(raw))
}
