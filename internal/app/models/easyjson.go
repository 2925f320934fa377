package models

import (
	"github.com/mailru/easyjson/jwriter"
)

// Hand-written easyjson marshalers for the response types that go
// through httputils.Respond. Request decoding stays on encoding/json.

func (u User) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.Uint64(u.ID)
	w.RawString(`,"username":`)
	w.String(u.Username)
	w.RawString(`,"email":`)
	w.String(u.Email)
	w.RawString(`,"created":`)
	w.Raw(u.Created.MarshalJSON())
	w.RawByte('}')
}

func (c Channel) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.Uint64(c.ID)
	w.RawString(`,"name":`)
	w.String(c.Name)
	w.RawString(`,"created":`)
	w.Raw(c.Created.MarshalJSON())
	w.RawByte('}')
}

func (l ChannelList) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('[')
	for i, c := range l {
		if i > 0 {
			w.RawByte(',')
		}
		c.MarshalEasyJSON(w)
	}
	w.RawByte(']')
}

func (s SubscriptionStatus) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"subscribed":`)
	w.Bool(s.Subscribed)
	w.RawByte('}')
}

func (p Post) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.Uint64(p.ID)
	w.RawString(`,"channel_id":`)
	w.Uint64(p.ChannelID)
	w.RawString(`,"user_id":`)
	w.Uint64(p.UserID)
	w.RawString(`,"author":`)
	w.String(p.Author)
	w.RawString(`,"title":`)
	w.String(p.Title)
	w.RawString(`,"text":`)
	w.String(p.Text)
	w.RawString(`,"rating":`)
	w.Int(p.Rating)
	w.RawString(`,"created":`)
	w.Raw(p.Created.MarshalJSON())
	w.RawByte('}')
}

func (l PostList) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('[')
	for i, p := range l {
		if i > 0 {
			w.RawByte(',')
		}
		p.MarshalEasyJSON(w)
	}
	w.RawByte(']')
}

func (c Comment) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.Uint64(c.ID)
	w.RawString(`,"post_id":`)
	w.Uint64(c.PostID)
	w.RawString(`,"parent_id":`)
	w.Uint64(c.ParentID)
	w.RawString(`,"user_id":`)
	w.Uint64(c.UserID)
	w.RawString(`,"author":`)
	w.String(c.Author)
	w.RawString(`,"text":`)
	w.String(c.Text)
	w.RawString(`,"rating":`)
	w.Int(c.Rating)
	w.RawString(`,"created":`)
	w.Raw(c.Created.MarshalJSON())
	w.RawByte('}')
}

func (l CommentList) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('[')
	for i, c := range l {
		if i > 0 {
			w.RawByte(',')
		}
		c.MarshalEasyJSON(w)
	}
	w.RawByte(']')
}

func (v VoteResult) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.Uint64(v.ID)
	w.RawString(`,"type":`)
	w.String(v.Type)
	w.RawString(`,"rating":`)
	w.Int(v.Rating)
	w.RawByte('}')
}

func (n NumRecords) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"users":`)
	w.Uint64(n.Users)
	w.RawString(`,"channels":`)
	w.Uint64(n.Channels)
	w.RawString(`,"posts":`)
	w.Uint64(n.Posts)
	w.RawString(`,"comments":`)
	w.Uint64(n.Comments)
	w.RawByte('}')
}

func (a AuthResponse) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"user":`)
	a.User.MarshalEasyJSON(w)
	w.RawString(`,"access_token":`)
	w.String(a.AccessToken)
	w.RawString(`,"refresh_token":`)
	w.String(a.RefreshToken)
	w.RawByte('}')
}

func (p Profile) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"user":`)
	p.User.MarshalEasyJSON(w)
	w.RawString(`,"top_posts":`)
	p.TopPosts.MarshalEasyJSON(w)
	w.RawString(`,"channels":`)
	p.Channels.MarshalEasyJSON(w)
	w.RawByte('}')
}
