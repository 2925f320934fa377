package models

const (
	VotablePost    = "post"
	VotableComment = "comment"
)

// VoteRequest is the body of /api/v1/upvote and /api/v1/downvote.
type VoteRequest struct {
	ID   uint64 `json:"id"`
	Type string `json:"type"`
}

type VoteResult struct {
	ID     uint64 `json:"id"`
	Type   string `json:"type"`
	Rating int    `json:"rating"`
}

type NumRecords struct {
	Users    uint64 `json:"users"`
	Channels uint64 `json:"channels"`
	Posts    uint64 `json:"posts"`
	Comments uint64 `json:"comments"`
}
