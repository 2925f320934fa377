package usecase

import (
	"Seenit/internal/app/models"
	"sort"
	"time"
)

// orderTree arranges a flat comment slice into hierarchical pre-order.
// Ordering is computed at read time, so a comment's position follows
// its current rating rather than staying where it was inserted.
// Siblings are ordered by (rating desc, created desc, id asc).
func orderTree(comments models.CommentList) models.CommentList {
	children := make(map[uint64]models.CommentList)
	for _, c := range comments {
		children[c.ParentID] = append(children[c.ParentID], c)
	}
	for _, siblings := range children {
		sortSiblings(siblings)
	}

	ordered := make(models.CommentList, 0, len(comments))
	var walk func(parentID uint64)
	walk = func(parentID uint64) {
		for _, c := range children[parentID] {
			ordered = append(ordered, c)
			walk(c.ID)
		}
	}
	walk(0)
	return ordered
}

func sortSiblings(siblings models.CommentList) {
	sort.Slice(siblings, func(i, j int) bool {
		if siblings[i].Rating != siblings[j].Rating {
			return siblings[i].Rating > siblings[j].Rating
		}
		ci, cj := time.Time(siblings[i].Created), time.Time(siblings[j].Created)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return siblings[i].ID < siblings[j].ID
	})
}
