// file: internals/features/forum/comments/service/threading.go
package service

import (
	"zarfuel_backend/internals/features/forum/comments/model"
)

// Thread is one top-level comment and its replies, both in fetch order
// (chronological ascending).
type Thread struct {
	Parent  model.ForumCommentModel
	Replies []model.ForumCommentModel
}

// BuildThreads partitions a flat comment list into two-level threads.
// Every comment appears at most once; a reply whose parent is not in the
// input is an orphan and is dropped from the result.
func BuildThreads(comments []model.ForumCommentModel) []Thread {
	threads := make([]Thread, 0)
	index := make(map[string]int, len(comments))

	for _, c := range comments {
		if c.ForumCommentParentID == nil {
			index[c.ForumCommentID.String()] = len(threads)
			threads = append(threads, Thread{Parent: c})
		}
	}
	for _, c := range comments {
		if c.ForumCommentParentID == nil {
			continue
		}
		i, ok := index[c.ForumCommentParentID.String()]
		if !ok {
			continue // orphaned reply
		}
		threads[i].Replies = append(threads[i].Replies, c)
	}
	return threads
}
