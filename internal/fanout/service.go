package fanout

import "time"

// Service hands published posts to the pipeline.
type Service interface {
	// Fanout enqueues a delivery job for the author's current followers
	// and returns immediately. Followers observe the post once a worker
	// has written their feed.
	Fanout(postID, authorID string)
}

type service struct {
	repo  Repository
	queue *Queue
}

func NewService(repo Repository, q *Queue) Service {
	return &service{repo: repo, queue: q}
}

func (s *service) Fanout(postID, authorID string) {
	followers := s.repo.Followers(authorID)
	if len(followers) == 0 {
		// nobody to deliver to; a normal outcome, not an error
		return
	}
	s.queue.Enqueue(Job{
		PostID:      postID,
		AuthorID:    authorID,
		FollowerIDs: followers,
		EnqueuedAt:  time.Now().UTC(),
	})
}
