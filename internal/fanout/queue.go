package fanout

import (
	"context"
	"sync"
	"time"
)

// Job carries one published post to every follower feed.
type Job struct {
	PostID      string
	AuthorID    string
	FollowerIDs []string
	EnqueuedAt  time.Time
}

// Queue is an unbounded FIFO backlog between publishers and the worker
// pool. Enqueue never blocks the caller; workers park in Dequeue until a
// job or a cancellation arrives.
type Queue struct {
	mu     sync.Mutex
	jobs   []Job
	notify chan struct{}
}

func NewQueue() *Queue {
	return &Queue{notify: make(chan struct{}, 1)}
}

func (q *Queue) Enqueue(j Job) {
	q.mu.Lock()
	q.jobs = append(q.jobs, j)
	depth := len(q.jobs)
	q.mu.Unlock()

	queueDepth.Set(float64(depth))
	jobsEnqueued.Inc()
	q.signal()
}

// Dequeue pops the oldest job, blocking until one exists. The bool is
// false only when ctx is done.
func (q *Queue) Dequeue(ctx context.Context) (Job, bool) {
	for {
		q.mu.Lock()
		if len(q.jobs) > 0 {
			j := q.jobs[0]
			q.jobs = q.jobs[1:]
			remaining := len(q.jobs)
			q.mu.Unlock()

			queueDepth.Set(float64(remaining))
			if remaining > 0 {
				// wake another parked worker; the signal channel holds
				// at most one token
				q.signal()
			}
			return j, true
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return Job{}, false
		case <-q.notify:
		}
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

func (q *Queue) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}
