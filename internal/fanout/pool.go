package fanout

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"news-feed/internal/store"
)

const DefaultWorkers = 4

// Repository is the slice of the store the fanout path needs.
type Repository interface {
	Followers(userID string) []string
	GetPost(id string) (store.Post, bool)
	AppendFeedEntry(userID string, e store.FeedEntry) error
}

// Notifier is told about each post delivered into a follower's feed.
type Notifier interface {
	PostPublished(followerID string, post store.Post)
}

// Pool runs N workers over a shared Queue. A failing follower write is
// logged and counted but never stops the rest of the job, and a job once
// dequeued always runs to completion, even through Stop.
type Pool struct {
	queue    *Queue
	repo     Repository
	notifier Notifier
	log      *zap.Logger

	workers     int
	appendDelay time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type PoolOption func(*Pool)

// WithWorkers sets the worker count. Non-positive values keep the default.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithAppendDelay inserts a pause before each follower write, simulating
// the latency of a remote feed store.
func WithAppendDelay(d time.Duration) PoolOption {
	return func(p *Pool) {
		if d > 0 {
			p.appendDelay = d
		}
	}
}

func NewPool(q *Queue, repo Repository, notifier Notifier, log *zap.Logger, opts ...PoolOption) *Pool {
	p := &Pool{
		queue:    q,
		repo:     repo,
		notifier: notifier,
		log:      log,
		workers:  DefaultWorkers,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Pool) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
	p.log.Info("fanout pool started", zap.Int("workers", p.workers))
}

// Stop parks the workers once their current job is done and waits for
// them. Jobs still in the backlog stay queued.
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

func (p *Pool) run(ctx context.Context) {
	defer p.wg.Done()
	for {
		job, ok := p.queue.Dequeue(ctx)
		if !ok {
			return
		}
		p.process(job)
	}
}

func (p *Pool) process(job Job) {
	start := time.Now()
	// one lookup per job; the notifier wants the content, the feed
	// entries only the id
	post, havePost := p.repo.GetPost(job.PostID)

	delivered := 0
	for _, followerID := range job.FollowerIDs {
		if p.appendDelay > 0 {
			time.Sleep(p.appendDelay)
		}
		e := store.FeedEntry{PostID: job.PostID, InsertedAt: time.Now().UTC()}
		if err := p.repo.AppendFeedEntry(followerID, e); err != nil {
			deliveryFailures.Inc()
			p.log.Error("fanout: feed write failed",
				zap.String("post_id", job.PostID),
				zap.String("follower_id", followerID),
				zap.Error(err),
			)
			continue
		}
		delivered++
		if havePost && p.notifier != nil {
			p.notifier.PostPublished(followerID, post)
		}
	}

	jobsProcessed.Inc()
	jobDuration.Observe(time.Since(start).Seconds())
	p.log.Debug("fanout: job done",
		zap.String("post_id", job.PostID),
		zap.Int("followers", len(job.FollowerIDs)),
		zap.Int("delivered", delivered),
		zap.Duration("queued_for", start.Sub(job.EnqueuedAt)),
	)
}
