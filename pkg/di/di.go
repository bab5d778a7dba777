package di

import (
	"go.uber.org/zap"

	"news-feed/configs"
	"news-feed/internal/fanout"
	"news-feed/internal/feed"
	"news-feed/internal/follow"
	"news-feed/internal/like"
	"news-feed/internal/notification"
	"news-feed/internal/post"
	"news-feed/internal/reply"
	"news-feed/internal/store"
	"news-feed/internal/user"
)

type Container struct {
	Store *store.Store
	Queue *fanout.Queue
	Pool  *fanout.Pool

	FanoutService fanout.Service
	PostService   post.Service
	FeedService   feed.Service
	FollowService follow.Service
	LikeService   like.Service
	ReplyService  reply.Service
	UserService   user.Service
}

// BuildContainer wires every service against one shared Store. The pool is
// returned unstarted; the caller owns its lifecycle.
func BuildContainer(cfg *configs.Config, log *zap.Logger) *Container {
	st := store.New(cfg.FeedCapacity, int64(cfg.HotLikeThreshold))

	queue := fanout.NewQueue()
	notifier := notification.NewLogNotifier(log)
	pool := fanout.NewPool(queue, st, notifier, log,
		fanout.WithWorkers(cfg.FanoutWorkers),
		fanout.WithAppendDelay(cfg.FanoutAppendDelay),
	)

	return &Container{
		Store: st,
		Queue: queue,
		Pool:  pool,

		FanoutService: fanout.NewService(st, queue),
		PostService:   post.NewService(st),
		FeedService:   feed.NewService(st, feed.WithDefaultLimit(cfg.FeedDefaultLimit)),
		FollowService: follow.NewService(st),
		LikeService:   like.NewService(st),
		ReplyService:  reply.NewService(st),
		UserService:   user.NewService(st),
	}
}
