package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"news-feed/configs"
	"news-feed/internal/feed"
	"news-feed/internal/follow"
	"news-feed/internal/like"
	"news-feed/internal/post"
	"news-feed/internal/reply"
	"news-feed/internal/seed"
	"news-feed/internal/shared/httpx"
	"news-feed/internal/user"
	"news-feed/pkg/di"
)

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level.SetLevel(lvl)
	log, _ := cfg.Build()
	return log
}

func initOTEL(ctx context.Context, log *zap.Logger) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatal("otel exporter", zap.Error(err))
	}
	name := os.Getenv("OTEL_SERVICE_NAME")
	if name == "" {
		name = "news-feed"
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(name),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	cfg := configs.LoadConfig()
	log := newLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTEL := initOTEL(ctx, log)
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownOTEL(c)
	}()

	c := di.BuildContainer(cfg, log)
	c.Pool.Start()

	if cfg.SeedDemoData {
		go seed.Run(c.Store, c.PostService, c.FanoutService, log,
			seed.Params{Users: cfg.SeedUsers, Posts: cfg.SeedPosts})
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	postH := post.NewHandler(c.PostService, c.FanoutService)
	feedH := feed.NewHandler(c.FeedService)
	followH := follow.NewHandler(c.FollowService)
	likeH := like.NewHandler(c.LikeService)
	replyH := reply.NewHandler(c.ReplyService)
	userH := user.NewHandler(c.UserService)

	// Public:
	mux.Handle("POST /users", httpx.Wrap(userH.Create))
	mux.Handle("GET /users/{user_id}", httpx.Wrap(userH.Get))
	mux.Handle("GET /users/{user_id}/followers", httpx.Wrap(followH.Followers))
	mux.Handle("GET /users/{user_id}/following", httpx.Wrap(followH.Following))
	mux.Handle("GET /posts/{post_id}", httpx.Wrap(postH.Get))
	mux.Handle("GET /posts/{post_id}/replies", httpx.Wrap(replyH.ListByPost))

	// Protected:
	protect := func(pattern string, handler http.Handler) {
		mux.Handle(pattern, httpx.AuthMiddleware(handler))
	}
	protect("GET /feed", httpx.Wrap(feedH.GetHomeFeed))
	protect("POST /posts", httpx.Wrap(postH.Create))
	protect("POST /posts/{post_id}/like", httpx.Wrap(likeH.Like))
	protect("DELETE /posts/{post_id}/like", httpx.Wrap(likeH.Unlike))
	protect("GET /posts/{post_id}/likes", httpx.Wrap(likeH.GetLikes))
	protect("POST /posts/{post_id}/replies", httpx.Wrap(replyH.Create))
	protect("POST /users/{user_id}/follow", httpx.Wrap(followH.Follow))
	protect("DELETE /users/{user_id}/follow", httpx.Wrap(followH.Unfollow))
	protect("GET /users/{user_id}/follow/status", httpx.Wrap(followH.Status))

	protect("GET /whoami", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := httpx.UserFromCtx(r)
		if err != nil {
			httpx.WriteJSON(w, map[string]any{"error": err.Error()}, http.StatusUnauthorized)
			return
		}
		httpx.WriteJSON(w, map[string]any{"user_id": uid}, http.StatusOK)
	}))

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		log.Info("news-feed listening", zap.String("addr", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}
	c.Pool.Stop()
	log.Info("stopped")
}
