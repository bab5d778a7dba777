package seed

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"news-feed/internal/fanout"
	"news-feed/internal/post"
	"news-feed/internal/store"
)

type Params struct {
	Users int
	Posts int
}

// Run fills the store with demo users, a random follow graph, posts pushed
// through the real fanout pipeline and a sprinkling of likes. Meant for
// local development; gated behind SEED_DEMO_DATA.
func Run(st *store.Store, posts post.Service, fan fanout.Service, log *zap.Logger, p Params) {
	gofakeit.Seed(time.Now().UnixNano())
	if p.Users <= 0 {
		p.Users = 25
	}
	if p.Posts <= 0 {
		p.Posts = 40
	}

	ids := make([]string, 0, p.Users)
	for i := 0; i < p.Users; i++ {
		u := store.User{
			ID:        uuid.NewString(),
			Username:  gofakeit.Username(),
			AvatarURL: gofakeit.ImageURL(128, 128),
			CreatedAt: time.Now().UTC(),
		}
		st.PutUser(u)
		ids = append(ids, u.ID)
	}

	edges := 0
	for _, id := range ids {
		n := gofakeit.Number(1, 5)
		for j := 0; j < n; j++ {
			target := ids[gofakeit.Number(0, len(ids)-1)]
			if target == id {
				continue
			}
			st.Follow(id, target)
			edges++
		}
	}

	created := make([]string, 0, p.Posts)
	for i := 0; i < p.Posts; i++ {
		author := ids[gofakeit.Number(0, len(ids)-1)]
		pp, err := posts.Create(author, gofakeit.Sentence(12), nil)
		if err != nil {
			log.Warn("seed: create post", zap.Error(err))
			continue
		}
		fan.Fanout(pp.ID, pp.AuthorID)
		created = append(created, pp.ID)
	}

	likes := 0
	for _, pid := range created {
		n := gofakeit.Number(0, len(ids)/2)
		for j := 0; j < n; j++ {
			uid := ids[gofakeit.Number(0, len(ids)-1)]
			if newly, err := st.Like(uid, pid); err == nil && newly {
				likes++
			}
		}
	}

	log.Info("seeded demo data",
		zap.Int("users", len(ids)),
		zap.Int("follow_edges", edges),
		zap.Int("posts", len(created)),
		zap.Int("likes", likes),
	)
}
