package post

import (
	"errors"
	"net/http"

	"news-feed/internal/fanout"
	"news-feed/internal/shared/httpx"
)

type CreatePayload struct {
	Content string   `json:"content"`
	Media   []string `json:"media,omitempty"`
}

type Handler struct {
	svc    Service
	fanout fanout.Service
}

func NewHandler(s Service, f fanout.Service) *Handler {
	return &Handler{svc: s, fanout: f}
}

// Protected: the author is the token subject. Publishing returns as soon
// as the post is stored and the fanout job is queued.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[CreatePayload](r)
	if err != nil {
		return err
	}
	p, err := h.svc.Create(uid, in.Content, in.Media)
	if err != nil {
		return err
	}
	h.fanout.Fanout(p.ID, p.AuthorID)
	httpx.WriteJSON(w, p, http.StatusCreated)
	return nil
}

// Public.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	p, err := h.svc.Get(r.PathValue("post_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.NotFound(w, err)
			return nil
		}
		return err
	}
	httpx.WriteJSON(w, p, http.StatusOK)
	return nil
}
