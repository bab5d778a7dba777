package reply

import (
	"errors"
	"net/http"

	"news-feed/internal/shared/httpx"
)

type CreatePayload struct {
	Content string `json:"content"`
}

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

// Protected: the author is the token subject.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[CreatePayload](r)
	if err != nil {
		return err
	}
	rep, err := h.svc.Create(uid, r.PathValue("post_id"), in.Content)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			httpx.NotFound(w, err)
			return nil
		}
		return err
	}
	httpx.WriteJSON(w, rep, http.StatusCreated)
	return nil
}

// Public.
func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) error {
	reps, err := h.svc.ListByPost(r.PathValue("post_id"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			httpx.NotFound(w, err)
			return nil
		}
		return err
	}
	httpx.WriteJSON(w, map[string]any{"items": reps, "count": len(reps)}, http.StatusOK)
	return nil
}
