package like

import (
	"errors"
	"net/http"

	"news-feed/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	pid := r.PathValue("post_id")
	count, err := h.svc.Like(uid, pid)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			httpx.NotFound(w, err)
			return nil
		}
		return err
	}
	httpx.WriteJSON(w, map[string]any{"post_id": pid, "likes": count, "liked_by_me": true}, http.StatusOK)
	return nil
}

func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	pid := r.PathValue("post_id")
	count, err := h.svc.Unlike(uid, pid)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			httpx.NotFound(w, err)
			return nil
		}
		return err
	}
	httpx.WriteJSON(w, map[string]any{"post_id": pid, "likes": count, "liked_by_me": false}, http.StatusOK)
	return nil
}

func (h *Handler) GetLikes(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	pid := r.PathValue("post_id")
	count, liked := h.svc.Get(pid, uid)
	httpx.WriteJSON(w, map[string]any{"post_id": pid, "likes": count, "liked_by_me": liked}, http.StatusOK)
	return nil
}
