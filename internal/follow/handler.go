package follow

import (
	"errors"
	"net/http"

	"news-feed/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

// Protected: the follower is the token subject, the target comes from the
// path.
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	target := r.PathValue("user_id")
	if target == "" {
		return errors.New("user_id is required")
	}
	if err := h.svc.Follow(uid, target); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			httpx.NotFound(w, err)
			return nil
		}
		return err
	}
	httpx.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	return nil
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	target := r.PathValue("user_id")
	if target == "" {
		return errors.New("user_id is required")
	}
	if err := h.svc.Unfollow(uid, target); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			httpx.NotFound(w, err)
			return nil
		}
		return err
	}
	httpx.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	return nil
}

// Public.
func (h *Handler) Followers(w http.ResponseWriter, r *http.Request) error {
	ids := h.svc.Followers(r.PathValue("user_id"))
	httpx.WriteJSON(w, map[string]any{"items": ids, "count": len(ids)}, http.StatusOK)
	return nil
}

// Public.
func (h *Handler) Following(w http.ResponseWriter, r *http.Request) error {
	ids := h.svc.Following(r.PathValue("user_id"))
	httpx.WriteJSON(w, map[string]any{"items": ids, "count": len(ids)}, http.StatusOK)
	return nil
}

// Protected: whether the current user follows {user_id}.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	target := r.PathValue("user_id")
	httpx.WriteJSON(w, map[string]any{
		"following": h.svc.IsFollowing(uid, target),
	}, http.StatusOK)
	return nil
}
