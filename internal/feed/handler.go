package feed

import (
	"net/http"

	"news-feed/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

// Protected: home feed of the current user.
func (h *Handler) GetHomeFeed(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	limit := httpx.QueryInt(r, "limit", 0)
	items := h.svc.Feed(uid, limit)
	httpx.WriteJSON(w, map[string]any{"items": items, "count": len(items)}, http.StatusOK)
	return nil
}
