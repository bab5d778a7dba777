package user

import (
	"errors"
	"net/http"

	"news-feed/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

// Public: register and receive a token.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	in, err := httpx.Decode[CreatePayload](r)
	if err != nil {
		return err
	}
	u, tok, err := h.svc.Create(in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"user": u, "token": tok}, http.StatusCreated)
	return nil
}

// Public.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	u, err := h.svc.Get(r.PathValue("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.NotFound(w, err)
			return nil
		}
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}
