package health

import (
	"errors"
	"net/http"
	"workation/shared/cache"
	"workation/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	kv cache.KV
}

func New(kv cache.KV) Handler {
	return Handler{kv: kv}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports liveness. The store is the only hard dependency; the mirror
// and the broker are best-effort and excluded from the check.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	var probe string
	if err := h.kv.Get(r.Context(), "health:probe", &probe); err != nil && !errors.Is(err, cache.Nil) {
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "ok")
}
