package ticket

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/tickets/format", h.HandleFormat)
	r.Get("/tickets/recent", h.HandleRecent)
}
