package ticket

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleFormat — formate une note en ticket. La note vide est acceptée :
// le formatteur est total et répond avec les phrases de repli.
func (h *Handler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Note string `json:"note"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Format(r.Context(), payload.Note)
	if err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ticketResponse(t))
}

// HandleRecent — derniers tickets formatés.
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	tickets, err := h.svc.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}

	out := make([]map[string]any, 0, len(tickets))
	for i := range tickets {
		out = append(out, ticketResponse(&tickets[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func ticketResponse(t *Ticket) map[string]any {
	return map[string]any{
		"id":          t.ID,
		"summary":     t.Summary,
		"tools":       t.Tools,
		"actions":     t.Actions,
		"escalations": t.Escalations,
		"document":    t.Document,
		"created_at":  t.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
