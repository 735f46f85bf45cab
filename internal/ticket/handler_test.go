package ticket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repo) chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(NewService(repo, nil)))
	return r
}

func TestHandleFormat(t *testing.T) {
	t.Run("formats a note and returns the document", func(t *testing.T) {
		repo := &fakeRepo{}
		router := newTestRouter(repo)

		body := `{"note": ` + mustJSON(noteOutlookEscalade) + `}`
		req := httptest.NewRequest(http.MethodPost, "/tickets/format", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			ID          string   `json:"id"`
			Summary     string   `json:"summary"`
			Escalations []string `json:"escalations"`
			Document    string   `json:"document"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "PC: poste123 - Outlook ne démarre pas, erreur 0x80070005", resp.Summary)
		assert.Equal(t, []string{"L2"}, resp.Escalations)
		assert.Contains(t, resp.Document, "###  Description")
		assert.Contains(t, resp.Document, "###  Note de travail interne")
		assert.Contains(t, resp.Document, "###  Commentaire visible par le client")

		require.Len(t, repo.tickets, 1)
	})

	t.Run("empty note is accepted", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{})

		req := httptest.NewRequest(http.MethodPost, "/tickets/format", strings.NewReader(`{"note":""}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Aucune description exploitable")
	})

	t.Run("invalid json", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{})

		req := httptest.NewRequest(http.MethodPost, "/tickets/format", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleRecent(t *testing.T) {
	t.Run("lists stored tickets", func(t *testing.T) {
		repo := &fakeRepo{}
		router := newTestRouter(repo)

		req := httptest.NewRequest(http.MethodPost, "/tickets/format", strings.NewReader(`{"note":"vpn hs"}`))
		router.ServeHTTP(httptest.NewRecorder(), req)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tickets/recent?limit=5", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var out []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out, 1)
		assert.Equal(t, "vpn hs", out[0]["summary"])
	})

	t.Run("invalid limit", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tickets/recent?limit=zero", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
