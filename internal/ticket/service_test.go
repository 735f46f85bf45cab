package ticket

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	tickets     []Ticket
	suggestions []string
	failSave    bool
}

func (f *fakeRepo) SaveTicket(_ context.Context, t *Ticket) error {
	if f.failSave {
		return errors.New("db down")
	}
	f.tickets = append(f.tickets, *t)
	return nil
}

func (f *fakeRepo) ListRecent(_ context.Context, limit int) ([]Ticket, error) {
	if limit > len(f.tickets) {
		limit = len(f.tickets)
	}
	return f.tickets[:limit], nil
}

func (f *fakeRepo) SaveSuggestion(_ context.Context, _ string, raw string) error {
	f.suggestions = append(f.suggestions, raw)
	return nil
}

type fakeSuggester struct {
	calls int
	reply string
	err   error
}

func (f *fakeSuggester) GetReply(_ context.Context, _ string, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestService_Format(t *testing.T) {
	ctx := context.Background()

	t.Run("returns and persists the assembled document", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, nil)

		tk, err := svc.Format(ctx, noteSessionBloquee)
		require.NoError(t, err)
		require.NotNil(t, tk)

		assert.NotEmpty(t, tk.ID)
		assert.Equal(t, FormatTicket(noteSessionBloquee), tk.Document)
		assert.Equal(t, []string{"Ad"}, tk.Tools)

		require.Len(t, repo.tickets, 1)
		assert.Equal(t, tk.ID, repo.tickets[0].ID)
	})

	t.Run("storage failure still yields the document", func(t *testing.T) {
		repo := &fakeRepo{failSave: true}
		svc := NewService(repo, nil)

		tk, err := svc.Format(ctx, noteOutlookEscalade)
		require.NoError(t, err)
		assert.Equal(t, FormatTicket(noteOutlookEscalade), tk.Document)
		assert.Empty(t, repo.tickets)
	})

	t.Run("nil repo is accepted", func(t *testing.T) {
		svc := NewService(nil, nil)
		tk, err := svc.Format(ctx, "vpn hs")
		require.NoError(t, err)
		assert.NotEmpty(t, tk.Document)
	})
}

func TestService_LexiconSuggestion(t *testing.T) {
	ctx := context.Background()

	t.Run("asked only when nothing matched", func(t *testing.T) {
		repo := &fakeRepo{}
		sug := &fakeSuggester{reply: `{"tools":["slack"],"actions":["purge"]}`}
		svc := NewService(repo, sug)

		_, err := svc.Format(ctx, "la machine à café du troisième est en panne")
		require.NoError(t, err)
		assert.Equal(t, 1, sug.calls)
		require.Len(t, repo.suggestions, 1)
		assert.JSONEq(t, `{"tools":["slack"],"actions":["purge"]}`, repo.suggestions[0])
	})

	t.Run("not asked when the lexicon matched", func(t *testing.T) {
		sug := &fakeSuggester{reply: `{}`}
		svc := NewService(&fakeRepo{}, sug)

		_, err := svc.Format(ctx, noteSessionBloquee)
		require.NoError(t, err)
		assert.Zero(t, sug.calls)
	})

	t.Run("not asked for empty notes", func(t *testing.T) {
		sug := &fakeSuggester{reply: `{}`}
		svc := NewService(&fakeRepo{}, sug)

		_, err := svc.Format(ctx, "   ")
		require.NoError(t, err)
		assert.Zero(t, sug.calls)
	})

	t.Run("suggester failure never fails the ticket", func(t *testing.T) {
		sug := &fakeSuggester{err: errors.New("quota")}
		repo := &fakeRepo{}
		svc := NewService(repo, sug)

		tk, err := svc.Format(ctx, "la machine à café du troisième est en panne")
		require.NoError(t, err)
		assert.NotEmpty(t, tk.Document)
		assert.Empty(t, repo.suggestions)
	})

	t.Run("malformed reply is dropped", func(t *testing.T) {
		sug := &fakeSuggester{reply: "pas du json"}
		repo := &fakeRepo{}
		svc := NewService(repo, sug)

		_, err := svc.Format(ctx, "la machine à café du troisième est en panne")
		require.NoError(t, err)
		assert.Empty(t, repo.suggestions)
	})
}

func TestService_Recent(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	for _, note := range []string{"vpn hs", "compte bloqué"} {
		_, err := svc.Format(ctx, note)
		require.NoError(t, err)
	}

	got, err := svc.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
