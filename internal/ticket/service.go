package ticket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sdnova/note-ticket-bridge/internal/ai"
)

type service struct {
	repo      Repo
	suggester ai.Suggester
}

// NewService câble le formatteur avec la persistance et, optionnellement,
// le suggesteur de lexique (nil accepté).
func NewService(repo Repo, suggester ai.Suggester) Service {
	return &service{
		repo:      repo,
		suggester: suggester,
	}
}

func (s *service) Format(ctx context.Context, note string) (*Ticket, error) {
	text := Normalize(note)
	ex := extractText(text)

	t := &Ticket{
		ID:          uuid.NewString(),
		Note:        text,
		Summary:     ex.Summary,
		Tools:       ex.Tools,
		Actions:     ex.Actions,
		Escalations: ex.Escalations,
		Document:    assemble(ex, text),
		CreatedAt:   time.Now().Unix(),
	}

	log.Printf("[svc] format id=%s summary=%q tools=%d actions=%d escalations=%d",
		t.ID, short(t.Summary), len(t.Tools), len(t.Actions), len(t.Escalations),
	)

	// La persistance est en best-effort : le document est toujours rendu.
	if s.repo != nil {
		if err := s.repo.SaveTicket(ctx, t); err != nil {
			log.Printf("[svc] save ticket %s: %v", t.ID, err)
		}
	}

	if s.suggester != nil && len(ex.Tools) == 0 && len(ex.Actions) == 0 && text != "" {
		s.suggestLexicon(ctx, text)
	}

	return t, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]Ticket, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ListRecent(ctx, limit)
}

// ------------------------------------------------------------

// suggestLexicon demande au modèle des jetons candidats pour une note que
// le lexique n'a pas reconnue. Sans incidence sur le document rendu.
func (s *service) suggestLexicon(ctx context.Context, note string) {
	input := map[string]any{
		"note": note,
	}

	b, _ := json.Marshal(input)

	raw, err := s.suggester.GetReply(ctx, LexiconSuggesterPrompt, string(b))
	if err != nil {
		log.Println("[svc] lexicon suggester error:", err)
		return
	}

	var resp struct {
		Tools   []string `json:"tools"`
		Actions []string `json:"actions"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		log.Printf("[svc] lexicon suggester JSON error: %v raw=%s", err, short(raw))
		return
	}

	log.Printf("[svc] lexicon suggestions tools=%v actions=%v", resp.Tools, resp.Actions)

	if s.repo != nil {
		if err := s.repo.SaveSuggestion(ctx, note, raw); err != nil {
			log.Println("[svc] save suggestion:", err)
		}
	}
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
