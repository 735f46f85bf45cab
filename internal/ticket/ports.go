package ticket

import "context"

// Ticket — résultat du formatage d'une note, tel que persisté.
type Ticket struct {
	ID          string
	Note        string
	Summary     string
	Tools       []string
	Actions     []string
	Escalations []string
	Document    string
	CreatedAt   int64
}

// Repo — persistance
type Repo interface {
	SaveTicket(ctx context.Context, t *Ticket) error
	ListRecent(ctx context.Context, limit int) ([]Ticket, error)
	SaveSuggestion(ctx context.Context, note string, raw string) error
}

// Service — orchestration extraction + rendu + persistance
type Service interface {
	Format(ctx context.Context, note string) (*Ticket, error)
	Recent(ctx context.Context, limit int) ([]Ticket, error)
}
