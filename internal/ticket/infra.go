package ticket

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) SaveTicket(ctx context.Context, t *Ticket) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tickets (id, note, summary, tools, actions, escalations, document)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		t.ID,
		t.Note,
		t.Summary,
		pq.Array(t.Tools),
		pq.Array(t.Actions),
		pq.Array(t.Escalations),
		t.Document,
	)
	return err
}

func (r *repo) ListRecent(ctx context.Context, limit int) ([]Ticket, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, note, summary, tools, actions, escalations, document, extract(epoch from created_at)::bigint
		FROM tickets
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ticket
	for rows.Next() {
		var t Ticket
		if err := rows.Scan(
			&t.ID,
			&t.Note,
			&t.Summary,
			pq.Array(&t.Tools),
			pq.Array(&t.Actions),
			pq.Array(&t.Escalations),
			&t.Document,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, rows.Err()
}

func (r *repo) SaveSuggestion(ctx context.Context, note string, raw string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lexicon_suggestions (note, raw)
		VALUES ($1, $2)
	`,
		note,
		raw,
	)
	return err
}
