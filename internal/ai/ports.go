package ai

import "context"

// Suggester — intelligence externe optionnelle. Ne connaît ni le lexique
// ni la base : reçoit un prompt système et un JSON, répond en JSON.
type Suggester interface {
	GetReply(
		ctx context.Context,
		systemPrompt string,
		inputJSON string,
	) (string, error)
}
