package ticket

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Extraction regroupe les faits reconnus dans une note. Tout est recalculé
// à chaque appel : pas d'état partagé, même entrée = même sortie.
type Extraction struct {
	Summary     string
	Tools       []string
	Actions     []string
	Escalations []string
	UserProblem string // vide si aucun motif n'a matché
	Checks      []string
}

var sentenceSplitRe = regexp.MustCompile(`[.!?\n]+`)

// Normalize prépare la note avant toute correspondance : trim, pli NFKC,
// puis réduction des suites de blancs à un espace simple.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// Extract normalise la note puis applique tout le lexique.
func Extract(note string) Extraction {
	return extractText(Normalize(note))
}

func extractText(text string) Extraction {
	return Extraction{
		Summary:     PickFirstSentence(text),
		Tools:       FindTools(text),
		Actions:     FindActions(text),
		Escalations: FindEscalations(text),
		UserProblem: ExtractUserProblem(text),
		Checks:      ExtractChecks(text),
	}
}

func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PickFirstSentence retourne la première phrase non vide, ou le texte entier
// si aucun découpage n'a rien produit.
func PickFirstSentence(text string) string {
	parts := splitSentences(text)
	if len(parts) > 0 {
		return parts[0]
	}
	return strings.TrimSpace(text)
}

// FindTools cherche chaque jeton outil par sous-chaîne dans le texte en
// minuscules. Labels dédupliqués, dans l'ordre du lexique.
func FindTools(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range toolLexicon {
		if !strings.Contains(lower, strings.ToLower(e.token)) {
			continue
		}
		if _, ok := seen[e.label]; ok {
			continue
		}
		seen[e.label] = struct{}{}
		out = append(out, e.label)
	}
	return out
}

// FindActions teste chaque motif d'action sur le texte normalisé.
func FindActions(text string) []string {
	return matchLexicon(actionLexicon, text)
}

// FindEscalations teste chaque motif d'escalade sur le texte normalisé
// (non minusculisé : les motifs portent leur propre drapeau (?i)).
func FindEscalations(text string) []string {
	return matchLexicon(escalationLexicon, text)
}

func matchLexicon(entries []patternEntry, text string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range entries {
		if !e.re.MatchString(text) {
			continue
		}
		if _, ok := seen[e.label]; ok {
			continue
		}
		seen[e.label] = struct{}{}
		out = append(out, e.label)
	}
	return out
}

// ExtractUserProblem essaie les motifs de problème dans l'ordre de priorité
// et retourne le premier fragment capturé, première lettre en majuscule.
// Chaîne vide si aucun motif ne matche.
func ExtractUserProblem(text string) string {
	for _, re := range problemPatterns {
		if m := re.FindString(text); m != "" {
			return upperFirst(m)
		}
	}
	return ""
}

// ExtractChecks retourne, dans l'ordre du texte, les phrases contenant du
// vocabulaire de diagnostic. Un point final est ajouté si absent.
func ExtractChecks(text string) []string {
	out := []string{}
	for _, s := range splitSentences(text) {
		if !checksRe.MatchString(s) {
			continue
		}
		if !strings.HasSuffix(s, ".") {
			s += "."
		}
		out = append(out, s)
	}
	return out
}
