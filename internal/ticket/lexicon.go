package ticket

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexique fixe du service desk. L'ordre des entrées définit l'ordre
// d'affichage dans le ticket rendu.

type toolEntry struct {
	token string
	label string
}

type patternEntry struct {
	re    *regexp.Regexp
	label string
}

// toolTokens — correspondance par sous-chaîne, insensible à la casse.
// Un jeton court comme "ad" matche aussi à l'intérieur d'un mot plus long
// ("escalade", "adresse") : limitation connue, conservée volontairement.
var toolTokens = []string{
	"intune",
	"zscaler",
	"sap",
	"vpn",
	"ad",
	"azure",
	"outlook",
	"exchange",
	"teams",
	"onedrive",
	"sharepoint",
	"office",
	"citrix",
	"webmail",
	"MFA",
	"GPO",
	"ldap",
	"bitlocker",
}

var toolLexicon = buildToolLexicon(toolTokens)

func buildToolLexicon(tokens []string) []toolEntry {
	out := make([]toolEntry, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, toolEntry{token: tok, label: capitalizeToken(tok)})
	}
	return out
}

// capitalizeToken met la première lettre en majuscule, sauf si le jeton est
// déjà entièrement en majuscules (sigles comme "MFA").
func capitalizeToken(tok string) string {
	if tok == strings.ToUpper(tok) {
		return tok
	}
	return upperFirst(tok)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// actionLexicon — huit catégories d'actions, mot entier, insensible à la
// casse et aux accents français usuels.
var actionLexicon = []patternEntry{
	{regexp.MustCompile(`(?i)\b(reset|r[ée]initialis)[\p{L}]*`), "Réinitialisation"},
	{regexp.MustCompile(`(?i)\b(v[ée]rif|check|contr[ôo]l|test|diagnost)[\p{L}\p{N}]*`), "Vérification"},
	{regexp.MustCompile(`(?i)\b(mot de passe|mdp\b|password)`), "Intervention mot de passe"},
	{regexp.MustCompile(`(?i)\b(escalad|transf[ée]r|transmis)[\p{L}]*`), "Escalade"},
	{regexp.MustCompile(`(?i)\b(red[ée]marr|reboot|restart)[\p{L}]*`), "Redémarrage"},
	{regexp.MustCompile(`(?i)\b(install|d[ée]sinstall|d[ée]ploi)[\p{L}]*`), "Installation"},
	{regexp.MustCompile(`(?i)\b(mise [àa] jour|m[àa]j\b|update|patch)`), "Mise à jour"},
	{regexp.MustCompile(`(?i)\b(d[ée]bloc|d[ée]bloqu|unlock|d[ée]verrouill)[\p{L}]*`), "Déblocage"},
}

// escalationLexicon — sept cibles d'escalade. "sap" figure aussi dans les
// outils : une note mentionnant SAP produit les deux, c'est voulu.
var escalationLexicon = []patternEntry{
	{regexp.MustCompile(`(?i)\b(l2|niveau 2)\b`), "L2"},
	{regexp.MustCompile(`(?i)\b(l3|niveau 3)\b`), "L3"},
	{regexp.MustCompile(`(?i)\bsap\b`), "SAP"},
	{regexp.MustCompile(`(?i)\b(mobility|mobilit[ée]s?)`), "Mobility"},
	{regexp.MustCompile(`(?i)\b(r[ée]seaux?\b|network|switch|routeur)`), "Réseau"},
	{regexp.MustCompile(`(?i)\b(s[ée]curit[ée]|security|phishing|antivirus)`), "Sécurité"},
	{regexp.MustCompile(`(?i)\b(infra[\p{L}]*|serveurs?\b|datacenter)`), "Infrastructure"},
}

// problemPatterns — capture du problème utilisateur. Seul le premier motif
// qui matche est retenu, l'ordre est donc significatif.
var problemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\butilisateur\s*:\s*[^.!?\n]+`),
	regexp.MustCompile(`(?i)\b(poste|pc)\s*:\s*[^.!?\n]+`),
	regexp.MustCompile(`(?i)\bsession\s*:\s*[^.!?\n]+`),
	regexp.MustCompile(`(?i)\bimpossible de\s+[^.!?\n]+`),
	regexp.MustCompile(`(?i)\bne peut pas\s+[^.!?\n]+`),
	regexp.MustCompile(`(?i)\berreur\s*:\s*[^.!?\n]+`),
}

// checksRe — vocabulaire de diagnostic pour repérer les phrases de
// vérification. Les jetons courts ambigus exigent le mot entier.
var checksRe = regexp.MustCompile(
	`(?i)\b(v[ée]rif|check|sync|reset|ping|test|connexion|vpn\b|ldap\b|ad\b|sap\b)`,
)
