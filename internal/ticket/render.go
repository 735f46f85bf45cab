package ticket

import "strings"

// Libellés d'action qui déclenchent la branche "résolution" du rendu.
const (
	actionReset    = "Réinitialisation"
	actionPassword = "Intervention mot de passe"
)

// Phrases de repli quand la note ne fournit pas l'information attendue.
const (
	fallbackNoAction      = "Aucune action technique détaillée fournie dans la note initiale."
	fallbackNoResolution  = "Aucune résolution définitive fournie dans la note initiale."
	fallbackNoDescription = "Aucune description exploitable fournie dans la note initiale."
)

const (
	headerDescription   = "###  Description"
	headerInternalNotes = "###  Note de travail interne"
	headerClientComment = "###  Commentaire visible par le client"
)

// BuildDescription assemble la description détaillée : problème constaté,
// diagnostic, puis résultat ou prochaine étape.
func BuildDescription(ex Extraction, note string) string {
	var problem string
	switch {
	case ex.UserProblem != "":
		problem = ex.UserProblem + "."
	case note == "":
		problem = fallbackNoDescription
	default:
		problem = "Incident rapporté par le client : " + note
	}

	var diagnostic string
	if len(ex.Actions) > 0 || len(ex.Tools) > 0 {
		lines := []string{}
		if len(ex.Actions) > 0 {
			lines = append(lines, "Actions réalisées: "+strings.Join(ex.Actions, ", ")+".")
		}
		if len(ex.Tools) > 0 {
			lines = append(lines, "Outils/plateformes consultés: "+strings.Join(ex.Tools, ", ")+".")
		}
		diagnostic = strings.Join(lines, "\n")
	} else {
		diagnostic = fallbackNoAction
	}

	// Priorité : escalade > action de type réinitialisation > générique.
	var result string
	switch {
	case len(ex.Escalations) > 0:
		result = "Le dossier nécessite une escalade vers: " + strings.Join(ex.Escalations, ", ") +
			". En attente de prise en charge par l'équipe concernée."
	case hasResetAction(ex.Actions):
		result = "Une intervention de réinitialisation a été effectuée. " +
			"Le service est de nouveau opérationnel côté utilisateur, sous réserve de confirmation."
	default:
		result = fallbackNoResolution
	}

	return problem + "\n\n" + diagnostic + "\n\n" + result
}

// BuildInternalNotes produit la note de travail sous forme de puces : une
// par action, une puce combinée pour les outils, puis une par contrôle.
func BuildInternalNotes(ex Extraction) string {
	bullets := []string{}
	for _, a := range ex.Actions {
		bullets = append(bullets, "- Action: "+a)
	}
	if len(ex.Tools) > 0 {
		bullets = append(bullets, "- Outils: "+strings.Join(ex.Tools, ", "))
	}
	for _, c := range ex.Checks {
		bullets = append(bullets, "- Contrôle: "+c)
	}
	if len(bullets) == 0 {
		bullets = append(bullets, "- "+fallbackNoAction)
	}
	return strings.Join(bullets, "\n")
}

// BuildClientComment choisit le message client selon la même priorité que le
// paragraphe de résultat.
func BuildClientComment(ex Extraction) string {
	var body string
	switch {
	case len(ex.Escalations) > 0:
		body = "Votre demande a été transmise à l'équipe spécialisée (" +
			strings.Join(ex.Escalations, ", ") +
			") pour une prise en charge approfondie. Nous revenons vers vous dès que possible."
	case hasResetAction(ex.Actions):
		body = "Une réinitialisation a été effectuée sur votre compte. " +
			"Merci de tester à nouveau votre connexion et de nous signaler toute difficulté persistante."
	default:
		body = "Votre demande a bien été prise en compte. " +
			"Elle est en cours de traitement par notre équipe support."
	}
	return "Bonjour,\n\n" + body + "\n\nCordialement,\nSD Nova"
}

func hasResetAction(actions []string) bool {
	for _, a := range actions {
		if a == actionReset || a == actionPassword {
			return true
		}
	}
	return false
}

// FormatTicket transforme une note libre en document de ticket complet.
// Fonction totale : jamais d'erreur, quelle que soit l'entrée.
func FormatTicket(note string) string {
	text := Normalize(note)
	ex := extractText(text)
	return assemble(ex, text)
}

func assemble(ex Extraction, note string) string {
	sections := []string{
		"- " + ex.Summary,
		headerDescription + "\n" + BuildDescription(ex, note),
		headerInternalNotes + "\n" + BuildInternalNotes(ex),
		headerClientComment + "\n" + BuildClientComment(ex),
	}
	return strings.Join(sections, "\n---\n")
}
