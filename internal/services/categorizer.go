package services

import (
	"strings"

	"github.com/Tomas-vilte/RepoPulse/internal/domain/models"
)

// Palabras clave por categoría. El orden de los slices no importa; el orden
// de evaluación de las reglas sí, y es fijo: documentation gana antes que
// bug_fixes, bug_fixes antes que features, etc.
var (
	documentationKeywords = []string{"doc", "docs", "documentation"}
	bugFixKeywords        = []string{"bug", "fix", "hotfix"}
	featureKeywords       = []string{"feature", "enhancement", "feat"}
	codeChangeKeywords    = []string{"refactor", "perf", "performance", "test"}
)

// Categorize mapea título, cuerpo y labels a exactamente una categoría.
// Es una función pura y total: misma entrada, misma salida, sin estado.
//
// El match es por substring, no por palabra completa: "feat" matchea dentro
// de "defeature". Eso es parte del contrato, no un accidente.
func Categorize(title, body string, labels []string) models.Category {
	title = strings.ToLower(title)
	body = strings.ToLower(body)

	lowered := make([]string, len(labels))
	for i, label := range labels {
		lowered[i] = strings.ToLower(label)
	}

	switch {
	case matchesTextOrLabels(title, body, lowered, documentationKeywords):
		return models.CategoryDocumentation
	case matchesTextOrLabels(title, body, lowered, bugFixKeywords):
		return models.CategoryBugFixes
	case matchesTextOrLabels(title, body, lowered, featureKeywords):
		return models.CategoryFeatures
	case containsAny(title, codeChangeKeywords) || containsAny(body, codeChangeKeywords):
		return models.CategoryCodeChanges
	default:
		return models.CategoryOther
	}
}

func matchesTextOrLabels(title, body string, labels []string, keywords []string) bool {
	if containsAny(title, keywords) || containsAny(body, keywords) {
		return true
	}
	for _, label := range labels {
		if containsAny(label, keywords) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
