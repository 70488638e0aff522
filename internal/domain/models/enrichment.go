package models

// Tier es un bucket ordinal derivado de conteos con umbrales fijos.
type Tier string

const (
	TierLow     Tier = "Low"
	TierMedium  Tier = "Medium"
	TierHigh    Tier = "High"
	TierUnknown Tier = "Unknown"
)

type (
	// SelectedItem identifica un item elegido por el caller para enriquecer.
	// Solo los de tipo pull_request se procesan; el resto se ignora.
	SelectedItem struct {
		Type   string `json:"type"`
		Number int    `json:"number"`
	}

	// FileChange resume el diff de un archivo dentro de una PR.
	FileChange struct {
		Filename  string `json:"filename"`
		Additions int    `json:"additions"`
		Deletions int    `json:"deletions"`
		Status    string `json:"status"`
	}

	// CommitSummary resume un commit de la PR.
	CommitSummary struct {
		SHA     string `json:"sha"`
		Message string `json:"message"`
		Author  string `json:"author"`
	}

	// PRAnalysis es el análisis producido para una PR: resumen generado
	// por IA más los tiers de complejidad e impacto.
	PRAnalysis struct {
		Summary    string `json:"summary"`
		Complexity Tier   `json:"complexity"`
		Impact     Tier   `json:"impact"`
	}

	// PullRequestDetail es una PR más el detalle que pide el enriquecimiento.
	PullRequestDetail struct {
		Number  int
		Title   string
		Body    string
		State   string
		Merged  bool
		Files   []FileChange
		Commits []CommitSummary
	}

	// EnrichedPR es la PR enriquecida tal como se devuelve al caller.
	EnrichedPR struct {
		Number       int             `json:"number"`
		Title        string          `json:"title"`
		Body         string          `json:"body"`
		State        string          `json:"state"`
		Merged       bool            `json:"merged"`
		FilesChanged []FileChange    `json:"files_changed"`
		Commits      []CommitSummary `json:"commits"`
		Analysis     PRAnalysis      `json:"analysis"`
	}
)
