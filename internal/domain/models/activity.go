package models

import "time"

// Category clasifica un item de actividad en uno de cinco buckets fijos.
type Category string

const (
	CategoryDocumentation Category = "documentation"
	CategoryBugFixes      Category = "bug_fixes"
	CategoryFeatures      Category = "features"
	CategoryCodeChanges   Category = "code_changes"
	CategoryOther         Category = "other"
)

// Categories retorna todas las categorías en su orden canónico.
func Categories() []Category {
	return []Category{
		CategoryDocumentation,
		CategoryBugFixes,
		CategoryFeatures,
		CategoryCodeChanges,
		CategoryOther,
	}
}

// ActivityType identifica la variante de un ActivityItem.
type ActivityType string

const (
	TypePullRequest ActivityType = "pull_request"
	TypeIssue       ActivityType = "issue"
	TypeCommit      ActivityType = "commit"
)

type (
	// PullRequest contiene los campos de una PR tal como los reporta GitHub.
	PullRequest struct {
		Number    int        `json:"number"`
		Title     string     `json:"title"`
		Body      string     `json:"body"`
		State     string     `json:"state"`
		Merged    bool       `json:"merged"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedAt time.Time  `json:"updated_at"`
		MergedAt  *time.Time `json:"merged_at,omitempty"`
		URL       string     `json:"url"`
		Author    string     `json:"author"`
		Labels    []string   `json:"labels"`
	}

	// Issue contiene los campos de un issue. Las PRs que GitHub devuelve
	// mezcladas en el endpoint de issues se descartan antes de llegar acá.
	Issue struct {
		Number    int        `json:"number"`
		Title     string     `json:"title"`
		Body      string     `json:"body"`
		State     string     `json:"state"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedAt time.Time  `json:"updated_at"`
		ClosedAt  *time.Time `json:"closed_at,omitempty"`
		URL       string     `json:"url"`
		Author    string     `json:"author"`
		Labels    []string   `json:"labels"`
	}

	// Commit representa un commit individual del repositorio.
	Commit struct {
		SHA     string    `json:"sha"`
		Message string    `json:"message"`
		Date    time.Time `json:"date"`
		Author  string    `json:"author"`
		URL     string    `json:"url"`
	}

	// ActivityData agrupa el resultado crudo de las tres consultas a GitHub.
	ActivityData struct {
		Pulls   []PullRequest `json:"pulls"`
		Issues  []Issue       `json:"issues"`
		Commits []Commit      `json:"commits"`
	}

	// ActivityItem es la forma normalizada de cualquier actividad.
	// Number aplica a PRs e issues, SHA a commits; el resto de los campos
	// opcionales quedan en su valor cero cuando la variante no los tiene.
	ActivityItem struct {
		Type      ActivityType `json:"type"`
		Number    int          `json:"number,omitempty"`
		SHA       string       `json:"sha,omitempty"`
		Title     string       `json:"title,omitempty"`
		Body      string       `json:"body"`
		State     string       `json:"state,omitempty"`
		CreatedAt time.Time    `json:"created_at"`
		URL       string       `json:"url"`
		Author    string       `json:"author"`
		Labels    []string     `json:"labels,omitempty"`
	}
)

// AggregatedContent mapea cada categoría a sus items en orden de llegada.
type AggregatedContent map[Category][]ActivityItem

// NewAggregatedContent crea el mapa con las cinco categorías presentes,
// aunque queden vacías.
func NewAggregatedContent() AggregatedContent {
	content := make(AggregatedContent, len(Categories()))
	for _, category := range Categories() {
		content[category] = []ActivityItem{}
	}
	return content
}

// TotalItems cuenta los items de todas las categorías.
func (c AggregatedContent) TotalItems() int {
	total := 0
	for _, items := range c {
		total += len(items)
	}
	return total
}
