package models

// ContentType enumera los formatos de contenido que se pueden generar.
type ContentType string

const (
	ContentTypeBlogPost     ContentType = "blog_post"
	ContentTypeReleaseNotes ContentType = "release_notes"
	ContentTypeTweet        ContentType = "tweet"
	ContentTypeFeaturePage  ContentType = "feature_page"
)

type (
	// ContentCommit es un commit con su explicación, tal como llega en el
	// processed_content que manda el caller.
	ContentCommit struct {
		Message     string `json:"message"`
		Explanation string `json:"explanation"`
	}

	// ContentPullRequest es la vista de una PR usada para sintetizar contenido.
	ContentPullRequest struct {
		Number  int             `json:"number"`
		Title   string          `json:"title"`
		Body    string          `json:"body"`
		Commits []ContentCommit `json:"commits"`
	}

	// ProcessedContent es el payload de entrada de la generación de contenido.
	ProcessedContent struct {
		PullRequests []ContentPullRequest `json:"pull_requests"`
	}

	// GenerationMetadata acompaña a cada contenido generado.
	GenerationMetadata struct {
		Timestamp string `json:"timestamp"`
		Version   string `json:"version"`
	}

	// GeneratedContent es el texto generado más su envelope de metadata.
	// El texto es opaco: el sistema no inspecciona su estructura interna.
	GeneratedContent struct {
		Content     string             `json:"content"`
		ContentType string             `json:"contentType"`
		Metadata    GenerationMetadata `json:"metadata"`
	}
)
