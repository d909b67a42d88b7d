package perplexity

type (
	Role string

	Message struct {
		Role    Role   `json:"role"`
		Content string `json:"content"`
	}

	// SearchRequest is the validated input of a search. Build it once and pass
	// it by value.
	SearchRequest struct {
		Query          string
		FocusDomains   []string
		Model          Model // empty means DefaultModel
		SystemPrompt   string
		ResponseFormat ResponseFormat
	}

	SearchResultItem struct {
		Title     string `json:"title"`
		URL       string `json:"url"`
		Snippet   string `json:"snippet"`
		Published string `json:"published,omitempty"`
		Author    string `json:"author,omitempty"`
	}

	// SearchResult holds either an answer or an error, never both. An empty
	// answer with no error means nothing was found.
	SearchResult struct {
		Query   string             `json:"query"`
		Results []SearchResultItem `json:"results"`
		Answer  string             `json:"answer,omitempty"`
		Error   string             `json:"error,omitempty"`
	}

	chatCompletionRequest struct {
		Model          Model          `json:"model"`
		Messages       []Message      `json:"messages"`
		ResponseFormat ResponseFormat `json:"response_format,omitempty"`
	}
)

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r SearchResult) Failed() bool {
	return r.Error != ""
}

// EffectiveModel is the model sent upstream.
func (r SearchRequest) EffectiveModel() Model {
	if r.Model == "" {
		return DefaultModel
	}
	return r.Model
}
