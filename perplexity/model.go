package perplexity

import (
	"github.com/habiliai/perplexity-mcp/errors"
)

// Model is a Perplexity Sonar model variant.
type Model string

const (
	ModelSonarDeepResearch  Model = "sonar-deep-research" // 60k context
	ModelSonarReasoningPro  Model = "sonar-reasoning-pro" // 128k context, max 8k output, CoT
	ModelSonarReasoning     Model = "sonar-reasoning"     // 128k context, CoT
	ModelSonarPro           Model = "sonar-pro"           // 200k context, max 8k output
	ModelSonar              Model = "sonar"               // 128k context

	DefaultModel = ModelSonar
)

var models = []Model{
	ModelSonarDeepResearch,
	ModelSonarReasoningPro,
	ModelSonarReasoning,
	ModelSonarPro,
	ModelSonar,
}

// Models lists every accepted model, in catalog order.
func Models() []Model {
	return append([]Model(nil), models...)
}

func ParseModel(s string) (Model, error) {
	for _, m := range models {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.Wrapf(errors.ErrInvalidParams, "unsupported model %q", s)
}
