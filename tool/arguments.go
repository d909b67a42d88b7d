package tool

import (
	"strings"

	"github.com/habiliai/perplexity-mcp/errors"
	"github.com/habiliai/perplexity-mcp/internal/stringutils"
	"github.com/habiliai/perplexity-mcp/perplexity"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

const (
	OutputFormatJSON  = "json"
	OutputFormatRegex = "regex"
)

// SearchArguments is the wire shape of perplexity_search arguments. It also
// drives the tool's input schema.
type SearchArguments struct {
	Query        string         `json:"query" jsonschema:"required" jsonschema_description:"The search query to look up information on the web"`
	Focus        string         `json:"focus,omitempty" jsonschema_description:"Optional comma-separated list of domains to focus the search on (e.g., \"nytimes.com,bbc.com\")"`
	Model        string         `json:"model,omitempty" jsonschema:"enum=sonar-deep-research,enum=sonar-reasoning-pro,enum=sonar-reasoning,enum=sonar-pro,enum=sonar" jsonschema_description:"The Perplexity model to use for the search. Options include: sonar-deep-research (60k context), sonar-reasoning-pro (128k context, max 8k output, CoT), sonar-reasoning (128k context, CoT), sonar-pro (200k context, max 8k output), sonar (128k context)"`
	SystemPrompt string         `json:"system_prompt,omitempty" jsonschema_description:"Optional system prompt to control how Perplexity formats its response"`
	OutputFormat string         `json:"output_format,omitempty" jsonschema:"enum=json,enum=regex" jsonschema_description:"Optional structured output format. Use 'json' for JSON schema or 'regex' for regex pattern"`
	OutputSchema map[string]any `json:"output_schema,omitempty" jsonschema_description:"JSON schema for structured output when output_format is 'json'"`
	OutputRegex  string         `json:"output_regex,omitempty" jsonschema_description:"Regex pattern for structured output when output_format is 'regex'"`
}

// DecodeArguments coerces a loosely typed argument bag. Scalars are converted
// where the conversion is lossless (42 -> "42"); values that cannot be
// converted fail with ErrInvalidParams. Unknown keys are ignored.
func DecodeArguments(raw map[string]any) (SearchArguments, error) {
	var args SearchArguments

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &args,
	})
	if err != nil {
		return args, errors.Wrapf(err, "failed to create argument decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return args, errors.Wrapf(errors.ErrInvalidParams, "malformed arguments: %v", err)
	}

	return args, nil
}

// ParseFocus splits a comma-separated domain list, trimming each entry and
// skipping empty ones.
func ParseFocus(focus string) []string {
	if strings.TrimSpace(focus) == "" {
		return nil
	}
	return lo.Compact(lo.Map(strings.Split(focus, ","), func(d string, _ int) string {
		return strings.TrimSpace(d)
	}))
}

// ResponseFormat maps output_format and its payload onto the upstream
// constraint. Incomplete or mismatched combinations yield nil.
func (a SearchArguments) ResponseFormat() perplexity.ResponseFormat {
	switch {
	case a.OutputFormat == OutputFormatJSON && a.OutputSchema != nil:
		return perplexity.NewJSONSchemaFormat(a.OutputSchema)
	case a.OutputFormat == OutputFormatRegex && a.OutputRegex != "":
		return perplexity.NewRegexFormat(a.OutputRegex)
	}
	return nil
}

// OutputFormatIgnored reports whether an output_format was asked for but
// could not be honoured.
func (a SearchArguments) OutputFormatIgnored() bool {
	return a.OutputFormat != "" && a.ResponseFormat() == nil
}

func (a SearchArguments) SearchRequest() (perplexity.SearchRequest, error) {
	query := strings.TrimSpace(stringutils.SanitizeText(a.Query))
	if query == "" {
		return perplexity.SearchRequest{}, errors.Wrapf(errors.ErrInvalidParams, "query is required")
	}

	var model perplexity.Model
	if a.Model != "" {
		m, err := perplexity.ParseModel(a.Model)
		if err != nil {
			return perplexity.SearchRequest{}, err
		}
		model = m
	}

	return perplexity.SearchRequest{
		Query:          query,
		FocusDomains:   ParseFocus(a.Focus),
		Model:          model,
		SystemPrompt:   stringutils.SanitizeText(a.SystemPrompt),
		ResponseFormat: a.ResponseFormat(),
	}, nil
}
