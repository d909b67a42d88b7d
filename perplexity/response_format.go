package perplexity

import "encoding/json"

// ResponseFormat constrains the upstream answer. It is either a
// JSONSchemaFormat or a RegexFormat; the upstream API applies it natively.
type ResponseFormat interface {
	json.Marshaler
	responseFormat()
}

type JSONSchemaFormat struct {
	Schema map[string]any
}

type RegexFormat struct {
	Pattern string
}

var (
	_ ResponseFormat = JSONSchemaFormat{}
	_ ResponseFormat = RegexFormat{}
)

func NewJSONSchemaFormat(schema map[string]any) JSONSchemaFormat {
	return JSONSchemaFormat{Schema: schema}
}

func NewRegexFormat(pattern string) RegexFormat {
	return RegexFormat{Pattern: pattern}
}

func (JSONSchemaFormat) responseFormat() {}
func (RegexFormat) responseFormat()      {}

func (f JSONSchemaFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string         `json:"type"`
		JSONSchema map[string]any `json:"json_schema"`
	}{
		Type:       "json_schema",
		JSONSchema: f.Schema,
	})
}

func (f RegexFormat) MarshalJSON() ([]byte, error) {
	type regex struct {
		Regex string `json:"regex"`
	}
	return json.Marshal(struct {
		Type  string `json:"type"`
		Regex regex  `json:"regex"`
	}{
		Type:  "regex",
		Regex: regex{Regex: f.Pattern},
	})
}
