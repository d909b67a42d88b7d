package tool

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

func inputSchema() (json.RawMessage, error) {
	reflector := &jsonschema.Reflector{
		Anonymous:                  true,
		DoNotReference:             true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}

	schema := reflector.Reflect(&SearchArguments{})
	schema.Version = ""

	return json.Marshal(schema)
}
