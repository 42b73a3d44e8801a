package storyboard

import "github.com/invopop/jsonschema"

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

// Schema is the JSON schema of the export contract: the exact shape a
// successful generate call emits for the downstream video model.
var Schema = generateSchema[Storyboard]()
