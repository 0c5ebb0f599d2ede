package dto

import (
	"github.com/invopop/jsonschema"
)

// PageSchema reflects the JSON Schema of a result page holding hits of type T.
func PageSchema[T Hit]() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	return r.Reflect(&Page[T]{})
}
