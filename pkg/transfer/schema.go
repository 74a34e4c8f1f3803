package transfer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// collectionSchema describes the accepted import shape. Fields are
// optional here; emptiness and defaults are handled by normalization.
const collectionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "id":       {"type": "string"},
      "front":    {"type": "string"},
      "back":     {"type": "string"},
      "category": {"type": ["string", "null"]},
      "tags": {
        "type": ["array", "null"],
        "items": {"type": "string"}
      }
    }
  }
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(collectionSchema))
})

// checkShape validates a JSON document against collectionSchema.
func checkShape(doc []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("invalid schema definition: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	if len(errs) > 3 {
		errs = append(errs[:3], fmt.Sprintf("... and %d more", len(errs)-3))
	}
	return fmt.Errorf("%w: %s", ErrParse, strings.Join(errs, "; "))
}
