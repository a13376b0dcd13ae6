package section

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Envelope is the persisted layout of one project document.
type Envelope struct {
	Sections []Instance `json:"sections"`
	Theme    Theme      `json:"theme"`
}

const envelopeSchemaURL = "https://vitrin.local/schemas/envelope.schema.json"

// Only the envelope shape is checked; section props stay free-form.
const envelopeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["sections"],
  "properties": {
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"type": "string", "minLength": 1},
          "props": {"type": ["object", "null"]},
          "style": {"type": ["object", "null"], "additionalProperties": {"type": "string"}},
          "locked": {"type": "boolean"}
        }
      }
    },
    "theme": {"type": ["object", "null"], "additionalProperties": {"type": "string"}}
  }
}`

var (
	envelopeOnce     sync.Once
	envelopeCompiled *jsonschema.Schema
	envelopeErr      error
)

func compiledEnvelope() (*jsonschema.Schema, error) {
	envelopeOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(envelopeSchemaURL, strings.NewReader(envelopeSchema)); err != nil {
			envelopeErr = fmt.Errorf("envelope schema load failed: %w", err)
			return
		}
		envelopeCompiled, envelopeErr = c.Compile(envelopeSchemaURL)
		if envelopeErr != nil {
			envelopeErr = fmt.Errorf("envelope schema compile failed: %w", envelopeErr)
		}
	})
	return envelopeCompiled, envelopeErr
}

// DecodeEnvelope validates raw against the envelope schema and decodes it.
func DecodeEnvelope(raw []byte) (Envelope, error) {
	schema, err := compiledEnvelope()
	if err != nil {
		return Envelope{}, err
	}
	var generic any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return Envelope{}, fmt.Errorf("invalid envelope: %w", err)
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

// EncodeEnvelope serializes sections and theme in the persisted layout.
func EncodeEnvelope(sections []Instance, theme Theme) ([]byte, error) {
	if sections == nil {
		sections = []Instance{}
	}
	raw, err := json.Marshal(Envelope{Sections: sections, Theme: theme})
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return raw, nil
}
