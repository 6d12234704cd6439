// Package wire checks rendered webhook bodies against the JSON Schema of the
// Slack incoming-webhook payload.
package wire

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed payload.schema.json
var payloadSchema string

const schemaURL = "https://slackhook.local/payload.schema.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Schema returns the compiled payload schema.
func Schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = jsonschema.CompileString(schemaURL, payloadSchema)
	})
	return compiled, compileErr
}

// Validate reports whether data is a well-formed webhook body.
func Validate(data []byte) error {
	s, err := Schema()
	if err != nil {
		return fmt.Errorf("compile payload schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return s.Validate(v)
}
