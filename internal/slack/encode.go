package slack

import (
	"bytes"
	"encoding/json"
)

// Encoder is implemented by every value that can appear in a webhook body.
// Each type owns its wire representation.
type Encoder interface {
	Encode() any
}

// object accumulates the keys of an encoded aggregate.
type object map[string]any

func (o object) set(key string, v Encoder) {
	o[key] = v.Encode()
}

// The put helpers apply the omission rule: a nil pointer or nil slice is
// absent and contributes no key.

func putOptional[E Encoder](o object, key string, v *E) {
	if v != nil {
		o.set(key, *v)
	}
}

func putScalar[T ~string | ~bool](o object, key string, v *T) {
	if v != nil {
		o[key] = *v
	}
}

func putList[E Encoder](o object, key string, items []E) {
	if items == nil {
		return
	}
	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, it.Encode())
	}
	o[key] = out
}

// EncodeJSON serializes e without HTML escaping, so &, < and > appear
// literally and Text keeps its &amp;, &lt; and &gt; entities readable. A
// non-empty indent pretty-prints with that indent per level.
//
// json.Marshal of a Payload still HTML-escapes the result of MarshalJSON;
// use EncodeJSON, or a json.Encoder with SetEscapeHTML(false), for the
// literal form.
func EncodeJSON(e Encoder, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(e.Encode()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func marshal(e Encoder) ([]byte, error) {
	return EncodeJSON(e, "")
}

// Ptr returns a pointer to v, for setting optional fields inline.
func Ptr[T any](v T) *T {
	return &v
}
