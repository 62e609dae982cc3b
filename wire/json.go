package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	jc "github.com/unkn0wn-root/jsoncodec"
)

// RenderJSON renders a tree as compact JSON text. Numbers render from
// their exact decimal representation; nothing is rounded through float64.
func RenderJSON(v jc.Json) ([]byte, error) {
	return gojson.Marshal(lower(v, func(d decimal.Decimal) any {
		return json.Number(d.String())
	}))
}

// ParseJSON parses JSON text into a tree. Numbers are kept exact. Trailing
// non-whitespace input after the first value is rejected.
func ParseJSON(b []byte) (jc.Json, error) {
	dec := gojson.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("wire: parse json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("wire: parse json: trailing data")
	}
	return lift(v)
}

// Render is the full encode pipeline: value -> Encoder -> tree -> text.
func Render[A any](e jc.Encoder[A], v A) ([]byte, error) {
	return RenderJSON(e.Encode(v))
}

// Parse is the full decode pipeline: text -> tree -> Decoder -> value.
// Both a parse failure and a decode failure report ok=false; at this point
// the input was malformed either way.
func Parse[A any](b []byte, d jc.Decoder[A]) (A, bool) {
	j, err := ParseJSON(b)
	if err != nil {
		var zero A
		return zero, false
	}
	return d.Decode(j)
}
