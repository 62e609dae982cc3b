package wire

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/shopspring/decimal"

	jc "github.com/unkn0wn-root/jsoncodec"
)

// CBOR renders and parses trees as CBOR. The zero value is NOT ready to
// use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core
// Deterministic) when you need byte-for-byte stable outputs. Otherwise
// PreferredUnsortedEncOptions are used (sensible defaults).
//
// Integral numbers that fit int64 travel exactly; larger integers go out
// as CBOR bignums. Fractional numbers are lowered to float64 and lose
// precision beyond it.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCBOR constructs a CBOR boundary.
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	do := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}
	dm, err := do.DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// variables in tests/examples; avoid in production paths.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

// Render encodes a tree as CBOR using the configured EncMode.
func (c CBOR) Render(v jc.Json) ([]byte, error) {
	return c.enc.Marshal(lower(v, func(d decimal.Decimal) any {
		return nativeNumber(d, true)
	}))
}

// Parse decodes CBOR bytes into a tree using the configured DecMode.
func (c CBOR) Parse(b []byte) (jc.Json, error) {
	var v any
	if err := c.dec.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("wire: parse cbor: %w", err)
	}
	return lift(v)
}
