package wire

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"

	jc "github.com/unkn0wn-root/jsoncodec"
)

// RenderMsgpack renders a tree as msgpack. Integral numbers that fit int64
// travel exactly; everything else is lowered to float64 (msgpack has no
// bignum) and loses precision beyond it.
func RenderMsgpack(v jc.Json) ([]byte, error) {
	return msgpack.Marshal(lower(v, func(d decimal.Decimal) any {
		return nativeNumber(d, false)
	}))
}

// ParseMsgpack decodes msgpack bytes into a tree.
func ParseMsgpack(b []byte) (jc.Json, error) {
	var v any
	if err := msgpack.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("wire: parse msgpack: %w", err)
	}
	return lift(v)
}
