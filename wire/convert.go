// Package wire implements the render/parse boundary around the jsoncodec
// value tree: text JSON, CBOR, msgpack and protobuf Struct conversions.
// The core package never touches bytes; everything here lowers a tree to a
// serializer-friendly form or lifts a parsed form back into a tree.
//
// Boundary failures (malformed bytes, unrepresentable values) are reported
// as errors. Once a tree is obtained, decoding it stays in the core's
// comma-ok world.
package wire

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	jc "github.com/unkn0wn-root/jsoncodec"
)

// lower converts a tree to interface{} form for a serializer. num picks the
// native representation of a Num; formats differ in what they can carry
// without loss.
func lower(v jc.Json, num func(decimal.Decimal) any) any {
	switch t := v.(type) {
	case jc.Null:
		return nil
	case jc.Bool:
		return bool(t)
	case jc.Str:
		return string(t)
	case jc.Num:
		return num(t.Value)
	case jc.Obj:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = lower(e, num)
		}
		return m
	case jc.Arr:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = lower(e, num)
		}
		return s
	}
	return nil
}

// nativeNumber lowers a decimal for binary formats. Integral values that
// fit int64 stay exact; larger integers go out as a bignum when the format
// supports one, otherwise everything else falls back to float64 (lossy
// beyond float64 precision).
func nativeNumber(d decimal.Decimal, allowBig bool) any {
	if d.IsInteger() {
		bi := d.BigInt()
		if bi.IsInt64() {
			return bi.Int64()
		}
		if allowBig {
			return bi
		}
	}
	return d.InexactFloat64()
}

// lift converts a serializer's interface{} output into a tree. The cases
// cover what goccy/go-json (UseNumber), fxamacker/cbor and
// vmihailenco/msgpack produce when decoding into any.
func lift(v any) (jc.Json, error) {
	switch t := v.(type) {
	case nil:
		return jc.Null{}, nil
	case bool:
		return jc.Bool(t), nil
	case string:
		return jc.Str(t), nil
	case json.Number:
		d, err := decimal.NewFromString(string(t))
		if err != nil {
			return nil, fmt.Errorf("wire: bad number %q: %w", string(t), err)
		}
		return jc.Num{Value: d}, nil
	case int64:
		return jc.Num{Value: decimal.NewFromInt(t)}, nil
	case int:
		return jc.Num{Value: decimal.NewFromInt(int64(t))}, nil
	case uint64:
		return jc.Num{Value: decimal.NewFromUint64(t)}, nil
	case float32:
		return jc.Num{Value: decimal.NewFromFloat32(t)}, nil
	case float64:
		return jc.Num{Value: decimal.NewFromFloat(t)}, nil
	case big.Int:
		return jc.Num{Value: decimal.NewFromBigInt(&t, 0)}, nil
	case *big.Int:
		return jc.Num{Value: decimal.NewFromBigInt(t, 0)}, nil
	case map[string]any:
		o := make(jc.Obj, len(t))
		for k, e := range t {
			le, err := lift(e)
			if err != nil {
				return nil, err
			}
			o[k] = le
		}
		return o, nil
	case map[any]any:
		o := make(jc.Obj, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("wire: non-string object key %T", k)
			}
			le, err := lift(e)
			if err != nil {
				return nil, err
			}
			o[ks] = le
		}
		return o, nil
	case []any:
		a := make(jc.Arr, len(t))
		for i, e := range t {
			le, err := lift(e)
			if err != nil {
				return nil, err
			}
			a[i] = le
		}
		return a, nil
	}
	return nil, fmt.Errorf("wire: unsupported value %T", v)
}
