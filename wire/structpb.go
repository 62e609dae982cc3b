package wire

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	jc "github.com/unkn0wn-root/jsoncodec"
)

// ToProto converts a tree into a protobuf Struct value (the well-known
// google.protobuf.Value). Struct numbers are float64, so Num loses
// precision beyond it; the conversion itself never fails on numbers, only
// on an unexpected variant.
func ToProto(v jc.Json) (*structpb.Value, error) {
	switch t := v.(type) {
	case jc.Null:
		return structpb.NewNullValue(), nil
	case jc.Bool:
		return structpb.NewBoolValue(bool(t)), nil
	case jc.Str:
		return structpb.NewStringValue(string(t)), nil
	case jc.Num:
		return structpb.NewNumberValue(t.Value.InexactFloat64()), nil
	case jc.Obj:
		fields := make(map[string]*structpb.Value, len(t))
		for k, e := range t {
			pv, err := ToProto(e)
			if err != nil {
				return nil, err
			}
			fields[k] = pv
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	case jc.Arr:
		vals := make([]*structpb.Value, len(t))
		for i, e := range t {
			pv, err := ToProto(e)
			if err != nil {
				return nil, err
			}
			vals[i] = pv
		}
		return structpb.NewListValue(&structpb.ListValue{Values: vals}), nil
	}
	return nil, fmt.Errorf("wire: unsupported json variant %T", v)
}

// FromProto converts a protobuf Struct value into a tree. A nil value is
// null, matching proto3 semantics for an absent Value.
func FromProto(v *structpb.Value) (jc.Json, error) {
	if v == nil {
		return jc.Null{}, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue, nil:
		return jc.Null{}, nil
	case *structpb.Value_BoolValue:
		return jc.Bool(k.BoolValue), nil
	case *structpb.Value_NumberValue:
		return jc.NumFloat(k.NumberValue), nil
	case *structpb.Value_StringValue:
		return jc.Str(k.StringValue), nil
	case *structpb.Value_StructValue:
		o := make(jc.Obj, len(k.StructValue.GetFields()))
		for name, f := range k.StructValue.GetFields() {
			e, err := FromProto(f)
			if err != nil {
				return nil, err
			}
			o[name] = e
		}
		return o, nil
	case *structpb.Value_ListValue:
		vals := k.ListValue.GetValues()
		a := make(jc.Arr, len(vals))
		for i, f := range vals {
			e, err := FromProto(f)
			if err != nil {
				return nil, err
			}
			a[i] = e
		}
		return a, nil
	}
	return nil, fmt.Errorf("wire: unsupported proto value kind")
}
