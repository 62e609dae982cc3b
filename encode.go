package jsoncodec

import "github.com/shopspring/decimal"

// Unit is the one-value type. It encodes to Null and is the payload type
// for codecs of "nothing interesting here".
type Unit = struct{}

// Encoder converts a native value of type A into a Json tree. Encode is
// total and pure: every A has a representation and encoding never fails.
// Encoders hold no mutable state; the package-level primitive encoders are
// shared singletons and derived encoders only hold references to the
// encoders they compose.
type Encoder[A any] interface {
	Encode(A) Json
}

// EncoderFunc adapts a plain function into an Encoder.
type EncoderFunc[A any] func(A) Json

func (f EncoderFunc[A]) Encode(v A) Json { return f(v) }

// Contramap derives an Encoder[B] from an Encoder[A] and a B -> A function:
// the result maps its input through f and hands it to e. This is the only
// way derived encoders adapt primitive ones; the primitives are never
// touched.
//
// Note Encoder is contravariant in spirit: an encoder for a wider type is
// reusable for any narrower one via Contramap with the widening function.
func Contramap[B, A any](e Encoder[A], f func(B) A) Encoder[B] {
	return EncoderFunc[B](func(v B) Json { return e.Encode(f(v)) })
}

// Primitive encoders. Process-wide stateless singletons.
var (
	// UnitEncoder encodes the unit value as Null.
	UnitEncoder Encoder[Unit] = EncoderFunc[Unit](func(Unit) Json { return Null{} })

	// IntEncoder encodes a machine int as Num.
	IntEncoder Encoder[int] = EncoderFunc[int](func(i int) Json {
		return Num{Value: decimal.NewFromInt(int64(i))}
	})

	// StringEncoder encodes a string as Str.
	StringEncoder Encoder[string] = EncoderFunc[string](func(s string) Json { return Str(s) })

	// BoolEncoder encodes a bool as Bool.
	BoolEncoder Encoder[bool] = EncoderFunc[bool](func(b bool) Json { return Bool(b) })
)

// SliceEncoder encodes []A element-wise with elem. An empty (or nil) slice
// encodes to an empty Arr.
func SliceEncoder[A any](elem Encoder[A]) Encoder[[]A] {
	return EncoderFunc[[]A](func(vs []A) Json {
		out := make(Arr, len(vs))
		for i, v := range vs {
			out[i] = elem.Encode(v)
		}
		return out
	})
}
