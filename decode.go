package jsoncodec

// Decoder converts a Json tree into a native value of type A. Decode is
// pure and never panics on malformed input: a shape or range mismatch is an
// expected condition reported as ok=false (the comma-ok result is this
// package's option type). There is exactly one failure channel; decoders
// carry no error detail.
//
// Decoders are covariant in spirit: a decoder producing a narrower type
// serves anywhere a wider one is expected via Map with the widening
// function.
type Decoder[A any] interface {
	Decode(Json) (A, bool)
}

// DecoderFunc adapts a plain function into a Decoder.
type DecoderFunc[A any] func(Json) (A, bool)

func (f DecoderFunc[A]) Decode(j Json) (A, bool) { return f(j) }

// Pair is the product of two decoded (or encoded) values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map derives a Decoder[B] from a Decoder[A] and an A -> B function. f is
// applied only on success; failure propagates unchanged.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return DecoderFunc[B](func(j Json) (B, bool) {
		v, ok := d.Decode(j)
		if !ok {
			var zero B
			return zero, false
		}
		return f(v), true
	})
}

// Zip runs both decoders against the same input and succeeds only if both
// do. Decoders are pure, so evaluation order is unobservable; this one
// short-circuits on the first failure.
func Zip[A, B any](a Decoder[A], b Decoder[B]) Decoder[Pair[A, B]] {
	return DecoderFunc[Pair[A, B]](func(j Json) (Pair[A, B], bool) {
		av, ok := a.Decode(j)
		if !ok {
			return Pair[A, B]{}, false
		}
		bv, ok := b.Decode(j)
		if !ok {
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{First: av, Second: bv}, true
	})
}

// Field decodes the named field of an Obj with d. Anything other than an
// Obj fails. A missing key fails the whole decode rather than being a hard
// error; absent-value is the package's single failure mode and a lookup
// miss is no more exceptional than a type mismatch.
func Field[A any](name string, d Decoder[A]) Decoder[A] {
	return DecoderFunc[A](func(j Json) (A, bool) {
		var zero A
		o, ok := j.(Obj)
		if !ok {
			return zero, false
		}
		v, ok := o[name]
		if !ok {
			return zero, false
		}
		return d.Decode(v)
	})
}

// Primitive decoders. Process-wide stateless singletons, duals of the
// primitive encoders.
var (
	// UnitDecoder succeeds only on Null.
	UnitDecoder Decoder[Unit] = DecoderFunc[Unit](func(j Json) (Unit, bool) {
		_, ok := j.(Null)
		return Unit{}, ok
	})

	// IntDecoder succeeds only on a Num that is exactly representable as a
	// machine int: no fractional part, within int range. 3.0 decodes to 3;
	// 3.5 and numbers beyond the int range fail.
	IntDecoder Decoder[int] = DecoderFunc[int](func(j Json) (int, bool) {
		n, ok := j.(Num)
		if !ok || !n.Value.IsInteger() {
			return 0, false
		}
		bi := n.Value.BigInt()
		if !bi.IsInt64() {
			return 0, false
		}
		v := bi.Int64()
		if int64(int(v)) != v {
			return 0, false
		}
		return int(v), true
	})

	// StringDecoder succeeds only on Str.
	StringDecoder Decoder[string] = DecoderFunc[string](func(j Json) (string, bool) {
		s, ok := j.(Str)
		return string(s), ok
	})

	// BoolDecoder succeeds only on Bool.
	BoolDecoder Decoder[bool] = DecoderFunc[bool](func(j Json) (bool, bool) {
		b, ok := j.(Bool)
		return bool(b), ok
	})
)

// SliceDecoder succeeds only on Arr and decodes each element with elem.
// Elements that fail to decode are dropped: the slice decoder filters, it
// never fails on a per-element mismatch. Arr([1, "x", 2]) decoded with an
// int element decoder yields [1, 2]. Callers that need all-or-nothing
// semantics must validate the element count themselves.
func SliceDecoder[A any](elem Decoder[A]) Decoder[[]A] {
	return DecoderFunc[[]A](func(j Json) ([]A, bool) {
		arr, ok := j.(Arr)
		if !ok {
			return nil, false
		}
		out := make([]A, 0, len(arr))
		for _, e := range arr {
			if v, ok := elem.Decode(e); ok {
				out = append(out, v)
			}
		}
		return out, true
	})
}
