package jsoncodec

// ObjectEncoder is an Encoder[A] refined to always produce an Obj. The
// narrower output type is what makes field-level composition possible:
// two object encoders can be merged into one because both sides are known
// to be objects. The zero value is not usable; build with FieldOf and
// compose with MergeObjects / ContramapObject.
type ObjectEncoder[A any] struct {
	enc func(A) Obj
}

var _ Encoder[int] = ObjectEncoder[int]{}

// Encode satisfies Encoder[A]. The result is always an Obj.
func (e ObjectEncoder[A]) Encode(v A) Json { return e.enc(v) }

// EncodeObject is Encode with the refined return type.
func (e ObjectEncoder[A]) EncodeObject(v A) Obj { return e.enc(v) }

// FieldOf builds a single-field object encoder: the value is encoded with
// elem and wrapped under name.
func FieldOf[A any](name string, elem Encoder[A]) ObjectEncoder[A] {
	return ObjectEncoder[A]{enc: func(v A) Obj {
		return Obj{name: elem.Encode(v)}
	}}
}

// MergeObjects combines two object encoders into one over the pair of
// their inputs, merging the two field sets into a single Obj. On a field
// name collision the second encoder's value wins.
func MergeObjects[A, B any](a ObjectEncoder[A], b ObjectEncoder[B]) ObjectEncoder[Pair[A, B]] {
	return ObjectEncoder[Pair[A, B]]{enc: func(p Pair[A, B]) Obj {
		ao := a.enc(p.First)
		bo := b.enc(p.Second)
		out := make(Obj, len(ao)+len(bo))
		for k, v := range ao {
			out[k] = v
		}
		for k, v := range bo {
			out[k] = v
		}
		return out
	}}
}

// ContramapObject is Contramap for object encoders, preserving the Obj
// guarantee. This is how a record type adopts a merged field encoder: map
// the record to the tuple of its members.
func ContramapObject[B, A any](e ObjectEncoder[A], f func(B) A) ObjectEncoder[B] {
	return ObjectEncoder[B]{enc: func(v B) Obj { return e.enc(f(v)) }}
}
