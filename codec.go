package jsoncodec

// Codec pairs an Encoder and a Decoder for the same type. The round-trip
// law decode(encode(v)) == (v, true) is expected of every well-formed
// Codec and is what the tests in this package assert for the primitives
// and the derived record codecs.
type Codec[A any] interface {
	Encoder[A]
	Decoder[A]
}

type pairCodec[A any] struct {
	Encoder[A]
	Decoder[A]
}

// CodecOf pairs an existing encoder and decoder into a Codec.
func CodecOf[A any](e Encoder[A], d Decoder[A]) Codec[A] {
	return pairCodec[A]{Encoder: e, Decoder: d}
}

// DecodeAs decodes j with an explicitly supplied decoder. It exists for
// call-site symmetry with Registry-based resolution; passing the decoder
// is the preferred, dependency-free form.
func DecodeAs[A any](j Json, d Decoder[A]) (A, bool) {
	return d.Decode(j)
}
