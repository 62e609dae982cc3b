// Package jsoncodec implements an immutable JSON value tree plus composable,
// type-safe codecs over it. Values of native Go types are converted to and
// from the tree by small, pure capabilities that compose into codecs for
// arbitrary record types.
//
// Components:
//   - Json: a closed, recursive value model (Null, Bool, Num, Str, Obj, Arr).
//     Num carries an arbitrary-precision decimal.
//   - Encoder[A]: total conversion A -> Json. Adapt with Contramap.
//   - Decoder[A]: partial conversion Json -> (A, ok). Malformed input is an
//     expected condition and yields ok=false, never a panic. Compose with
//     Map, Zip and Field.
//   - ObjectEncoder[A]: an Encoder guaranteed to produce Obj, so two of them
//     can be merged field-wise with MergeObjects.
//   - Registry: explicit type -> codec table for call sites that want
//     type-directed resolution instead of passing codecs around.
//
// Wire formats (text JSON, CBOR, msgpack, protobuf Struct) live in the wire
// subpackage; the core never touches bytes.
//
// Composition pattern for a record type:
//
//	enc := jsoncodec.ContramapObject(
//	    jsoncodec.MergeObjects(
//	        jsoncodec.FieldOf("name", jsoncodec.StringEncoder),
//	        jsoncodec.FieldOf("age", jsoncodec.IntEncoder),
//	    ),
//	    func(p Person) jsoncodec.Pair[string, int] {
//	        return jsoncodec.Pair[string, int]{First: p.Name, Second: p.Age}
//	    })
//
//	dec := jsoncodec.Map(
//	    jsoncodec.Zip(
//	        jsoncodec.Field("name", jsoncodec.StringDecoder),
//	        jsoncodec.Field("age", jsoncodec.IntDecoder),
//	    ),
//	    func(p jsoncodec.Pair[string, int]) Person {
//	        return Person{Name: p.First, Age: p.Second}
//	    })
package jsoncodec
