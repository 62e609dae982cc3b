package jsoncodec

import (
	"testing"
)

// roundTrip asserts decode(encode(v)) == (v, true).
func roundTrip[A comparable](t *testing.T, e Encoder[A], d Decoder[A], v A) {
	t.Helper()
	got, ok := d.Decode(e.Encode(v))
	if !ok {
		t.Fatalf("round trip of %v: decode failed", v)
	}
	if got != v {
		t.Fatalf("round trip of %v: got %v", v, got)
	}
}

// ==============================
// Primitive round trips
// ==============================

func TestPrimitiveRoundTrips(t *testing.T) {
	roundTrip(t, UnitEncoder, UnitDecoder, Unit{})
	for _, i := range []int{0, 1, -1, 42, 1 << 40, -(1 << 40)} {
		roundTrip(t, IntEncoder, IntDecoder, i)
	}
	for _, s := range []string{"", "x", "héllo \"quoted\""} {
		roundTrip(t, StringEncoder, StringDecoder, s)
	}
	roundTrip(t, BoolEncoder, BoolDecoder, true)
	roundTrip(t, BoolEncoder, BoolDecoder, false)
}

func TestSliceRoundTrip(t *testing.T) {
	e := SliceEncoder[int](IntEncoder)
	d := SliceDecoder[int](IntDecoder)

	in := []int{3, 1, 4, 1, 5}
	got, ok := d.Decode(e.Encode(in))
	if !ok || len(got) != len(in) {
		t.Fatalf("slice round trip: ok=%v got=%v", ok, got)
	}
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("slice round trip: index %d got %d want %d", i, got[i], in[i])
		}
	}

	// empty slice encodes to an empty Arr and comes back empty
	j := e.Encode(nil)
	if arr, ok := j.(Arr); !ok || len(arr) != 0 {
		t.Fatalf("empty slice should encode to empty Arr, got %#v", j)
	}
	if got, ok := d.Decode(j); !ok || len(got) != 0 {
		t.Fatalf("empty Arr should decode to empty slice, ok=%v got=%v", ok, got)
	}
}

// ==============================
// Mismatch rejection
// ==============================

func TestIntDecoderRejects(t *testing.T) {
	cases := []struct {
		name string
		in   Json
	}{
		{"fractional", NumFloat(3.5)},
		{"string", Str("x")},
		{"numeric string", Str("3")},
		{"bool", Bool(true)},
		{"null", Null{}},
		{"out of range", NumFloat(1e30)},
	}
	for _, tc := range cases {
		if v, ok := IntDecoder.Decode(tc.in); ok {
			t.Fatalf("%s: expected failure, got %d", tc.name, v)
		}
	}
	// integral float is fine
	if v, ok := IntDecoder.Decode(NumFloat(3.0)); !ok || v != 3 {
		t.Fatalf("integral Num should decode: ok=%v v=%d", ok, v)
	}
}

func TestUnitDecoderRejectsNonNull(t *testing.T) {
	for _, j := range []Json{Bool(false), NumInt(0), Str(""), Obj{}, Arr{}} {
		if _, ok := UnitDecoder.Decode(j); ok {
			t.Fatalf("unit decode should fail on %#v", j)
		}
	}
}

// ==============================
// Combinators
// ==============================

func TestMapAppliesOnlyOnSuccess(t *testing.T) {
	calls := 0
	d := Map(IntDecoder, func(i int) int { calls++; return i * 2 })

	if v, ok := d.Decode(NumInt(21)); !ok || v != 42 {
		t.Fatalf("map success: ok=%v v=%d", ok, v)
	}
	if _, ok := d.Decode(Str("nope")); ok {
		t.Fatalf("map should propagate failure")
	}
	if calls != 1 {
		t.Fatalf("map function should run once, ran %d times", calls)
	}
}

func TestZip(t *testing.T) {
	d := Zip(Field("name", StringDecoder), Field("age", IntDecoder))
	in := Obj{"name": Str("Alice"), "age": NumInt(42)}

	p, ok := d.Decode(in)
	if !ok || p.First != "Alice" || p.Second != 42 {
		t.Fatalf("zip: ok=%v pair=%+v", ok, p)
	}

	// either side failing fails the pair
	if _, ok := d.Decode(Obj{"name": Str("Alice")}); ok {
		t.Fatalf("zip should fail when second decoder fails")
	}
	if _, ok := d.Decode(Obj{"age": NumInt(42)}); ok {
		t.Fatalf("zip should fail when first decoder fails")
	}
}

func TestFieldMissingKeyFailsDecode(t *testing.T) {
	d := Field("age", IntDecoder)
	if _, ok := d.Decode(Obj{"name": Str("Alice")}); ok {
		t.Fatalf("missing key must fail the decode, not succeed")
	}
	if _, ok := d.Decode(Str("not an object")); ok {
		t.Fatalf("non-object must fail")
	}
	if v, ok := d.Decode(Obj{"age": NumInt(7)}); !ok || v != 7 {
		t.Fatalf("present key: ok=%v v=%d", ok, v)
	}
}

// TestSliceDecoderFiltersFailedElements pins the documented filter policy:
// per-element mismatches are dropped, the slice decode itself succeeds.
func TestSliceDecoderFiltersFailedElements(t *testing.T) {
	d := SliceDecoder[int](IntDecoder)

	got, ok := d.Decode(Arr{NumInt(1), Str("x"), NumInt(2)})
	if !ok {
		t.Fatalf("filtering decode should succeed")
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2], got %v", got)
	}

	// a non-Arr input still fails outright
	if _, ok := d.Decode(Obj{}); ok {
		t.Fatalf("non-array must fail")
	}
}

func TestContramap(t *testing.T) {
	type id int
	e := Contramap(IntEncoder, func(v id) int { return int(v) })
	if !Equal(e.Encode(id(7)), NumInt(7)) {
		t.Fatalf("contramap: got %#v", e.Encode(id(7)))
	}
}
