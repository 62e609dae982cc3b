package jsoncodec

// Example record codecs, built purely from combinators. They double as the
// reference for how any product type acquires a codec: encode the members
// under field names, merge, then adapt to the record via the tuple of its
// members. No hand-built trees.

// Person is a two-field demonstration record.
type Person struct {
	Name string
	Age  int
}

// Contacts wraps a list of Person under a single field.
type Contacts struct {
	People []Person
}

// PersonCodec encodes Person as {"name": ..., "age": ...} and decodes the
// same shape back.
var PersonCodec Codec[Person] = CodecOf[Person](personEncoder(), personDecoder())

// ContactsCodec encodes Contacts as {"people": [...]} using PersonCodec
// for the elements.
var ContactsCodec Codec[Contacts] = CodecOf[Contacts](contactsEncoder(), contactsDecoder())

func personEncoder() ObjectEncoder[Person] {
	fields := MergeObjects(
		FieldOf("name", StringEncoder),
		FieldOf("age", IntEncoder),
	)
	return ContramapObject(fields, func(p Person) Pair[string, int] {
		return Pair[string, int]{First: p.Name, Second: p.Age}
	})
}

func personDecoder() Decoder[Person] {
	fields := Zip(
		Field("name", StringDecoder),
		Field("age", IntDecoder),
	)
	return Map(fields, func(p Pair[string, int]) Person {
		return Person{Name: p.First, Age: p.Second}
	})
}

func contactsEncoder() ObjectEncoder[Contacts] {
	people := FieldOf("people", SliceEncoder[Person](PersonCodec))
	return ContramapObject(people, func(c Contacts) []Person { return c.People })
}

func contactsDecoder() Decoder[Contacts] {
	people := Field("people", SliceDecoder[Person](PersonCodec))
	return Map(people, func(ps []Person) Contacts { return Contacts{People: ps} })
}
