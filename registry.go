package jsoncodec

import (
	"reflect"
	"sync"
)

// Registry is an explicit type -> codec table for call sites that want
// type-directed codec resolution without passing instances around. It is
// deliberately not a package-level ambient table: construct one, register
// codecs at startup, and hand it to whoever resolves by type.
//
// Safe for concurrent use; registration and lookup take a RWMutex.
type Registry struct {
	mu     sync.RWMutex
	codecs map[reflect.Type]any // reflect.Type of A -> Codec[A]
	log    Logger
}

// RegistryOptions tune a Registry. All fields are optional.
type RegistryOptions struct {
	Logger Logger // nil => NopLogger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts RegistryOptions) *Registry {
	log := opts.Logger
	if log == nil {
		log = NopLogger{}
	}
	return &Registry{
		codecs: make(map[reflect.Type]any),
		log:    log,
	}
}

func typeKey[A any]() reflect.Type {
	return reflect.TypeOf((*A)(nil)).Elem()
}

// RegisterCodec installs c as the codec for type A, replacing any previous
// registration for A.
func RegisterCodec[A any](r *Registry, c Codec[A]) {
	k := typeKey[A]()
	r.mu.Lock()
	r.codecs[k] = c
	r.mu.Unlock()
	r.log.Debug("codec registered", Fields{"type": k.String()})
}

// CodecFor looks up the codec registered for type A.
func CodecFor[A any](r *Registry) (Codec[A], bool) {
	k := typeKey[A]()
	r.mu.RLock()
	c, ok := r.codecs[k]
	r.mu.RUnlock()
	if !ok {
		r.log.Debug("codec lookup miss", Fields{"type": k.String()})
		return nil, false
	}
	return c.(Codec[A]), true
}

// DecodeVia resolves the decoder for A in r and applies it to j. A missing
// registration decodes to nothing, same as any other decode failure.
func DecodeVia[A any](r *Registry, j Json) (A, bool) {
	c, ok := CodecFor[A](r)
	if !ok {
		var zero A
		return zero, false
	}
	return c.Decode(j)
}

// EncodeVia resolves the encoder for A in r and applies it to v. The bool
// result reports whether a codec for A was registered.
func EncodeVia[A any](r *Registry, v A) (Json, bool) {
	c, ok := CodecFor[A](r)
	if !ok {
		return nil, false
	}
	return c.Encode(v), true
}
