package mixer

import (
	"github.com/pkg/errors"
)

var (
	// ErrNoMixable is returned by Start when no mixable was registered.
	ErrNoMixable = errors.New("no mixable registered")
	// ErrNotPushMixable is returned by SetMixable when the model does
	// not support the push-mix exchange.
	ErrNotPushMixable = errors.New("mixable does not support push mix")
)

// Mixable is a model that can take part in some mix strategy.
type Mixable interface {
	MixableName() string
}

// PushMixable is a model that supports bilateral delta exchange. All
// payloads are opaque to the mixer: GetArgument describes the delta
// shape the model wants, Pull produces the delta matching a remote
// argument, Push merges a remote delta.
//
// The mixer serializes every invocation through the model lock handed
// to New: GetArgument and Pull run under the read lock, Push under the
// write lock. Implementations must not lock themselves.
type PushMixable interface {
	Mixable
	GetArgument() ([]byte, error)
	Pull(argument []byte) ([]byte, error)
	Push(diff []byte) error
}
