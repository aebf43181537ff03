package vector

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// Options holds the element hooks and logger of a Vector.
type Options[T any] struct {
	Element Element[T]
	Log     logger.Logger
}

// Option configures a Vector at construction.
type Option[T any] func(*Options[T])

// WithElement replaces all element hooks at once.
func WithElement[T any](e Element[T]) Option[T] {
	return func(o *Options[T]) {
		o.Element = e
	}
}

// WithInit sets the hook that builds new elements for NewSized, Resize and
// EmplaceBack.
func WithInit[T any](fn func(*T) error) Option[T] {
	return func(o *Options[T]) {
		o.Element.Init = fn
	}
}

// WithCopy sets the copy hook.
func WithCopy[T any](fn func(dst, src *T) error) Option[T] {
	return func(o *Options[T]) {
		o.Element.Copy = fn
	}
}

// WithMove sets the move hook. mayFail must be true if move can return an
// error, see Element.MoveMayFail.
func WithMove[T any](move func(dst, src *T) error, mayFail bool) Option[T] {
	return func(o *Options[T]) {
		o.Element.Move = move
		o.Element.MoveMayFail = mayFail
	}
}

// WithDestroy sets the hook run when an element's lifetime ends.
func WithDestroy[T any](destroy func(*T)) Option[T] {
	return func(o *Options[T]) {
		o.Element.Destroy = destroy
	}
}

// WithNoCopy marks T as not copyable. Clone and CopyFrom then fail with
// ErrNotCopyable.
func WithNoCopy[T any]() Option[T] {
	return func(o *Options[T]) {
		o.Element.NoCopy = true
	}
}

// WithLogger enables reallocation diagnostics.
func WithLogger[T any](log logger.Logger) Option[T] {
	return func(o *Options[T]) {
		o.Log = log
	}
}
