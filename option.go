// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Option represents a value that is either present (Some) or absent (None).
// It is the view container of Partial-strength optics: a missing key or an
// out-of-range index is an absent focus, never an error.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present option.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the option is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if the option is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// OrElse returns the value if present, otherwise the fallback.
func (o Option[A]) OrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// FromNillable creates an option from a pointer: nil maps to None,
// non-nil maps to Some of the pointed-to value.
func FromNillable[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// MatchOption pattern matches on the option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// ChainOption sequences two optional computations (monadic bind).
// An absent input short-circuits without calling f.
func ChainOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}
