// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Optic pairs a view function with a modify function focused on a sub-value
// A within a larger value S.
//
// An optic stores exactly one view slot, selected by its strength tag:
// Exact views as func(S) A, Partial as func(S) Option[A], Many as
// func(S) []A. The modify function turns a pure update of the focus into a
// pure update of the whole source. Optics are immutable values: composition
// and every combinator allocate fresh optics and never touch S or A outside
// the stored functions.
//
// View and modify agree: replacing the focus rewrites exactly the locations
// the view reports values from.
type Optic[S, A any] struct {
	tag   Strength
	exact func(S) A
	part  func(S) Option[A]
	many  func(S) []A
	mod   func(func(A) A) func(S) S
}

// Identity creates the Exact optic whose focus is the source itself.
// It is a two-sided unit of Compose.
func Identity[S any]() Optic[S, S] {
	return Optic[S, S]{
		tag:   Exact,
		exact: func(s S) S { return s },
		mod:   func(f func(S) S) func(S) S { return f },
	}
}

// Lens creates an Exact optic from a total view and a modify function.
// The view must yield precisely one focus for every source.
func Lens[S, A any](view func(S) A, modify func(func(A) A) func(S) S) Optic[S, A] {
	return Optic[S, A]{tag: Exact, exact: view, mod: modify}
}

// Affine creates a Partial optic from an optional view and a modify function.
// The modify function must leave the source untouched when the focus is
// absent.
func Affine[S, A any](view func(S) Option[A], modify func(func(A) A) func(S) S) Optic[S, A] {
	return Optic[S, A]{tag: Partial, part: view, mod: modify}
}

// Traversal creates a Many optic from an aggregate view and a modify
// function. The modify function must apply the update to every focus the
// view reports, preserving container shape.
func Traversal[S, A any](view func(S) []A, modify func(func(A) A) func(S) S) Optic[S, A] {
	return Optic[S, A]{tag: Many, many: view, mod: modify}
}

// Tag returns the optic's strength.
func (o Optic[S, A]) Tag() Strength {
	return o.tag
}

// Get returns the single focus value of an Exact optic.
// Panics for Partial and Many optics — use Preview or Collect instead.
func (o Optic[S, A]) Get(s S) A {
	return o.exactView()(s)
}

// Preview returns the focus of an Exact or Partial optic as an option.
// Panics for Many optics — use Collect instead.
func (o Optic[S, A]) Preview(s S) Option[A] {
	return o.partialView()(s)
}

// Collect returns all focus values, in the focus container's natural order.
// Valid for every strength.
func (o Optic[S, A]) Collect(s S) []A {
	return o.manyView()(s)
}

// Modify turns a pure update of the focus into a pure update of the source.
// When the update is a no-op the result aliases the original source wherever
// the combinator can detect it cheaply (see the individual combinators).
func (o Optic[S, A]) Modify(f func(A) A) func(S) S {
	return o.mod(f)
}

// Replace sets every focus to the given value.
func (o Optic[S, A]) Replace(a A) func(S) S {
	return o.mod(func(A) A { return a })
}
