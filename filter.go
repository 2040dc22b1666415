// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Filter creates a Partial optic whose focus is the source itself, present
// only while the predicate holds.
//
// Modify applies the update only when the predicate holds on the current
// value; otherwise the original source is returned.
func Filter[S any](pred func(S) bool) Optic[S, S] {
	return Affine(
		func(s S) Option[S] {
			if pred(s) {
				return Some(s)
			}
			return None[S]()
		},
		func(f func(S) S) func(S) S {
			return func(s S) S {
				if !pred(s) {
					return s
				}
				return f(s)
			}
		},
	)
}

// NotNil creates a Partial optic from a pointer to its pointed-to value.
//
// The view is absent on nil. Modify leaves nil untouched and otherwise
// allocates a fresh pointer to the updated value — the source pointer is
// never written through.
func NotNil[A any]() Optic[*A, A] {
	return Affine(
		func(p *A) Option[A] {
			if p == nil {
				return None[A]()
			}
			return Some(*p)
		},
		func(f func(A) A) func(*A) *A {
			return func(p *A) *A {
				if p == nil {
					return nil
				}
				next := f(*p)
				return &next
			}
		},
	)
}
