// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Monoid is an associative combine operation with an identity element.
type Monoid[M any] struct {
	Empty  M
	Concat func(M, M) M
}

// ConcatAll casts the optic up to Many, maps every focus through f into the
// monoid's carrier, and folds left to right starting from Empty.
//
// Fold order follows the focus container's natural iteration order: slice
// traversals fold in index order, record traversals in ascending key order.
func ConcatAll[M, S, A any](m Monoid[M], o Optic[S, A], f func(A) M) func(S) M {
	view := o.manyView()
	return func(s S) M {
		acc := m.Empty
		for _, a := range view(s) {
			acc = m.Concat(acc, f(a))
		}
		return acc
	}
}

// Count returns the number of focus values in a source.
func Count[S, A any](o Optic[S, A]) func(S) int {
	sum := Monoid[int]{Concat: func(a, b int) int { return a + b }}
	return ConcatAll(sum, o, func(A) int { return 1 })
}

// Exists reports whether any focus value satisfies the predicate.
func Exists[S, A any](o Optic[S, A], pred func(A) bool) func(S) bool {
	or := Monoid[bool]{Concat: func(a, b bool) bool { return a || b }}
	return ConcatAll(or, o, pred)
}
