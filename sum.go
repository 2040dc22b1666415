// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Branch optics over Either and projections over Pair.

// RightOf creates a Partial optic focusing the Right branch of an Either.
// Modify applies only within the Right branch, reconstructing the sum;
// a Left value passes through untouched.
func RightOf[E, A any]() Optic[Either[E, A], A] {
	return Affine(
		func(e Either[E, A]) Option[A] {
			if a, ok := e.GetRight(); ok {
				return Some(a)
			}
			return None[A]()
		},
		func(f func(A) A) func(Either[E, A]) Either[E, A] {
			return func(e Either[E, A]) Either[E, A] {
				a, ok := e.GetRight()
				if !ok {
					return e
				}
				return Right[E](f(a))
			}
		},
	)
}

// LeftOf creates a Partial optic focusing the Left branch of an Either.
func LeftOf[E, A any]() Optic[Either[E, A], E] {
	return Affine(
		func(e Either[E, A]) Option[E] {
			if l, ok := e.GetLeft(); ok {
				return Some(l)
			}
			return None[E]()
		},
		func(f func(E) E) func(Either[E, A]) Either[E, A] {
			return func(e Either[E, A]) Either[E, A] {
				l, ok := e.GetLeft()
				if !ok {
					return e
				}
				return Left[E, A](f(l))
			}
		},
	)
}

// FirstOf creates an Exact optic over the first half of a pair.
// Modify replaces the first half and leaves the second untouched.
func FirstOf[A, B any]() Optic[Pair[A, B], A] {
	return Lens(
		func(p Pair[A, B]) A { return p.Fst },
		func(f func(A) A) func(Pair[A, B]) Pair[A, B] {
			return func(p Pair[A, B]) Pair[A, B] {
				return Pair[A, B]{Fst: f(p.Fst), Snd: p.Snd}
			}
		},
	)
}

// SecondOf creates an Exact optic over the second half of a pair.
func SecondOf[A, B any]() Optic[Pair[A, B], B] {
	return Lens(
		func(p Pair[A, B]) B { return p.Snd },
		func(f func(B) B) func(Pair[A, B]) Pair[A, B] {
			return func(p Pair[A, B]) Pair[A, B] {
				return Pair[A, B]{Fst: p.Fst, Snd: f(p.Snd)}
			}
		},
	)
}
