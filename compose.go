// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Compose combines an optic from S to A with an optic from A to B into an
// optic from S to B whose strength is the join of the operands' strengths.
//
// Both views are cast up to the joined strength and sequenced through that
// strength's monadic chain: Exact chains by function application, Partial
// short-circuits on an absent outer focus, Many flat-maps the inner view
// over every outer focus. Modify composes in reverse order — the outer
// modify runs with the inner modify wrapped around the update — so the
// update reaches the inner focus through the outer location.
//
// Compose is associative, and Identity is a two-sided unit.
func Compose[S, A, B any](outer Optic[S, A], inner Optic[A, B]) Optic[S, B] {
	composed := Optic[S, B]{tag: Align(outer.tag, inner.tag)}
	switch composed.tag {
	case Exact:
		outerView, innerView := outer.exact, inner.exact
		composed.exact = func(s S) B {
			return innerView(outerView(s))
		}
	case Partial:
		outerView, innerView := outer.partialView(), inner.partialView()
		composed.part = func(s S) Option[B] {
			return ChainOption(outerView(s), innerView)
		}
	case Many:
		outerView, innerView := outer.manyView(), inner.manyView()
		composed.many = func(s S) []B {
			var all []B
			for _, a := range outerView(s) {
				all = append(all, innerView(a)...)
			}
			return all
		}
	}
	outerMod, innerMod := outer.mod, inner.mod
	composed.mod = func(f func(B) B) func(S) S {
		return outerMod(innerMod(f))
	}
	return composed
}

// Compose3 composes three optics left to right.
// Equivalent to Compose(Compose(a, b), c) — associativity makes the
// grouping irrelevant.
func Compose3[S, A, B, C any](a Optic[S, A], b Optic[A, B], c Optic[B, C]) Optic[S, C] {
	return Compose(Compose(a, b), c)
}
