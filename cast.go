// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Cast engine: natural transformations lifting a view function to a
// stronger strength's container. Identity (Exact) wraps into Option or a
// one-element slice; an absent Option flattens to an empty slice. Casting
// at equal strength returns the stored function unchanged.
//
// Down-casts can never be reached through Compose — it always aligns both
// operands up to the join of their strengths — so a down-cast means the
// composition invariant itself is broken and fails fast.

// invalidCast reports a down-cast attempt. Non-recoverable.
func invalidCast(from, to Strength) {
	panic("optics: invalid cast from " + from.String() + " to " + to.String())
}

// exactView returns the view at Exact strength.
func (o Optic[S, A]) exactView() func(S) A {
	if o.tag != Exact {
		invalidCast(o.tag, Exact)
	}
	return o.exact
}

// partialView returns the view cast up to Partial strength.
func (o Optic[S, A]) partialView() func(S) Option[A] {
	switch o.tag {
	case Exact:
		view := o.exact
		return func(s S) Option[A] { return Some(view(s)) }
	case Partial:
		return o.part
	}
	invalidCast(o.tag, Partial)
	return nil
}

// manyView returns the view cast up to Many strength.
func (o Optic[S, A]) manyView() func(S) []A {
	switch o.tag {
	case Exact:
		view := o.exact
		return func(s S) []A { return []A{view(s)} }
	case Partial:
		view := o.part
		return func(s S) []A {
			if a, ok := view(s).Get(); ok {
				return []A{a}
			}
			return nil
		}
	}
	return o.many
}
