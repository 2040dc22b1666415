// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

import "maps"

// Field creates an Exact optic over a single struct field through its
// accessor pair.
//
// Modify compares the update result against the current field value and
// returns the original source when they are equal, so an unchanged field
// never allocates a new parent. Callers relying on reference equality to
// skip downstream recomputation depend on this.
func Field[S any, A comparable](get func(S) A, set func(S, A) S) Optic[S, A] {
	return Lens(get, func(f func(A) A) func(S) S {
		return func(s S) S {
			current := get(s)
			next := f(current)
			if next == current {
				return s
			}
			return set(s, next)
		}
	})
}

// FieldBy is Field for focus types that are not comparable. The unchanged
// predicate supplies the equality check that drives the no-op short-circuit.
func FieldBy[S, A any](get func(S) A, set func(S, A) S, unchanged func(current, next A) bool) Optic[S, A] {
	return Lens(get, func(f func(A) A) func(S) S {
		return func(s S) S {
			current := get(s)
			next := f(current)
			if unchanged(current, next) {
				return s
			}
			return set(s, next)
		}
	})
}

// Pick creates an Exact optic focusing the sub-record of the named keys.
//
// The view contains only the named keys present in the source. Modify merges
// the updated sub-record back key by key: a named key present in the update
// is written, a named key absent from the update is deleted. When no named
// key's presence or value differs, the original map is returned unchanged.
func Pick[K comparable, V comparable](keys ...K) Optic[map[K]V, map[K]V] {
	view := func(m map[K]V) map[K]V {
		sub := make(map[K]V, len(keys))
		for _, k := range keys {
			if v, ok := m[k]; ok {
				sub[k] = v
			}
		}
		return sub
	}
	return Lens(view, func(f func(map[K]V) map[K]V) func(map[K]V) map[K]V {
		return func(m map[K]V) map[K]V {
			updated := f(view(m))
			changed := false
			for _, k := range keys {
				next, nextOK := updated[k]
				current, currentOK := m[k]
				if nextOK != currentOK || next != current {
					changed = true
					break
				}
			}
			if !changed {
				return m
			}
			merged := maps.Clone(m)
			if merged == nil {
				merged = make(map[K]V, len(keys))
			}
			for _, k := range keys {
				if v, ok := updated[k]; ok {
					merged[k] = v
				} else {
					delete(merged, k)
				}
			}
			return merged
		}
	})
}
