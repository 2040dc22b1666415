// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

import "maps"

// Index creates a Partial optic over the slice element at position i.
//
// The view is absent when i is out of range. Modify returns the original
// slice when i is out of range, and otherwise a fresh slice with only the
// element at i replaced.
func Index[A any](i int) Optic[[]A, A] {
	return Affine(
		func(xs []A) Option[A] {
			if i < 0 || i >= len(xs) {
				return None[A]()
			}
			return Some(xs[i])
		},
		func(f func(A) A) func([]A) []A {
			return func(xs []A) []A {
				if i < 0 || i >= len(xs) {
					return xs
				}
				next := make([]A, len(xs))
				copy(next, xs)
				next[i] = f(xs[i])
				return next
			}
		},
	)
}

// Key creates a Partial optic over the map value at key k.
//
// The view is absent when the key is missing. Modify returns the original
// map when the key is missing, and otherwise a fresh map with only that
// value replaced.
func Key[K comparable, V any](k K) Optic[map[K]V, V] {
	return Affine(
		func(m map[K]V) Option[V] {
			if v, ok := m[k]; ok {
				return Some(v)
			}
			return None[V]()
		},
		func(f func(V) V) func(map[K]V) map[K]V {
			return func(m map[K]V) map[K]V {
				v, ok := m[k]
				if !ok {
					return m
				}
				next := maps.Clone(m)
				next[k] = f(v)
				return next
			}
		},
	)
}

// At creates an Exact optic focusing the optional slot at key k: the focus
// is the presence of the key itself, as an Option value, not the flattened
// value.
//
// Modify interprets the updated option: None deletes the key, Some inserts
// or overwrites it. An absent slot updated to absent returns the original
// map. Overwriting a present slot always allocates, even when the new value
// equals the old — the value type is unconstrained, so no equality check is
// available here.
func At[K comparable, V any](k K) Optic[map[K]V, Option[V]] {
	return Lens(
		func(m map[K]V) Option[V] {
			if v, ok := m[k]; ok {
				return Some(v)
			}
			return None[V]()
		},
		func(f func(Option[V]) Option[V]) func(map[K]V) map[K]V {
			return func(m map[K]V) map[K]V {
				current := None[V]()
				if v, ok := m[k]; ok {
					current = Some(v)
				}
				next, present := f(current).Get()
				if !present {
					if current.IsNone() {
						return m
					}
					trimmed := maps.Clone(m)
					delete(trimmed, k)
					return trimmed
				}
				grown := maps.Clone(m)
				if grown == nil {
					grown = make(map[K]V, 1)
				}
				grown[k] = next
				return grown
			}
		},
	)
}
