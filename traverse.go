// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

import (
	"cmp"
	"maps"
	"slices"
)

// Container traversals. Each traversal is a Many optic: the view flattens
// every contained element in the container's natural iteration order, and
// modify applies the update to every element through a structure-preserving
// map.
//
// An empty container short-circuits to the original reference. A non-empty
// container reallocates on modify even when every element maps to itself;
// only Members can detect per-element no-ops, because set members are
// comparable by construction.

// Each creates a Many optic over every element of a slice, in index order.
func Each[A any]() Optic[[]A, A] {
	return Traversal(
		func(xs []A) []A { return xs },
		func(f func(A) A) func([]A) []A {
			return func(xs []A) []A {
				if len(xs) == 0 {
					return xs
				}
				next := make([]A, len(xs))
				for i, x := range xs {
					next[i] = f(x)
				}
				return next
			}
		},
	)
}

// Values creates a Many optic over every value of a map.
// The view is in ascending key order, keeping record traversal stable and
// deterministic for a fixed input.
func Values[K cmp.Ordered, V any]() Optic[map[K]V, V] {
	return Traversal(
		func(m map[K]V) []V {
			if len(m) == 0 {
				return nil
			}
			vals := make([]V, 0, len(m))
			for _, k := range slices.Sorted(maps.Keys(m)) {
				vals = append(vals, m[k])
			}
			return vals
		},
		func(f func(V) V) func(map[K]V) map[K]V {
			return func(m map[K]V) map[K]V {
				if len(m) == 0 {
					return m
				}
				next := make(map[K]V, len(m))
				for k, v := range m {
					next[k] = f(v)
				}
				return next
			}
		},
	)
}

// Members creates a Many optic over every member of a set, in ascending
// order. Modify maps each member through the update; members that collide
// after the update merge into one.
func Members[A cmp.Ordered]() Optic[map[A]struct{}, A] {
	return Traversal(
		func(set map[A]struct{}) []A {
			if len(set) == 0 {
				return nil
			}
			return slices.Sorted(maps.Keys(set))
		},
		func(f func(A) A) func(map[A]struct{}) map[A]struct{} {
			return func(set map[A]struct{}) map[A]struct{} {
				if len(set) == 0 {
					return set
				}
				changed := false
				next := make(map[A]struct{}, len(set))
				for member := range set {
					mapped := f(member)
					if mapped != member {
						changed = true
					}
					next[mapped] = struct{}{}
				}
				if !changed {
					return set
				}
				return next
			}
		},
	)
}
