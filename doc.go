// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package optics provides composable, strength-tagged optics over immutable
// nested data in Go.
//
// An [Optic] pairs a view function with a modify function focused on a
// sub-value A within a larger value S. Every optic carries a [Strength]
// describing how many focus values its view yields: [Exact] (precisely one),
// [Partial] (zero or one), or [Many] (zero or more). Strengths form a total
// order Exact < Partial < Many, and composing two optics aligns both to the
// join of their strengths.
//
// # Design Philosophy
//
// optics provides:
//   - Pure values throughout — optics are constructed once and shared freely
//   - A closed three-variant strength lattice with exhaustive dispatch
//   - Structural-identity-preserving updates: a no-op update returns the
//     original source reference wherever a combinator can detect it cheaply
//
// # Core Types
//
//   - [Strength]: Exact | Partial | Many, joined by [Align]
//   - [Option]: present/absent container, the Partial view result
//   - [Either]: two-branch sum for branch optics and [ReaderResult]
//   - [Pair]: 2-tuple for the FirstOf/SecondOf projections
//   - [Optic]: strength tag + view + modify
//
// # Construction
//
//   - [Identity]: Exact optic focusing the source itself
//   - [Lens]: Exact optic from a total view and modify
//   - [Affine]: Partial optic from an optional view and modify
//   - [Traversal]: Many optic from an aggregate view and modify
//   - [Compose], [Compose3]: strength-aligned composition
//
// # Consumption
//
//   - [Optic.Get]: single focus (Exact only)
//   - [Optic.Preview]: optional focus (Exact or Partial)
//   - [Optic.Collect]: every focus (any strength)
//   - [Optic.Modify], [Optic.Replace]: pure whole-source updates
//
// Get and Preview panic when called at too weak a strength; this is the
// same fatal path as an invalid internal cast and indicates a programming
// error, never a runtime condition. A missing key or out-of-range index is
// an absent [Option] or an empty slice, never a panic.
//
// # Combinators
//
//   - [Field], [FieldBy]: struct field access with no-op short-circuit
//   - [Pick]: multi-key sub-record of a map
//   - [Index], [Key]: positional and keyed Partial access
//   - [At]: optional-slot access — the focus is the key's presence itself
//   - [Filter], [NotNil]: predicate and pointer refinement
//   - [Each], [Values], [Members], [Nodes]: slice/map/set/tree traversals
//   - [RightOf], [LeftOf], [FirstOf], [SecondOf]: sum and pair access
//
// # Aggregation
//
//   - [Monoid]: associative combine with identity
//   - [ConcatAll]: fold every focus through a monoid, left to right
//   - [Count], [Exists]: derived folds
//
// # Environment-Reading Results
//
// [ReaderResult] is an environment-reading asynchronous computation yielding
// [Either] a failure or a value. [PreviewEnv] and [CollectEnv] lift optics
// over the environment into ReaderResult computations.
package optics
