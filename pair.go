// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Pair is a 2-tuple. FirstOf and SecondOf project its halves.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair creates a pair from its two halves.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Swap returns the pair with halves exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}
