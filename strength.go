// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Strength is the cardinality guarantee of an optic's view result.
//
// The three variants form a total order Exact < Partial < Many. The order
// is a lattice: composing two optics aligns both to the join of their
// strengths. Strength is a closed enumeration — no further variants exist,
// and every strength-dispatching site switches exhaustively over these three.
type Strength uint8

const (
	// Exact means the view always yields precisely one focus value.
	Exact Strength = iota
	// Partial means the view yields zero or one focus values.
	Partial
	// Many means the view yields zero, one, or many focus values.
	Many
)

// Align returns the join of u and v under Exact < Partial < Many.
// It is commutative, associative, and idempotent, and determines the
// strength of a composed optic.
func Align(u, v Strength) Strength {
	if u > v {
		return u
	}
	return v
}

// String returns the strength's name.
func (t Strength) String() string {
	switch t {
	case Exact:
		return "Exact"
	case Partial:
		return "Partial"
	case Many:
		return "Many"
	}
	return "Strength(invalid)"
}
