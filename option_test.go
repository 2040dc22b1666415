// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics_test

import (
	"testing"

	"code.hybscloud.com/optics"
)

func TestOptionSome(t *testing.T) {
	o := optics.Some(42)

	if !o.IsSome() {
		t.Fatal("expected IsSome true")
	}
	if o.IsNone() {
		t.Fatal("expected IsNone false")
	}
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestOptionNone(t *testing.T) {
	o := optics.None[int]()

	if o.IsSome() {
		t.Fatal("expected IsSome false")
	}
	if !o.IsNone() {
		t.Fatal("expected IsNone true")
	}
	if _, ok := o.Get(); ok {
		t.Fatal("Get on None should return false")
	}
}

func TestOptionOrElse(t *testing.T) {
	if got := optics.Some(1).OrElse(9); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := optics.None[int]().OrElse(9); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestFromNillable(t *testing.T) {
	n := 7
	if got := optics.FromNillable(&n); got.IsNone() {
		t.Fatal("expected Some from non-nil pointer")
	}
	if got := optics.FromNillable[int](nil); got.IsSome() {
		t.Fatal("expected None from nil pointer")
	}
}

func TestMapOption(t *testing.T) {
	mapped := optics.MapOption(optics.Some(21), func(x int) int { return x * 2 })
	v, ok := mapped.Get()
	if !ok || v != 42 {
		t.Fatalf("got %d, want 42", v)
	}

	if optics.MapOption(optics.None[int](), func(x int) int { return x * 2 }).IsSome() {
		t.Fatal("mapping None should remain None")
	}
}

func TestChainOption(t *testing.T) {
	half := func(x int) optics.Option[int] {
		if x%2 != 0 {
			return optics.None[int]()
		}
		return optics.Some(x / 2)
	}

	v, ok := optics.ChainOption(optics.Some(42), half).Get()
	if !ok || v != 21 {
		t.Fatalf("got %d, want 21", v)
	}
	if optics.ChainOption(optics.Some(3), half).IsSome() {
		t.Fatal("chain into None should be None")
	}
	if optics.ChainOption(optics.None[int](), half).IsSome() {
		t.Fatal("chain from None should be None")
	}
}

func TestMatchOption(t *testing.T) {
	got := optics.MatchOption(optics.Some(5),
		func() string { return "none" },
		func(x int) string { return "some" })
	if got != "some" {
		t.Fatalf("got %q, want %q", got, "some")
	}

	got = optics.MatchOption(optics.None[int](),
		func() string { return "none" },
		func(x int) string { return "some" })
	if got != "none" {
		t.Fatalf("got %q, want %q", got, "none")
	}
}
