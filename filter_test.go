// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics_test

import (
	"testing"

	"code.hybscloud.com/optics"
)

func TestFilterView(t *testing.T) {
	even := optics.Filter(func(n int) bool { return n%2 == 0 })

	v, ok := even.Preview(4).Get()
	if !ok || v != 4 {
		t.Fatalf("got %d, want 4", v)
	}
	if even.Preview(3).IsSome() {
		t.Fatal("expected absent focus when predicate fails")
	}
}

func TestFilterModify(t *testing.T) {
	even := optics.Filter(func(n int) bool { return n%2 == 0 })
	double := even.Modify(func(n int) int { return n * 2 })

	if got := double(4); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
	if got := double(3); got != 3 {
		t.Fatalf("got %d, want 3 (predicate fails, no update)", got)
	}
}

func TestFilterComposed(t *testing.T) {
	adultAge := optics.Compose(
		optics.Filter(func(p person) bool { return p.age >= 18 }),
		ageField(),
	)

	if adultAge.Tag() != optics.Partial {
		t.Fatalf("got %v, want Partial", adultAge.Tag())
	}
	v, ok := adultAge.Preview(person{age: 30}).Get()
	if !ok || v != 30 {
		t.Fatalf("got %d, want 30", v)
	}
	if adultAge.Preview(person{age: 10}).IsSome() {
		t.Fatal("expected absent focus for minor")
	}
}

func TestNotNilView(t *testing.T) {
	deref := optics.NotNil[int]()

	n := 7
	v, ok := deref.Preview(&n).Get()
	if !ok || v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
	if deref.Preview(nil).IsSome() {
		t.Fatal("expected absent focus on nil pointer")
	}
}

func TestNotNilModify(t *testing.T) {
	deref := optics.NotNil[int]()
	bump := deref.Modify(func(n int) int { return n + 1 })

	n := 41
	got := bump(&n)
	if got == nil || *got != 42 {
		t.Fatalf("got %v, want pointer to 42", got)
	}
	if n != 41 {
		t.Fatal("source value must stay untouched")
	}
	if bump(nil) != nil {
		t.Fatal("nil pointer must pass through untouched")
	}
}
