// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics_test

import (
	"testing"

	"code.hybscloud.com/optics"
)

func TestMakePair(t *testing.T) {
	p := optics.MakePair(1, "one")
	if p.Fst != 1 || p.Snd != "one" {
		t.Fatalf("got (%d, %q), want (1, %q)", p.Fst, p.Snd, "one")
	}
}

func TestPairSwap(t *testing.T) {
	p := optics.MakePair(1, "one").Swap()
	if p.Fst != "one" || p.Snd != 1 {
		t.Fatalf("got (%q, %d), want (%q, 1)", p.Fst, p.Snd, "one")
	}
}
