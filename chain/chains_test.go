// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/bitmark-inc/pegbridge/chain"
)

func TestValid(t *testing.T) {
	items := []struct {
		name    string
		valid   bool
		testing bool
	}{
		{chain.Bitmark, true, false},
		{chain.Testing, true, true},
		{chain.Local, true, true},
		{"BITMARK", false, true},
		{"", false, true},
	}
	for i, item := range items {
		if item.valid != chain.Valid(item.name) {
			t.Errorf("%d: %q valid actual: %v  expected: %v", i, item.name, !item.valid, item.valid)
		}
		if item.testing != chain.IsTesting(item.name) {
			t.Errorf("%d: %q testing actual: %v  expected: %v", i, item.name, !item.testing, item.testing)
		}
	}
}
