// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pegbridge/util"
)

func TestVarint64(t *testing.T) {
	tests := []struct {
		value   uint64
		encoded []byte
	}{
		{0, []byte{0x00}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{1 << 56, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range tests {
		encoded := util.ToVarint64(item.value)
		assert.Equal(t, item.encoded, encoded, "%d: encode", i)

		value, n := util.FromVarint64(append(encoded, 0x55))
		assert.Equal(t, item.value, value, "%d: decode", i)
		assert.Equal(t, len(item.encoded), n, "%d: length", i)
	}
}

func TestVarint64Truncated(t *testing.T) {
	for _, buffer := range [][]byte{nil, {0x80}, {0xff, 0xff, 0xff}} {
		value, n := util.FromVarint64(buffer)
		assert.Equal(t, uint64(0), value, "value from: %x", buffer)
		assert.Equal(t, 0, n, "length from: %x", buffer)
	}
}
