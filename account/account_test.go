// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/fault"
)

var publicKeys = []struct {
	testnet   bool
	publicKey []byte
}{
	{false, decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e")},
	{true, decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db")},
	{true, decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e")},
	{false, decodeHex("0000000000000000000000000000000000000000000000000000000000000000")},
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestBase58RoundTrip(t *testing.T) {
	for i, item := range publicKeys {
		a, err := account.New(item.publicKey, item.testnet)
		if nil != err {
			t.Fatalf("%d: new error: %s", i, err)
		}

		s := a.String()
		b, err := account.FromBase58(s)
		if nil != err {
			t.Fatalf("%d: from base58: %q  error: %s", i, s, err)
		}
		if !a.Equal(b) {
			t.Errorf("%d: actual: %s  expected: %s", i, b, a)
		}
		if item.testnet != b.IsTesting() {
			t.Errorf("%d: testnet actual: %v  expected: %v", i, b.IsTesting(), item.testnet)
		}
		if !bytes.Equal(item.publicKey, b.PublicKey()) {
			t.Errorf("%d: public key actual: %x  expected: %x", i, b.PublicKey(), item.publicKey)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	for i, item := range publicKeys {
		a, _ := account.New(item.publicKey, item.testnet)
		buffer := a.Bytes()
		assert.Equal(t, 33, len(buffer), "%d: wrong binary length", i)

		b, err := account.FromBytes(buffer)
		assert.Nil(t, err, "%d: from bytes", i)
		assert.True(t, a.Equal(b), "%d: accounts differ", i)
	}
}

func TestTestnetDistinct(t *testing.T) {
	live, _ := account.New(publicKeys[0].publicKey, false)
	test, _ := account.New(publicKeys[0].publicKey, true)

	assert.False(t, live.Equal(test), "network flag ignored")
	assert.NotEqual(t, live.String(), test.String(), "network flag not encoded")
}

func TestInvalid(t *testing.T) {
	_, err := account.New([]byte{1, 2, 3}, false)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key accepted")

	_, err = account.FromBase58("0OIl")
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "invalid characters accepted")

	a, _ := account.New(publicKeys[1].publicKey, true)
	s := []byte(a.String())
	if 'a' == s[10] {
		s[10] = 'b'
	} else {
		s[10] = 'a'
	}
	_, err = account.FromBase58(string(s))
	assert.NotNil(t, err, "corrupted account accepted")

	_, err = account.FromBytes([]byte{0x10, 1, 2})
	assert.Equal(t, fault.ErrNotPublicKey, err, "private key code accepted")

	_, err = account.FromBytes(append([]byte{0x21}, publicKeys[0].publicKey...))
	assert.Equal(t, fault.ErrInvalidKeyType, err, "unknown algorithm accepted")
}

func TestJSON(t *testing.T) {
	a, _ := account.New(publicKeys[2].publicKey, true)

	type wrapper struct {
		Owner *account.Account `json:"owner"`
	}

	buffer, err := json.Marshal(wrapper{Owner: a})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"owner":"`+a.String()+`"}`, string(buffer), "wrong JSON")

	var w wrapper
	err = json.Unmarshal(buffer, &w)
	assert.Nil(t, err, "unmarshal")
	assert.True(t, a.Equal(w.Owner), "JSON round trip")
}
