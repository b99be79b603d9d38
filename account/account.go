// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 public key tagged with the network it belongs to
type Account struct {
	test      bool
	publicKey []byte
}

// New - create an account from a raw public key
func New(publicKey []byte, test bool) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	key := make([]byte, ed25519.PublicKeySize)
	copy(key, publicKey)
	return &Account{
		test:      test,
		publicKey: key,
	}, nil
}

// Generate - create a new random key pair, returning the account and
// its private key
func Generate(test bool, random io.Reader) (*Account, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, nil, err
	}
	a, err := New(publicKey, test)
	if nil != err {
		return nil, nil, err
	}
	return a, privateKey, nil
}

// FromBase58 - convert a Base58 encoded string with checksum into an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || len(accountDecoded) <= checksumLength {
		return nil, fault.ErrCannotDecodeAccount
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return FromBytes(accountDecoded[:checksumStart])
}

// FromBytes - convert the binary form (key variant ++ public key) into an account
func FromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if keyVariantLength <= 0 || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	return New(accountBytes[keyVariantLength:], isTest)
}

// Bytes - binary form used for database keys and packed records
func (account *Account) Bytes() []byte {
	keyVariant := uint64(ED25519<<algorithmShift) | publicKeyCode
	if account.test {
		keyVariant |= testKeyCode
	}
	return append(util.ToVarint64(keyVariant), account.publicKey...)
}

// String - base58 encoding of the binary form plus checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// PublicKey - the raw ed25519 public key
func (account *Account) PublicKey() []byte {
	return account.publicKey
}

// IsTesting - whether the account belongs to a test network
func (account *Account) IsTesting() bool {
	return account.test
}

// Equal - compare two accounts
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.test == other.test && bytes.Equal(account.publicKey, other.publicKey)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
