// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - deterministic per-user deposit keys
//
// a 32 byte master seed is stretched along the owner account and a
// path of the form m/i/j/... using secretbox as the one-way step, then
// the result seeds an ed25519 key pair
package derivation

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/fault"
)

const (
	seedLength = 32
	maxDepth   = 16
)

// constant plaintext for each step
var stepMessage [seedLength]byte

// Deriver - holds the master seed
type Deriver struct {
	seed [seedLength]byte
}

// New - create a deriver from a raw seed
func New(seed []byte) (*Deriver, error) {
	if seedLength != len(seed) {
		return nil, fault.ErrInvalidDerivationSeed
	}
	d := &Deriver{}
	copy(d.seed[:], seed)
	return d, nil
}

// NewFromHex - create a deriver from a hex encoded seed
func NewFromHex(s string) (*Deriver, error) {
	seed, err := hex.DecodeString(strings.TrimSpace(s))
	if nil != err {
		return nil, fault.ErrInvalidDerivationSeed
	}
	return New(seed)
}

// ParsePath - decode "m/i/j/..." into indices
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(path, "/")
	if len(parts) < 2 || len(parts) > maxDepth+1 || "m" != parts[0] {
		return nil, fault.ErrInvalidDerivationPath
	}

	indices := make([]uint32, 0, len(parts)-1)
	for _, p := range parts[1:] {
		n, err := strconv.ParseUint(p, 10, 32)
		if nil != err {
			return nil, fault.ErrInvalidDerivationPath
		}
		indices = append(indices, uint32(n))
	}
	return indices, nil
}

// DeriveSubaddress - the deposit account of owner at path
//
// the derived account is on the same network as owner
func (d *Deriver) DeriveSubaddress(owner *account.Account, path string) (*account.Account, error) {
	privateKey, err := d.DeriveKey(owner, path)
	if nil != err {
		return nil, err
	}
	return account.New(privateKey.Public().(ed25519.PublicKey), owner.IsTesting())
}

// DeriveKey - the private key behind DeriveSubaddress
func (d *Deriver) DeriveKey(owner *account.Account, path string) (ed25519.PrivateKey, error) {
	if nil == owner {
		return nil, fault.ErrInvalidDerivationPath
	}
	indices, err := ParsePath(path)
	if nil != err {
		return nil, err
	}

	key := d.seed

	ownerDigest := sha3.Sum256(owner.Bytes())
	var nonce [24]byte
	copy(nonce[:], ownerDigest[:])
	key = step(key, &nonce)

	for _, index := range indices {
		var nonce [24]byte
		binary.BigEndian.PutUint32(nonce[len(nonce)-4:], index)
		key = step(key, &nonce)
	}

	return ed25519.NewKeyFromSeed(key[:]), nil
}

func step(key [seedLength]byte, nonce *[24]byte) [seedLength]byte {
	sealed := secretbox.Seal(nil, stepMessage[:], nonce, &key)
	var next [seedLength]byte
	copy(next[:], sealed[secretbox.Overhead:])
	return next
}
