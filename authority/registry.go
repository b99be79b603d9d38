// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - the authorisation registry
//
// maps an operator account to exactly one capability; an account with
// no entry holds no capability
package authority

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/storage"
)

// Registry - capability lookup backed by a storage pool
type Registry struct {
	pool storage.Handle
}

// New - create a registry over a pool
func New(pool storage.Handle) *Registry {
	return &Registry{
		pool: pool,
	}
}

// Capability - the capability held by an account
//
// second value is false if the account has no entry
func (r *Registry) Capability(a *account.Account) (Capability, bool) {
	value := r.pool.Get(a.Bytes())
	if nil == value {
		return None, false
	}
	if 1 != len(value) || !Capability(value[0]).Valid() {
		logger.Panicf("authority: corrupt capability: %x for: %s", value, a)
	}
	return Capability(value[0]), true
}

// HasCapability - true iff the account holds All or exactly needed
func (r *Registry) HasCapability(a *account.Account, needed Capability) bool {
	if nil == a {
		return false
	}
	c, found := r.Capability(a)
	if !found {
		return false
	}
	return c.Satisfies(needed)
}

// Set - grant a capability, replacing any previous one
func (r *Registry) Set(trx storage.Transaction, a *account.Account, c Capability) error {
	if !c.Valid() {
		return fault.ErrInvalidCapability
	}
	trx.Put(r.pool, a.Bytes(), []byte{byte(c)})
	return nil
}

// Remove - revoke whatever capability the account holds
func (r *Registry) Remove(trx storage.Transaction, a *account.Account) {
	trx.Delete(r.pool, a.Bytes())
}
