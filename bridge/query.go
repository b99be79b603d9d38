// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bridge

import (
	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/compliance"
	"github.com/bitmark-inc/pegbridge/deposit"
	"github.com/bitmark-inc/pegbridge/event"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/parameter"
)

// Parameters - current settings
func (b *Bridge) Parameters() parameter.Parameters {
	b.RLock()
	defer b.RUnlock()

	return b.parameters.Get()
}

// Balance - pegged asset balance of an account
func (b *Bridge) Balance(a *account.Account) uint64 {
	b.RLock()
	defer b.RUnlock()

	return b.ledger.Balance(b.parameters.AssetId(), a)
}

// PendingDeposits - held deposits of an account, oldest first
func (b *Bridge) PendingDeposits(a *account.Account) []deposit.Deposit {
	b.RLock()
	defer b.RUnlock()

	return b.queue.List(a)
}

// PendingWithdrawals - outstanding withdrawal amounts of an account
func (b *Bridge) PendingWithdrawals(a *account.Account) []uint64 {
	b.RLock()
	defer b.RUnlock()

	return b.pending.List(a)
}

// DepositRecord - the history entry of an external transaction
func (b *Bridge) DepositRecord(txRef string) (deposit.Deposit, bool) {
	b.RLock()
	defer b.RUnlock()

	return b.history.Get(txRef)
}

// Classify - compliance mark of an account
func (b *Bridge) Classify(a *account.Account) (compliance.Mark, bool) {
	b.RLock()
	defer b.RUnlock()

	return b.marks.Classify(a)
}

// Capability - authorisation entry of an account
func (b *Bridge) Capability(a *account.Account) (authority.Capability, bool) {
	b.RLock()
	defer b.RUnlock()

	return b.authorities.Capability(a)
}

// Events - committed notifications from sequence start
func (b *Bridge) Events(start uint64, count int) ([]event.Event, error) {
	b.RLock()
	defer b.RUnlock()

	return b.events.Fetch(start, count)
}

// DepositAddress - the external deposit key of owner at path
func (b *Bridge) DepositAddress(owner *account.Account, path string) (*account.Account, error) {
	if nil == b.deriver {
		return nil, fault.ErrDerivationDisabled
	}
	return b.deriver.DeriveSubaddress(owner, path)
}
