// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bridge

import (
	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/deposit"
	"github.com/bitmark-inc/pegbridge/event"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/storage"
)

// Deposit - credit an external deposit to beneficiary
//
// amounts at or above the threshold for an account that is not
// cleared White are held in its queue instead of being minted
func (b *Bridge) Deposit(origin Origin, beneficiary *account.Account, amount uint64, txRef string) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireInitialised(); nil != err {
		return err
	}

	// dedup precedes the pause gate and authorisation
	if b.history.Has(txRef) {
		b.log.Warnf("repeated transaction: %q", txRef)
		return fault.ErrRepeatedTransaction
	}
	if b.parameters.IsPaused() {
		return fault.ErrBridgePaused
	}
	if err := b.authorise(origin, authority.Deposit, fault.ErrNoDepositAuth); nil != err {
		return err
	}

	if err := validTxRef(txRef); nil != err {
		return err
	}
	if err := validAccount(beneficiary); nil != err {
		return err
	}
	if err := validAmount(amount); nil != err {
		return err
	}

	hold := amount >= b.parameters.Threshold() && !b.marks.IsCleared(beneficiary)

	b.log.Debugf("deposit: %q amount: %d to: %s hold: %t", txRef, amount, beneficiary, hold)

	err := b.atomically(func(trx storage.Transaction) error {
		if !hold {
			return b.settle(trx, beneficiary, amount, txRef)
		}

		held := deposit.Held(beneficiary, txRef, amount)
		b.history.Put(trx, txRef, held)
		b.queue.Append(trx, beneficiary, held)
		b.events.Append(trx, event.Pending(beneficiary, amount, txRef))
		return nil
	})
	if nil != err {
		return err
	}

	if hold {
		b.log.Infof("held: %q amount: %d for: %s", txRef, amount, beneficiary)
	} else {
		b.log.Infof("deposited: %q amount: %d to: %s", txRef, amount, beneficiary)
	}
	return nil
}
