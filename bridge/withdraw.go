// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bridge

import (
	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/event"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/storage"
)

// Withdraw - move amount from the signer into the vault pending payout
func (b *Bridge) Withdraw(origin Origin, amount uint64) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireInitialised(); nil != err {
		return err
	}
	if b.parameters.IsPaused() {
		return fault.ErrBridgePaused
	}

	signer, ok := origin.Signer()
	if !ok {
		return fault.ErrNotSigned
	}
	if err := validAmount(amount); nil != err {
		return err
	}

	err := b.atomically(func(trx storage.Transaction) error {
		err := b.ledger.Transfer(trx, b.parameters.AssetId(), signer, b.parameters.Vault(), amount)
		if nil != err {
			return err
		}
		b.pending.Append(trx, signer, amount)
		b.events.Append(trx, event.PendingWithdraw(signer, amount))
		return nil
	})
	if nil != err {
		b.log.Warnf("withdraw: %d by: %s error: %s", amount, signer, err)
		return err
	}

	b.log.Infof("pending withdraw: %d by: %s", amount, signer)
	return nil
}

// WithdrawFinish - record a completed off-chain payout
//
// the funds stay in the vault
func (b *Bridge) WithdrawFinish(origin Origin, who *account.Account, amount uint64) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireInitialised(); nil != err {
		return err
	}
	if err := b.authorise(origin, authority.Withdraw, fault.ErrNoWithdrawAuth); nil != err {
		return err
	}
	if err := validAccount(who); nil != err {
		return err
	}
	if !b.pending.Contains(who, amount) {
		return fault.ErrPendingWithdrawNotFound
	}

	err := b.atomically(func(trx storage.Transaction) error {
		err := b.pending.Remove(trx, who, amount)
		if nil != err {
			return err
		}
		b.events.Append(trx, event.Withdraw(who, amount))
		return nil
	})
	if nil != err {
		return err
	}

	b.log.Infof("withdraw finished: %d for: %s", amount, who)
	return nil
}

// Refund - return a pending withdrawal from the vault
func (b *Bridge) Refund(origin Origin, who *account.Account, amount uint64) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireInitialised(); nil != err {
		return err
	}
	if err := b.authorise(origin, authority.Refund, fault.ErrNoRefundAuth); nil != err {
		return err
	}
	if err := validAccount(who); nil != err {
		return err
	}
	if !b.pending.Contains(who, amount) {
		return fault.ErrPendingWithdrawNotFound
	}

	err := b.atomically(func(trx storage.Transaction) error {
		err := b.ledger.Transfer(trx, b.parameters.AssetId(), b.parameters.Vault(), who, amount)
		if nil != err {
			return err
		}
		err = b.pending.Remove(trx, who, amount)
		if nil != err {
			return err
		}
		b.events.Append(trx, event.Refund(who, amount))
		return nil
	})
	if nil != err {
		b.log.Warnf("refund: %d to: %s error: %s", amount, who, err)
		return err
	}

	b.log.Infof("refunded: %d to: %s", amount, who)
	return nil
}
