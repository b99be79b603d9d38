// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bridge

import (
	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/compliance"
	"github.com/bitmark-inc/pegbridge/event"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/storage"
)

// MarkBlack - reject every held deposit of an account
//
// the held references are released and may be deposited again
func (b *Bridge) MarkBlack(origin Origin, a *account.Account) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireInitialised(); nil != err {
		return err
	}
	if err := b.authorise(origin, authority.Mark, fault.ErrNoMarkAuth); nil != err {
		return err
	}
	if err := validAccount(a); nil != err {
		return err
	}

	purged := 0
	err := b.atomically(func(trx storage.Transaction) error {
		for _, d := range b.queue.Take(trx, a) {
			b.history.Remove(trx, d.Reference)
			purged += 1
		}
		if err := b.marks.Set(trx, a, compliance.Black); nil != err {
			return err
		}
		b.events.Append(trx, event.AccountMarked(a, compliance.Black))
		return nil
	})
	if nil != err {
		return err
	}

	b.log.Infof("marked black: %s purged: %d", a, purged)
	return nil
}

// MarkWhite - clear an account and settle its held deposits in order
//
// all settlements commit together: if any fails nothing changes
func (b *Bridge) MarkWhite(origin Origin, a *account.Account) error {
	b.Lock()
	defer b.Unlock()

	if err := b.requireInitialised(); nil != err {
		return err
	}
	if err := b.authorise(origin, authority.Mark, fault.ErrNoMarkAuth); nil != err {
		return err
	}
	if err := validAccount(a); nil != err {
		return err
	}

	settled := 0
	err := b.atomically(func(trx storage.Transaction) error {
		for _, d := range b.queue.Take(trx, a) {
			err := b.settle(trx, d.Owner, d.Amount, d.Reference)
			if nil != err {
				return err
			}
			settled += 1
		}
		if err := b.marks.Set(trx, a, compliance.White); nil != err {
			return err
		}
		b.events.Append(trx, event.AccountMarked(a, compliance.White))
		return nil
	})
	if nil != err {
		b.log.Warnf("mark white: %s error: %s", a, err)
		return err
	}

	b.log.Infof("marked white: %s settled: %d", a, settled)
	return nil
}
