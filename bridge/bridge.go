// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bridge - custody bridge between an external settlement
// network and the internal pegged asset ledger
//
// every operation is a single storage transaction: the checks run
// first, then all store mutations, ledger movements and events are
// staged together and committed only if every step succeeded
package bridge

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/compliance"
	"github.com/bitmark-inc/pegbridge/deposit"
	"github.com/bitmark-inc/pegbridge/derivation"
	"github.com/bitmark-inc/pegbridge/event"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/parameter"
	"github.com/bitmark-inc/pegbridge/storage"
	"github.com/bitmark-inc/pegbridge/withdrawal"
)

const (
	maxTxRefLength = 128
)

// AssetLedger - the fungible asset collaborator
//
// mutations are staged in the supplied transaction
type AssetLedger interface {
	Mint(trx storage.Transaction, asset uint32, to *account.Account, amount uint64) error
	Transfer(trx storage.Transaction, asset uint32, from *account.Account, to *account.Account, amount uint64) error
	Balance(asset uint32, a *account.Account) uint64
}

// Bridge - the dispatcher
//
// operations hold the write lock for their whole transaction and
// queries hold the read lock, so readers never see staged data
type Bridge struct {
	sync.RWMutex

	log *logger.L

	parameters  *parameter.Store
	authorities *authority.Registry
	marks       *compliance.List
	history     *deposit.History
	queue       *deposit.Queue
	pending     *withdrawal.Pending
	events      *event.Log

	ledger  AssetLedger
	deriver *derivation.Deriver
}

// New - create a bridge over the opened storage pools
//
// deriver may be nil to disable deposit address derivation
func New(ledger AssetLedger, deriver *derivation.Deriver) *Bridge {
	return &Bridge{
		log:         logger.New("bridge"),
		parameters:  parameter.New(storage.Pool.Parameters),
		authorities: authority.New(storage.Pool.Authorities),
		marks:       compliance.New(storage.Pool.Marks),
		history:     deposit.NewHistory(storage.Pool.Deposits),
		queue:       deposit.NewQueue(storage.Pool.PendingDeposits),
		pending:     withdrawal.New(storage.Pool.PendingWithdrawals),
		events:      event.NewLog(storage.Pool.Events, storage.Pool.EventCount),
		ledger:      ledger,
		deriver:     deriver,
	}
}

// run f inside one transaction, commit on success, abort on any error
func (b *Bridge) atomically(f func(trx storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}

	return trx.Commit()
}

// require a capability from a signed origin
func (b *Bridge) authorise(origin Origin, needed authority.Capability, denied error) error {
	signer, _ := origin.Signer()
	if !b.authorities.HasCapability(signer, needed) {
		b.log.Warnf("%s denied: %s", needed, origin)
		return denied
	}
	return nil
}

func (b *Bridge) requireRoot(origin Origin) error {
	if !origin.IsRoot() {
		b.log.Warnf("root operation denied: %s", origin)
		return fault.ErrNotRoot
	}
	return nil
}

func (b *Bridge) requireInitialised() error {
	if !b.parameters.IsInitialised() {
		return fault.ErrNotInitialised
	}
	return nil
}

// credit a deposit: record it as settled, mint and notify
func (b *Bridge) settle(trx storage.Transaction, owner *account.Account, amount uint64, txRef string) error {
	b.history.Put(trx, txRef, deposit.Settled(owner, amount))

	err := b.ledger.Mint(trx, b.parameters.AssetId(), owner, amount)
	if nil != err {
		b.log.Warnf("mint: %d to: %s error: %s", amount, owner, err)
		return err
	}

	b.events.Append(trx, event.Deposited(owner, amount, txRef))
	return nil
}

func validAccount(a *account.Account) error {
	if nil == a {
		return fault.ErrAccountNotConfigured
	}
	return nil
}

func validTxRef(txRef string) error {
	if 0 == len(txRef) || len(txRef) > maxTxRefLength {
		return fault.ErrInvalidTransactionRef
	}
	return nil
}

func validAmount(amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}
	return nil
}
