// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - fungible asset balances
//
// every mutation is staged in the caller's transaction so that balance
// movement commits or aborts together with the bridge state
package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/storage"
)

// Ledger - balances and total supply per asset
type Ledger struct {
	balances storage.Handle
	supply   storage.Handle
}

// New - ledger over a balance pool and a supply pool
func New(balances storage.Handle, supply storage.Handle) *Ledger {
	return &Ledger{
		balances: balances,
		supply:   supply,
	}
}

// Balance - current balance of an account
//
// reads include changes staged by an open transaction
func (l *Ledger) Balance(asset uint32, a *account.Account) uint64 {
	n, _ := l.balances.GetN(balanceKey(asset, a))
	return n
}

// TotalSupply - amount of an asset in existence
func (l *Ledger) TotalSupply(asset uint32) uint64 {
	n, _ := l.supply.GetN(assetKey(asset))
	return n
}

// Mint - create new units for an account
func (l *Ledger) Mint(trx storage.Transaction, asset uint32, to *account.Account, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	supply, _ := trx.GetN(l.supply, assetKey(asset))
	if supply+amount < supply {
		return fault.ErrBalanceOverflow
	}
	key := balanceKey(asset, to)
	balance, _ := trx.GetN(l.balances, key)
	if balance+amount < balance {
		return fault.ErrBalanceOverflow
	}

	trx.PutN(l.supply, assetKey(asset), supply+amount)
	trx.PutN(l.balances, key, balance+amount)
	return nil
}

// Burn - destroy units held by an account
func (l *Ledger) Burn(trx storage.Transaction, asset uint32, from *account.Account, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	key := balanceKey(asset, from)
	balance, _ := trx.GetN(l.balances, key)
	if balance < amount {
		return fault.ErrInsufficientBalance
	}
	supply, _ := trx.GetN(l.supply, assetKey(asset))

	l.setBalance(trx, key, balance-amount)
	trx.PutN(l.supply, assetKey(asset), supply-amount)
	return nil
}

// Transfer - move units between accounts
func (l *Ledger) Transfer(trx storage.Transaction, asset uint32, from *account.Account, to *account.Account, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	fromKey := balanceKey(asset, from)
	fromBalance, _ := trx.GetN(l.balances, fromKey)
	if fromBalance < amount {
		return fault.ErrInsufficientBalance
	}
	if from.Equal(to) {
		return nil
	}

	toKey := balanceKey(asset, to)
	toBalance, _ := trx.GetN(l.balances, toKey)
	if toBalance+amount < toBalance {
		return fault.ErrBalanceOverflow
	}

	l.setBalance(trx, fromKey, fromBalance-amount)
	trx.PutN(l.balances, toKey, toBalance+amount)
	return nil
}

// zero balances are removed
func (l *Ledger) setBalance(trx storage.Transaction, key []byte, balance uint64) {
	if 0 == balance {
		trx.Delete(l.balances, key)
		return
	}
	trx.PutN(l.balances, key, balance)
}

func assetKey(asset uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, asset)
	return key
}

func balanceKey(asset uint32, a *account.Account) []byte {
	return append(assetKey(asset), a.Bytes()...)
}
