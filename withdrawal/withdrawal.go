// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package withdrawal - amounts held in the vault awaiting payout or refund
//
// each account has an unordered list of amounts; equal amounts are
// separate entries
package withdrawal

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/storage"
	"github.com/bitmark-inc/pegbridge/util"
)

// Pending - the pending withdrawal multiset
type Pending struct {
	pool storage.Handle
}

// New - pending withdrawals backed by pool
func New(pool storage.Handle) *Pending {
	return &Pending{
		pool: pool,
	}
}

// List - outstanding amounts of an account
func (p *Pending) List(a *account.Account) []uint64 {
	record := p.pool.Get(a.Bytes())
	if nil == record {
		return nil
	}
	list, err := unpack(record)
	logger.PanicIfError("withdrawal.List", err)
	return list
}

// Count - number of outstanding withdrawals
func (p *Pending) Count(a *account.Account) int {
	return len(p.List(a))
}

// Contains - true if at least one entry equals amount
func (p *Pending) Contains(a *account.Account, amount uint64) bool {
	for _, v := range p.List(a) {
		if v == amount {
			return true
		}
	}
	return false
}

// Append - stage one more outstanding amount
func (p *Pending) Append(trx storage.Transaction, a *account.Account, amount uint64) {
	p.store(trx, a, append(p.List(a), amount))
}

// Remove - stage removal of the first entry equal to amount
func (p *Pending) Remove(trx storage.Transaction, a *account.Account, amount uint64) error {
	list := p.List(a)

	rebuilt := make([]uint64, 0, len(list))
	removed := false
	for _, v := range list {
		if !removed && v == amount {
			removed = true
			continue
		}
		rebuilt = append(rebuilt, v)
	}
	if !removed {
		return fault.ErrPendingWithdrawNotFound
	}

	p.store(trx, a, rebuilt)
	return nil
}

func (p *Pending) store(trx storage.Transaction, a *account.Account, list []uint64) {
	if 0 == len(list) {
		trx.Delete(p.pool, a.Bytes())
		return
	}
	trx.Put(p.pool, a.Bytes(), pack(list))
}

func pack(list []uint64) []byte {
	buffer := util.ToVarint64(uint64(len(list)))
	for _, v := range list {
		buffer = append(buffer, util.ToVarint64(v)...)
	}
	return buffer
}

func unpack(record []byte) ([]uint64, error) {
	count, n := util.FromVarint64(record)
	if n <= 0 {
		return nil, fault.ErrRecordTruncated
	}
	if count > uint64(len(record)) {
		return nil, fault.ErrRecordTruncated
	}
	list := make([]uint64, 0, count)
	for i := uint64(0); i < count; i += 1 {
		v, used := util.FromVarint64(record[n:])
		if used <= 0 {
			return nil, fault.ErrRecordTruncated
		}
		n += used
		list = append(list, v)
	}
	if n != len(record) {
		return nil, fault.ErrRecordTruncated
	}
	return list, nil
}
