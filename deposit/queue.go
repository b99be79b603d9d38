// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposit

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/storage"
)

// Queue - held deposits per beneficiary in arrival order
type Queue struct {
	pool storage.Handle
}

// NewQueue - queue backed by pool
func NewQueue(pool storage.Handle) *Queue {
	return &Queue{
		pool: pool,
	}
}

// List - the held deposits of an account, oldest first
func (q *Queue) List(a *account.Account) []Deposit {
	record := q.pool.Get(a.Bytes())
	if nil == record {
		return nil
	}
	list, err := unpackList(record)
	logger.PanicIfError("deposit.Queue.List", err)
	return list
}

// Count - number of held deposits for an account
func (q *Queue) Count(a *account.Account) int {
	return len(q.List(a))
}

// Append - stage a deposit at the tail of the account's queue
func (q *Queue) Append(trx storage.Transaction, a *account.Account, d Deposit) {
	list := append(q.List(a), d)
	trx.Put(q.pool, a.Bytes(), packList(list))
}

// Take - stage removal of the whole queue and return its contents
func (q *Queue) Take(trx storage.Transaction, a *account.Account) []Deposit {
	list := q.List(a)
	if nil != list {
		trx.Delete(q.pool, a.Bytes())
	}
	return list
}

// Restore - stage replacement of the queue, an empty list removes it
func (q *Queue) Restore(trx storage.Transaction, a *account.Account, list []Deposit) {
	if 0 == len(list) {
		trx.Delete(q.pool, a.Bytes())
		return
	}
	trx.Put(q.pool, a.Bytes(), packList(list))
}
