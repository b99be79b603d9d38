// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposit

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/storage"
)

// History - deposits keyed by external transaction reference
//
// existence of a key is the double-spend guard
type History struct {
	pool storage.Handle
}

// NewHistory - history backed by pool
func NewHistory(pool storage.Handle) *History {
	return &History{
		pool: pool,
	}
}

// Has - true if the reference has been consumed
func (h *History) Has(txRef string) bool {
	return h.pool.Has([]byte(txRef))
}

// Get - the deposit that consumed a reference
func (h *History) Get(txRef string) (Deposit, bool) {
	record := h.pool.Get([]byte(txRef))
	if nil == record {
		return Deposit{}, false
	}
	d, n, err := Unpack(record)
	logger.PanicIfError("deposit.History.Get", err)
	if n != len(record) {
		logger.Panicf("deposit.History.Get: trailing data for: %q", txRef)
	}
	return d, true
}

// Put - stage a reference as consumed
func (h *History) Put(trx storage.Transaction, txRef string, d Deposit) {
	trx.Put(h.pool, []byte(txRef), d.Pack())
}

// Remove - stage release of a reference
func (h *History) Remove(trx storage.Transaction, txRef string) {
	trx.Delete(h.pool, []byte(txRef))
}
