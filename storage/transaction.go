// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the single write batch over all pools
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
	Commit() error
	Abort()
}

// TransactionData - implementation of Transaction over an Access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.put(key, value)
}

func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	h.put(key, packN(value))
}

func (t *TransactionData) Delete(h Handle, key []byte) {
	h.remove(key)
}

func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) Abort() {
	t.access.Abort()
}
