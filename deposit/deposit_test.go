// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pegbridge/deposit"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/fixtures"
	"github.com/bitmark-inc/pegbridge/storage"
)

func TestPackUnpack(t *testing.T) {
	owner := fixtures.Account(1)

	items := []deposit.Deposit{
		deposit.Settled(owner, 0),
		deposit.Settled(owner, 30_00000000),
		deposit.Held(owner, "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b", 1),
		deposit.Held(owner, "x", 0xffffffffffffffff),
	}

	for i, item := range items {
		packed := item.Pack()
		d, n, err := deposit.Unpack(packed)
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, len(packed), n, "%d: bytes used", i)
		assert.True(t, item.Owner.Equal(d.Owner), "%d: owner", i)
		assert.Equal(t, item.Reference, d.Reference, "%d: reference", i)
		assert.Equal(t, item.Amount, d.Amount, "%d: amount", i)
		assert.Equal(t, item.IsHeld(), d.IsHeld(), "%d: held", i)
	}

	assert.False(t, items[0].IsHeld(), "settled form is held")
	assert.True(t, items[2].IsHeld(), "held form not held")
}

func TestUnpackTruncated(t *testing.T) {
	packed := deposit.Held(fixtures.Account(1), "abc", 1000).Pack()

	for i := 0; i < len(packed); i += 1 {
		_, _, err := deposit.Unpack(packed[:i])
		assert.NotNil(t, err, "truncated at %d accepted", i)
	}

	_, _, err := deposit.Unpack(nil)
	assert.Equal(t, fault.ErrRecordTruncated, err, "empty record")
}

func TestHistory(t *testing.T) {
	fixtures.SetupTestDatabase(t)
	defer fixtures.TeardownTestDatabase()

	h := deposit.NewHistory(storage.Pool.Deposits)
	owner := fixtures.Account(1)

	assert.False(t, h.Has("tx-1"), "fresh history")

	fixtures.Commit(t, func(trx storage.Transaction) {
		h.Put(trx, "tx-1", deposit.Settled(owner, 500))
		h.Put(trx, "tx-2", deposit.Held(owner, "tx-2", 900))
		assert.True(t, trx.Has(storage.Pool.Deposits, []byte("tx-1")), "staged put not visible")
	})

	assert.True(t, h.Has("tx-1"), "tx-1")
	d, found := h.Get("tx-2")
	assert.True(t, found, "tx-2")
	assert.Equal(t, "tx-2", d.Reference, "held reference")
	assert.Equal(t, uint64(900), d.Amount, "held amount")

	fixtures.Commit(t, func(trx storage.Transaction) {
		h.Remove(trx, "tx-2")
		assert.False(t, h.Has("tx-2"), "staged remove not visible")
	})
	assert.False(t, h.Has("tx-2"), "remove")
	assert.True(t, h.Has("tx-1"), "unrelated entry removed")
}

func TestQueue(t *testing.T) {
	fixtures.SetupTestDatabase(t)
	defer fixtures.TeardownTestDatabase()

	q := deposit.NewQueue(storage.Pool.PendingDeposits)
	alice := fixtures.Account(1)
	bob := fixtures.Account(2)

	assert.Nil(t, q.List(alice), "fresh queue")
	assert.Equal(t, 0, q.Count(alice), "fresh count")

	fixtures.Commit(t, func(trx storage.Transaction) {
		q.Append(trx, alice, deposit.Held(alice, "a", 1))
		q.Append(trx, alice, deposit.Held(alice, "b", 2))
		q.Append(trx, bob, deposit.Held(bob, "c", 3))
		q.Append(trx, alice, deposit.Held(alice, "d", 4))
	})

	list := q.List(alice)
	if assert.Len(t, list, 3, "alice queue") {
		assert.Equal(t, "a", list[0].Reference, "first")
		assert.Equal(t, "b", list[1].Reference, "second")
		assert.Equal(t, "d", list[2].Reference, "third")
	}
	assert.Equal(t, 1, q.Count(bob), "bob count")

	var taken []deposit.Deposit
	fixtures.Commit(t, func(trx storage.Transaction) {
		taken = q.Take(trx, alice)
		assert.Equal(t, 0, q.Count(alice), "take not staged")
	})
	assert.Len(t, taken, 3, "taken")
	assert.Equal(t, 0, q.Count(alice), "take not committed")
	assert.Equal(t, 1, q.Count(bob), "take touched another account")

	fixtures.Commit(t, func(trx storage.Transaction) {
		assert.Nil(t, q.Take(trx, alice), "take of empty queue")
		q.Restore(trx, alice, taken[1:])
	})
	list = q.List(alice)
	if assert.Len(t, list, 2, "restored") {
		assert.Equal(t, "b", list[0].Reference, "restored order")
	}

	fixtures.Commit(t, func(trx storage.Transaction) {
		q.Restore(trx, alice, nil)
	})
	assert.Nil(t, q.List(alice), "empty restore")
}
