// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package withdrawal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/fixtures"
	"github.com/bitmark-inc/pegbridge/storage"
	"github.com/bitmark-inc/pegbridge/withdrawal"
)

func TestDuplicatesAreDistinct(t *testing.T) {
	fixtures.SetupTestDatabase(t)
	defer fixtures.TeardownTestDatabase()

	p := withdrawal.New(storage.Pool.PendingWithdrawals)
	alice := fixtures.Account(1)

	fixtures.Commit(t, func(trx storage.Transaction) {
		p.Append(trx, alice, 100000000)
		p.Append(trx, alice, 100000000)
		p.Append(trx, alice, 5)
	})
	assert.Equal(t, []uint64{100000000, 100000000, 5}, p.List(alice), "list")
	assert.True(t, p.Contains(alice, 5), "contains 5")
	assert.False(t, p.Contains(alice, 6), "contains 6")

	fixtures.Commit(t, func(trx storage.Transaction) {
		assert.Nil(t, p.Remove(trx, alice, 100000000), "remove")
	})
	assert.Equal(t, []uint64{100000000, 5}, p.List(alice), "one occurrence removed")
}

func TestRemoveSingleEntry(t *testing.T) {
	fixtures.SetupTestDatabase(t)
	defer fixtures.TeardownTestDatabase()

	p := withdrawal.New(storage.Pool.PendingWithdrawals)
	alice := fixtures.Account(1)

	fixtures.Commit(t, func(trx storage.Transaction) {
		p.Append(trx, alice, 42)
	})
	assert.Equal(t, 1, p.Count(alice), "count")

	fixtures.Commit(t, func(trx storage.Transaction) {
		assert.Equal(t, fault.ErrPendingWithdrawNotFound, p.Remove(trx, alice, 41), "absent amount")
		assert.Nil(t, p.Remove(trx, alice, 42), "single entry")
	})
	assert.Equal(t, 0, p.Count(alice), "single entry not removed")
	assert.Nil(t, p.List(alice), "empty list kept")
	assert.False(t, storage.Pool.PendingWithdrawals.Has(alice.Bytes()), "empty key kept")
}

func TestRemoveFromEmpty(t *testing.T) {
	fixtures.SetupTestDatabase(t)
	defer fixtures.TeardownTestDatabase()

	p := withdrawal.New(storage.Pool.PendingWithdrawals)

	fixtures.Commit(t, func(trx storage.Transaction) {
		for i := 0; i < 3; i += 1 {
			err := p.Remove(trx, fixtures.Account(2), 1)
			assert.Equal(t, fault.ErrPendingWithdrawNotFound, err, "attempt %d", i)
		}
	})
	assert.Equal(t, 0, p.Count(fixtures.Account(2)), "drift")
}
