// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/storage"
)

// this is the expected order
var expectedKeys = []string{
	"key-five",
	"key-four",
	"key-one",
	"key-three",
	"key-two",
}

func TestPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	poolPut(t, p, "key-one", "data-one")
	poolPut(t, p, "key-two", "data-two")
	poolPut(t, p, "key-remove-me", "to be deleted")
	poolDelete(t, p, "key-remove-me")
	poolPut(t, p, "key-three", "data-three")
	poolPut(t, p, "key-four", "data-four")
	poolPut(t, p, "key-five", "data-five")
	poolPut(t, p, "key-one", "data-one(NEW)") // duplicate

	assert.Equal(t, []byte("data-one(NEW)"), p.Get([]byte("key-one")), "overwrite lost")
	assert.False(t, p.Has([]byte("key-remove-me")), "delete failed")
	assert.Nil(t, p.Get([]byte("/nonexistant")), "found missing key")

	// pool must not leak into its neighbours
	assert.Nil(t, storage.Pool.Supply.Get([]byte("key-one")), "pool prefix leaked")

	cursor := p.NewFetchCursor()
	elements, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 3, len(elements), "first fetch count")

	more, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(more), "second fetch count")

	all := append(elements, more...)
	for i, e := range all {
		assert.Equal(t, expectedKeys[i], string(e.Key), "%d: wrong key order", i)
	}

	// check that restarting database keeps data
	storage.Finalise()
	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "reopen")
	assert.Equal(t, []byte("data-two"), storage.Pool.TestData.Get([]byte("key-two")), "data lost on restart")
}

func TestTransactionIsAtomic(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	n := storage.Pool.EventCount

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrDatabaseInUse, err, "second transaction allowed")

	trx.Put(p, []byte("a"), []byte("1"))
	trx.PutN(n, []byte("count"), 42)

	// staged data is visible to reads inside the batch
	assert.Equal(t, []byte("1"), p.Get([]byte("a")), "staged put not visible")
	count, found := trx.GetN(n, []byte("count"))
	assert.True(t, found, "staged count not found")
	assert.Equal(t, uint64(42), count, "staged count")

	trx.Abort()

	assert.False(t, p.Has([]byte("a")), "abort wrote data")
	_, found = n.GetN([]byte("count"))
	assert.False(t, found, "abort wrote count")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "transaction after abort")
	trx.Put(p, []byte("a"), []byte("2"))
	trx.Delete(p, []byte("a"))
	trx.Put(p, []byte("b"), []byte("3"))
	assert.False(t, trx.Has(p, []byte("a")), "staged delete visible")
	err = trx.Commit()
	assert.Nil(t, err, "commit")

	assert.False(t, p.Has([]byte("a")), "deleted key committed")
	assert.Equal(t, []byte("3"), p.Get([]byte("b")), "commit lost data")
}

func TestNotInitialised(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrNotInitialised, err, "transaction without database")
}
