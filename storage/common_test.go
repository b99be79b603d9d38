// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
	loggingDirectory = "testing"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(loggingDirectory)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(loggingDirectory, 0700)

	logging := logger.Configuration{
		Directory: loggingDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// helper to add to pool inside its own transaction
func poolPut(t *testing.T, p storage.Handle, key string, data string) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	trx.Put(p, []byte(key), []byte(data))
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

// helper to remove from pool inside its own transaction
func poolDelete(t *testing.T, p storage.Handle, key string) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	trx.Delete(p, []byte(key))
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
