// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common setup for package tests
package fixtures

import (
	"fmt"
	"os"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/storage"
)

const (
	dir          = "testing"
	databaseName = "testing.leveldb"
	LogCategory  = "testing"
)

// SetupTestLogger - start logging to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestDatabase - logger plus an empty database
func SetupTestDatabase(t *testing.T) {
	SetupTestLogger()
	_ = os.RemoveAll(databaseName)
	err := storage.Initialise(databaseName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// TeardownTestDatabase - close and remove the database and logs
func TeardownTestDatabase() {
	storage.Finalise()
	_ = os.RemoveAll(databaseName)
	TeardownTestLogger()
}

// Account - a deterministic test network account for index n
func Account(n byte) *account.Account {
	seed := make([]byte, ed25519.SeedSize)
	seed[0] = 0xbb
	seed[ed25519.SeedSize-1] = n
	privateKey := ed25519.NewKeyFromSeed(seed)
	a, err := account.New(privateKey.Public().(ed25519.PublicKey), true)
	if nil != err {
		panic(err)
	}
	return a
}

// Commit - run f inside a single transaction and commit it
func Commit(t *testing.T, f func(storage.Transaction)) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	f(trx)
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
