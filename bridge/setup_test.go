// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bridge_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/bridge"
	"github.com/bitmark-inc/pegbridge/derivation"
	"github.com/bitmark-inc/pegbridge/fixtures"
	"github.com/bitmark-inc/pegbridge/ledger"
	"github.com/bitmark-inc/pegbridge/storage"
)

const (
	testAsset     = uint32(1)
	testThreshold = uint64(10_00000000)
)

var (
	alice    = fixtures.Account(1)
	bob      = fixtures.Account(2)
	stranger = fixtures.Account(3)

	vault      = fixtures.Account(9)
	depositor  = fixtures.Account(10)
	marker     = fixtures.Account(11)
	withdrawer = fixtures.Account(12)
	refunder   = fixtures.Account(13)
	admin      = fixtures.Account(14)
)

func testGenesis() bridge.Genesis {
	return bridge.Genesis{
		AssetId:   testAsset,
		Threshold: testThreshold,
		Vault:     vault,
		Admins: []bridge.Admin{
			{Account: depositor, Capability: authority.Deposit},
			{Account: marker, Capability: authority.Mark},
			{Account: withdrawer, Capability: authority.Withdraw},
			{Account: refunder, Capability: authority.Refund},
			{Account: admin, Capability: authority.All},
		},
	}
}

// open a database and a bridge with genesis applied
//
// a nil asset ledger selects the database backed ledger
func setupBridge(t *testing.T, assets bridge.AssetLedger, deriver *derivation.Deriver) *bridge.Bridge {
	fixtures.SetupTestDatabase(t)

	if nil == assets {
		assets = ledger.New(storage.Pool.Balances, storage.Pool.Supply)
	}
	b := bridge.New(assets, deriver)

	err := b.Initialise(testGenesis())
	if nil != err {
		t.Fatalf("genesis error: %s", err)
	}
	return b
}

func teardownBridge() {
	fixtures.TeardownTestDatabase()
}

var observed = []*account.Account{alice, bob, stranger, vault, depositor, marker, withdrawer, refunder, admin}

// everything an operation could change, rendered for comparison
func snapshot(t *testing.T, b *bridge.Bridge, txRefs ...string) string {
	s := fmt.Sprintf("params: %+v\n", b.Parameters())

	for _, a := range observed {
		mark, marked := b.Classify(a)
		capability, granted := b.Capability(a)
		s += fmt.Sprintf("%s balance: %d queue: %+v pending: %v mark: %s/%t capability: %s/%t\n",
			a,
			b.Balance(a),
			b.PendingDeposits(a),
			b.PendingWithdrawals(a),
			mark, marked,
			capability, granted,
		)
	}

	for _, txRef := range txRefs {
		d, found := b.DepositRecord(txRef)
		s += fmt.Sprintf("history %q: %+v/%t\n", txRef, d, found)
	}

	events, err := b.Events(0, 1000)
	if nil != err {
		t.Fatalf("events error: %s", err)
	}
	s += fmt.Sprintf("events: %d\n", len(events))
	return s
}

func lastEvent(t *testing.T, b *bridge.Bridge) (int, string) {
	events, err := b.Events(0, 1000)
	if nil != err {
		t.Fatalf("events error: %s", err)
	}
	if 0 == len(events) {
		return 0, ""
	}
	return len(events), string(events[len(events)-1].Kind)
}
