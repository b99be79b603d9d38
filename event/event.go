// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - audit notifications of committed bridge transitions
package event

import (
	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/authority"
	"github.com/bitmark-inc/pegbridge/compliance"
)

// Kind - type of notification
type Kind string

// notification kinds
const (
	KindDeposited        Kind = "Deposited"
	KindPending          Kind = "Pending"
	KindAccountMarked    Kind = "AccountMarked"
	KindPendingWithdraw  Kind = "PendingWithdraw"
	KindWithdraw         Kind = "Withdraw"
	KindRefund           Kind = "Refund"
	KindAuthoritySet     Kind = "AuthoritySet"
	KindAuthorityRemoved Kind = "AuthorityRemoved"
	KindThresholdChanged Kind = "ThresholdChanged"
	KindVaultChanged     Kind = "VaultChanged"
)

// Event - one notification, Sequence is assigned by the log
type Event struct {
	Sequence   uint64               `json:"sequence"`
	Kind       Kind                 `json:"kind"`
	Account    *account.Account     `json:"account,omitempty"`
	Amount     uint64               `json:"amount"`
	TxRef      string               `json:"txRef,omitempty"`
	Mark       compliance.Mark      `json:"mark,omitempty"`
	Capability authority.Capability `json:"capability,omitempty"`
}

// Deposited - funds were minted to owner
func Deposited(owner *account.Account, amount uint64, txRef string) Event {
	return Event{Kind: KindDeposited, Account: owner, Amount: amount, TxRef: txRef}
}

// Pending - a deposit was held for compliance review
func Pending(owner *account.Account, amount uint64, txRef string) Event {
	return Event{Kind: KindPending, Account: owner, Amount: amount, TxRef: txRef}
}

// AccountMarked - compliance classification changed
func AccountMarked(a *account.Account, mark compliance.Mark) Event {
	return Event{Kind: KindAccountMarked, Account: a, Mark: mark}
}

// PendingWithdraw - funds moved to the vault
func PendingWithdraw(a *account.Account, amount uint64) Event {
	return Event{Kind: KindPendingWithdraw, Account: a, Amount: amount}
}

// Withdraw - an off-chain payout completed
func Withdraw(a *account.Account, amount uint64) Event {
	return Event{Kind: KindWithdraw, Account: a, Amount: amount}
}

// Refund - funds returned from the vault
func Refund(a *account.Account, amount uint64) Event {
	return Event{Kind: KindRefund, Account: a, Amount: amount}
}

// AuthoritySet - capability granted
func AuthoritySet(a *account.Account, c authority.Capability) Event {
	return Event{Kind: KindAuthoritySet, Account: a, Capability: c}
}

// AuthorityRemoved - capability revoked
func AuthorityRemoved(a *account.Account) Event {
	return Event{Kind: KindAuthorityRemoved, Account: a}
}

// ThresholdChanged - new compliance threshold
func ThresholdChanged(threshold uint64) Event {
	return Event{Kind: KindThresholdChanged, Amount: threshold}
}

// VaultChanged - new custody account
func VaultChanged(vault *account.Account) Event {
	return Event{Kind: KindVaultChanged, Account: vault}
}
