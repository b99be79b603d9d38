// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compliance - the Black/White classification of accounts
//
// an absent mark is "unclassified" and is routed like Black
package compliance

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/storage"
)

// Mark - compliance classification
type Mark byte

// possible marks
const (
	Unclassified Mark = 0
	Black        Mark = 1
	White        Mark = 2
)

func (m Mark) String() string {
	switch m {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "unclassified"
	}
}

// MarshalText - convert mark to text
func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText - convert text to mark
func (m *Mark) UnmarshalText(s []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "black":
		*m = Black
	case "white":
		*m = White
	default:
		return fault.ErrInvalidMark
	}
	return nil
}

// List - the compliance list over a storage pool
type List struct {
	pool storage.Handle
}

// New - compliance list backed by pool
func New(pool storage.Handle) *List {
	return &List{
		pool: pool,
	}
}

// Classify - current mark of an account, false if unclassified
func (l *List) Classify(a *account.Account) (Mark, bool) {
	value := l.pool.Get(a.Bytes())
	if nil == value {
		return Unclassified, false
	}
	if 1 != len(value) || (Black != Mark(value[0]) && White != Mark(value[0])) {
		logger.Panicf("compliance: corrupt mark: %x for: %s", value, a)
	}
	return Mark(value[0]), true
}

// IsCleared - only an explicit White mark clears an account
func (l *List) IsCleared(a *account.Account) bool {
	m, found := l.Classify(a)
	return found && White == m
}

// Set - stage a new mark for an account
func (l *List) Set(trx storage.Transaction, a *account.Account, m Mark) error {
	if Black != m && White != m {
		return fault.ErrInvalidMark
	}
	trx.Put(l.pool, a.Bytes(), []byte{byte(m)})
	return nil
}
