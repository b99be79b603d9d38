// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package parameter - the scalar settings of the bridge
//
// asset id, compliance threshold, custody vault and the paused switch
// are written once at genesis and afterwards only by root operations
package parameter

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/storage"
)

// keys within the parameter pool
var (
	assetKey     = []byte("asset")
	thresholdKey = []byte("threshold")
	vaultKey     = []byte("vault")
	pausedKey    = []byte("paused")
)

// Parameters - snapshot of all settings
type Parameters struct {
	AssetId   uint32           `json:"assetId"`
	Threshold uint64           `json:"threshold"`
	Vault     *account.Account `json:"vault"`
	Paused    bool             `json:"paused"`
}

// Store - parameter storage
type Store struct {
	pool storage.Handle
}

// New - parameter store backed by pool
func New(pool storage.Handle) *Store {
	return &Store{
		pool: pool,
	}
}

// IsInitialised - true once genesis has been applied
func (s *Store) IsInitialised() bool {
	return s.pool.Has(assetKey)
}

// Get - all parameters
func (s *Store) Get() Parameters {
	return Parameters{
		AssetId:   s.AssetId(),
		Threshold: s.Threshold(),
		Vault:     s.Vault(),
		Paused:    s.IsPaused(),
	}
}

// AssetId - identifier of the pegged asset
func (s *Store) AssetId() uint32 {
	n, _ := s.pool.GetN(assetKey)
	if n > 0xffffffff {
		logger.Panicf("parameter: asset id out of range: %d", n)
	}
	return uint32(n)
}

// Threshold - deposits of this amount or more need compliance clearance
func (s *Store) Threshold() uint64 {
	n, _ := s.pool.GetN(thresholdKey)
	return n
}

// Vault - the custody account, nil before genesis
func (s *Store) Vault() *account.Account {
	value := s.pool.Get(vaultKey)
	if nil == value {
		return nil
	}
	a, err := account.FromBytes(value)
	logger.PanicIfError("parameter: vault", err)
	return a
}

// IsPaused - state of the circuit breaker
func (s *Store) IsPaused() bool {
	value := s.pool.Get(pausedKey)
	return 1 == len(value) && 0 != value[0]
}

// SetAssetId - stage the pegged asset id
func (s *Store) SetAssetId(trx storage.Transaction, asset uint32) {
	trx.PutN(s.pool, assetKey, uint64(asset))
}

// SetThreshold - stage a new compliance threshold
func (s *Store) SetThreshold(trx storage.Transaction, threshold uint64) {
	trx.PutN(s.pool, thresholdKey, threshold)
}

// SetVault - stage a new custody account
func (s *Store) SetVault(trx storage.Transaction, vault *account.Account) {
	trx.Put(s.pool, vaultKey, vault.Bytes())
}

// SetPaused - stage the circuit breaker state
func (s *Store) SetPaused(trx storage.Transaction, paused bool) {
	flag := byte(0)
	if paused {
		flag = 1
	}
	trx.Put(s.pool, pausedKey, []byte{flag})
}
