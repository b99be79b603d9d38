// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// All writes are staged in a single batch opened by NewDBTransaction
// and become visible to other processes only on Commit.  Reads made
// through a pool while the batch is open see the staged writes.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. owner        = account bytes (key variant ++ 32 byte public key)
// 4. asset        = pegged asset id as big endian uint32 (4 bytes)
// 5. count        = successive index value as big endian uint64 (8 bytes)
// 6. txRef        = external transaction reference bytes
//
// Parameters:
//
//	P ++ name                  - bridge parameters (asset, threshold, vault, paused)
//
// Authorisation and compliance:
//
//	A ++ owner                 - capability byte
//	M ++ owner                 - compliance mark byte
//
// Deposits:
//
//	D ++ txRef                 - deposit that consumed the reference
//	                             data: packed deposit (settled or held form)
//	Q ++ owner                 - deposits held for compliance review
//	                             data: count(varint) ++ [ packed deposit ]
//
// Withdrawals:
//
//	W ++ owner                 - amounts held in the vault
//	                             data: count(varint) ++ [ amount(varint) ]
//
// Asset ledger:
//
//	B ++ asset ++ owner        - balance (big endian uint64)
//	S ++ asset                 - total supply (big endian uint64)
//
// Events:
//
//	E ++ count                 - JSON encoded audit event
//	N ++ "count"               - next event count
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
