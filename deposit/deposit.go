// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package deposit - deposit records, the double-spend history and
// the per-account queue of deposits held for compliance review
package deposit

import (
	"github.com/bitmark-inc/pegbridge/account"
	"github.com/bitmark-inc/pegbridge/fault"
	"github.com/bitmark-inc/pegbridge/util"
)

// Deposit - a single external deposit
//
// a settled deposit has an empty Reference; a held deposit carries
// the external transaction reference that reserved its history slot
type Deposit struct {
	Owner     *account.Account `json:"owner"`
	Reference string           `json:"reference,omitempty"`
	Amount    uint64           `json:"amount"`
}

// Settled - the history form of a deposit that has been credited
func Settled(owner *account.Account, amount uint64) Deposit {
	return Deposit{
		Owner:  owner,
		Amount: amount,
	}
}

// Held - a deposit awaiting compliance resolution
func Held(owner *account.Account, txRef string, amount uint64) Deposit {
	return Deposit{
		Owner:     owner,
		Reference: txRef,
		Amount:    amount,
	}
}

// IsHeld - true if the deposit is waiting in a queue
func (d Deposit) IsHeld() bool {
	return "" != d.Reference
}

// Pack - binary form:  owner-length owner ref-length ref amount
//
// lengths and amount are unsigned varints
func (d Deposit) Pack() []byte {
	owner := d.Owner.Bytes()

	buffer := make([]byte, 0, 3*util.Varint64MaximumBytes+len(owner)+len(d.Reference))
	buffer = append(buffer, util.ToVarint64(uint64(len(owner)))...)
	buffer = append(buffer, owner...)
	buffer = append(buffer, util.ToVarint64(uint64(len(d.Reference)))...)
	buffer = append(buffer, d.Reference...)
	buffer = append(buffer, util.ToVarint64(d.Amount)...)
	return buffer
}

// Unpack - decode one deposit and return the number of bytes used
func Unpack(record []byte) (Deposit, int, error) {
	n := 0

	ownerLength, ownerBytes, err := readBytes(record)
	if nil != err {
		return Deposit{}, 0, err
	}
	n += ownerLength

	owner, err := account.FromBytes(ownerBytes)
	if nil != err {
		return Deposit{}, 0, err
	}

	refLength, ref, err := readBytes(record[n:])
	if nil != err {
		return Deposit{}, 0, err
	}
	n += refLength

	amount, amountLength := util.FromVarint64(record[n:])
	if amountLength <= 0 {
		return Deposit{}, 0, fault.ErrRecordTruncated
	}
	n += amountLength

	d := Deposit{
		Owner:     owner,
		Reference: string(ref),
		Amount:    amount,
	}
	return d, n, nil
}

// packList - concatenated packed deposits preceded by a count
func packList(list []Deposit) []byte {
	buffer := util.ToVarint64(uint64(len(list)))
	for _, d := range list {
		buffer = append(buffer, d.Pack()...)
	}
	return buffer
}

func unpackList(record []byte) ([]Deposit, error) {
	count, n := util.FromVarint64(record)
	if n <= 0 {
		return nil, fault.ErrRecordTruncated
	}

	if count > uint64(len(record)) {
		return nil, fault.ErrRecordTruncated
	}
	list := make([]Deposit, 0, count)
	for i := uint64(0); i < count; i += 1 {
		d, used, err := Unpack(record[n:])
		if nil != err {
			return nil, err
		}
		n += used
		list = append(list, d)
	}
	if n != len(record) {
		return nil, fault.ErrRecordTruncated
	}
	return list, nil
}

// read a length prefixed byte string
func readBytes(record []byte) (int, []byte, error) {
	length, n := util.FromVarint64(record)
	if n <= 0 {
		return 0, nil, fault.ErrRecordTruncated
	}
	end := uint64(n) + length
	if end > uint64(len(record)) {
		return 0, nil, fault.ErrRecordTruncated
	}
	return int(end), record[n:end], nil
}
